// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var evalScoreRegexp = regexp.MustCompile(`(?i)(оценка|score)\s*[:：]\s*(\d{1,3})`)

// AnswerEvaluator 评估候选人的回答
// 失败的时候不会返回 error，而是返回带有失败原因的报告
//
//go:generate mockgen -source=./evaluator.go -destination=../../mocks/evaluator.mock.go -package=interviewmocks -typed=true AnswerEvaluator
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, iv domain.Interview) domain.Report
}

type answerEvaluator struct {
	llmSvc ai.LLMService
	logger *elog.Component
}

func NewAnswerEvaluator(llmSvc ai.LLMService) AnswerEvaluator {
	return &answerEvaluator{
		llmSvc: llmSvc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview.evaluator")),
	}
}

func (e *answerEvaluator) Evaluate(ctx context.Context, iv domain.Interview) domain.Report {
	report := domain.Report{
		AliasID:       iv.AliasID,
		QuestionCount: len(iv.Questions),
	}
	tid := shortuuid.New()
	resp, err := e.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizAnswerEval,
		Tid:   tid,
		Input: []string{Transcript(iv.Questions)},
	})
	if err != nil {
		e.logger.Error("评估面试失败",
			elog.String("tid", tid),
			elog.String("alias", iv.AliasID),
			elog.FieldErr(err))
		// 超时和模型服务不可用都归到这一类
		report.FailureReason = domain.ReasonServiceUnavailable
		return report
	}
	text := strings.TrimSpace(thinkRegexp.ReplaceAllString(resp.Answer, ""))
	if text == "" {
		report.FailureReason = domain.ReasonParseFailure
		return report
	}
	report.Text = text
	report.Score, report.HasScore = ParseEvaluationScore(text)
	return report
}

// Transcript 把问答记录拼成提示词
func Transcript(questions []domain.Question) string {
	var sb strings.Builder
	for i, q := range questions {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("Question %d: %s\nAnswer %d: %s", i+1, q.Question, i+1, q.Answer))
	}
	return sb.String()
}

// ParseEvaluationScore 解析 score: 85 或者 Оценка: 85 这种格式
func ParseEvaluationScore(text string) (float64, bool) {
	m := evalScoreRegexp.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	val, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, false
	}
	return min(100, val), true
}
