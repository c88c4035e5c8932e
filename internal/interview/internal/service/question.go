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
	"github.com/lithammer/shortuuid/v4"
)

var (
	thinkRegexp      = regexp.MustCompile(`(?s)<think>.*?</think>`)
	listMarkerRegexp = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)
)

// QuestionGenerator 根据简历和岗位描述生成面试题
//
//go:generate mockgen -source=./question.go -destination=../../mocks/question.mock.go -package=interviewmocks -typed=true QuestionGenerator
type QuestionGenerator interface {
	Generate(ctx context.Context, resume, vacancy string) ([]string, error)
}

type questionGenerator struct {
	llmSvc ai.LLMService
	limit  int
}

func NewQuestionGenerator(llmSvc ai.LLMService, limit int) QuestionGenerator {
	return &questionGenerator{llmSvc: llmSvc, limit: limit}
}

func (g *questionGenerator) Generate(ctx context.Context, resume, vacancy string) ([]string, error) {
	resp, err := g.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizQuestionGen,
		Tid:   shortuuid.New(),
		Input: []string{strconv.Itoa(g.limit), resume, vacancy},
	})
	if err != nil {
		return nil, err
	}
	questions := ParseQuestions(resp.Answer, g.limit)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: 模型没有生成题目", ai.ErrParseFailure)
	}
	return questions, nil
}

// ParseQuestions 一行一道题，去掉列表标记和空行，limit 不大于 0 表示不限制
func ParseQuestions(raw string, limit int) []string {
	raw = thinkRegexp.ReplaceAllString(raw, "")
	var res []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimSpace(listMarkerRegexp.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		res = append(res, line)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res
}
