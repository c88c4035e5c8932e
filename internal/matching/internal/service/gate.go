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

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// 符号和前导零都属于同一个数字，整个数字解析完之后再截断
var scoreRegexp = regexp.MustCompile(`[-+]?\d+`)

// ScoreGate 让模型直接给出 0-100 的匹配分
//
//go:generate mockgen -source=./gate.go -destination=../../mocks/gate.mock.go -package=matchingmocks -typed=true ScoreGate
type ScoreGate interface {
	// Evaluate 无法解析模型输出的时候返回 ErrParseFailure，而不是 0 分
	Evaluate(ctx context.Context, resume, vacancy string) (domain.ScoreResult, error)
}

type scoreGate struct {
	llmSvc    ai.LLMService
	threshold float64
	logger    *elog.Component
}

func NewScoreGate(llmSvc ai.LLMService, threshold float64) ScoreGate {
	return &scoreGate{
		llmSvc:    llmSvc,
		threshold: threshold,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("matching.gate")),
	}
}

func (g *scoreGate) Evaluate(ctx context.Context, resume, vacancy string) (domain.ScoreResult, error) {
	tid := shortuuid.New()
	resp, err := g.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizScoreGate,
		Tid:   tid,
		Input: []string{resume, vacancy},
	})
	if err != nil {
		return domain.ScoreResult{}, err
	}
	score, err := ParseScore(resp.Answer)
	if err != nil {
		g.logger.Error("解析匹配分失败",
			elog.String("tid", tid),
			elog.String("answer", truncate(resp.Answer, 256)),
			elog.FieldErr(err))
		return domain.ScoreResult{}, err
	}
	return domain.ScoreResult{
		Score:     score,
		Raw:       resp.Answer,
		Threshold: g.threshold,
	}, nil
}

// ParseScore 取第一个形如整数的片段，并且限制在 [0, 100]
func ParseScore(raw string) (float64, error) {
	cleaned := CleanOutput(raw)
	m := scoreRegexp.FindString(cleaned)
	if m == "" {
		return 0, fmt.Errorf("%w: 输出里面没有数字 %q", ErrParseFailure, truncate(cleaned, 64))
	}
	val, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	return max(0, min(100, val)), nil
}
