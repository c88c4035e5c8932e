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
	"strings"

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// EntityExtractor 把简历或者岗位描述变成 标签 -> 实体列表
//
//go:generate mockgen -source=./extractor.go -destination=../../mocks/extractor.mock.go -package=matchingmocks -typed=true EntityExtractor
type EntityExtractor interface {
	Extract(ctx context.Context, text string) (domain.EntityMap, error)
}

type entityExtractor struct {
	llmSvc ai.LLMService
	logger *elog.Component
}

func NewEntityExtractor(llmSvc ai.LLMService) EntityExtractor {
	return &entityExtractor{
		llmSvc: llmSvc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("matching.extractor")),
	}
}

func (e *entityExtractor) Extract(ctx context.Context, text string) (domain.EntityMap, error) {
	if strings.TrimSpace(text) == "" {
		return domain.EntityMap{}, nil
	}
	tid := shortuuid.New()
	resp, err := e.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizEntityExtract,
		Tid:   tid,
		Input: []string{strings.Join(domain.Labels, ", "), text},
	})
	if err != nil {
		return nil, err
	}
	res, err := ParseEntities(resp.Answer, domain.Labels)
	if err != nil {
		e.logger.Error("解析实体失败",
			elog.String("tid", tid),
			elog.String("answer", truncate(resp.Answer, 256)),
			elog.FieldErr(err))
		return nil, err
	}
	return res, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
