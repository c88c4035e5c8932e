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

package config

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 按照 biz 填充业务配置，并且约束输入长度
type HandlerBuilder struct {
	configs map[string]domain.BizConfig
}

var _ handler.Builder = &HandlerBuilder{}

func NewBuilder(configs map[string]domain.BizConfig) *HandlerBuilder {
	return &HandlerBuilder{configs: configs}
}

func (b *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		if req.Config.Biz == "" {
			cfg, ok := b.configs[req.Biz]
			if !ok {
				return domain.LLMResponse{}, fmt.Errorf("未知的业务 biz=%s", req.Biz)
			}
			cfg.Biz = req.Biz
			req.Config = cfg
		}
		if req.Config.MaxInput > 0 {
			input := make([]string, len(req.Input))
			for i := range req.Input {
				input[i] = truncateRunes(req.Input[i], req.Config.MaxInput)
			}
			req.Input = input
		}
		return next.Handle(ctx, req)
	})
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
