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

package log

import (
	"context"
	"time"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

type HandlerBuilder struct {
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger.With(elog.FieldComponent("ai.llm")),
	}
}

func (h *HandlerBuilder) Name() string {
	return "log"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		logger := h.logger.With(elog.String("tid", req.Tid),
			elog.String("biz", req.Biz))
		// 记录请求
		logger.Debug("请求 LLM", elog.Int("input", len(req.Input)))
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			// 记录错误
			logger.Error("请求 LLM 服务失败", elog.FieldErr(err))
			return resp, err
		}
		// 记录响应
		logger.Debug("请求 LLM 服务响应成功",
			elog.Int64("tokens", resp.Tokens),
			elog.FieldCost(time.Since(start)))
		return resp, err
	})
}
