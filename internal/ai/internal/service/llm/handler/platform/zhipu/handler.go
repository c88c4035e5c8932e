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

package zhipu

import (
	"context"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

const defaultModel = "glm-4-flash"

// Handler 如果后续有不同的实现，就提供不同的实现
type Handler struct {
	client *zhipu.Client
	model  string
}

func NewHandler(apikey, model string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultModel
	}
	return &Handler{
		client: client,
		model:  model,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	completion, err := h.buildReq(&req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, domain.WrapExternal(h.Name(), err)
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildReq(req *domain.LLMRequest) *zhipu.ChatCompletionService {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	chatReq := h.client.ChatCompletion(model)
	// 系统 prompt 要放在最前面
	if req.Config.SystemPrompt != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.Config.SystemPrompt,
		})
	}
	chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt(),
	})

	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}

	if req.Config.TopP > 0 {
		chatReq = chatReq.SetTopP(req.Config.TopP)
	}
	return chatReq
}
