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

package openai

import (
	"context"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/"
	defaultModel   = "gpt-4o-mini"
)

// Handler 兼容 OpenAI 协议的平台都可以用，例如 deepseek、通义
type Handler struct {
	client *openai.Client
	model  string
}

func NewHandler(baseURL, apikey, model string) *Handler {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
		model:  model,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(&req))
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

func (h *Handler) buildParams(req *domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(req.Config.SystemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt()))
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(model),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.F(req.Config.MaxTokens)
	}
	return params
}
