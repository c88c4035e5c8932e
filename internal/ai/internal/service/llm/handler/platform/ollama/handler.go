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

package ollama

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ollama/ollama/api"
)

const defaultModel = "qwen2.5:7b"

// Handler 本地部署的模型
type Handler struct {
	client *api.Client
	model  string
}

// NewClient host 为空的时候从 OLLAMA_HOST 环境变量读取
func NewClient(host string) (*api.Client, error) {
	if host == "" {
		return api.ClientFromEnvironment()
	}
	u, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	return api.NewClient(u, http.DefaultClient), nil
}

func NewHandler(client *api.Client, model string) *Handler {
	if model == "" {
		model = defaultModel
	}
	return &Handler{client: client, model: model}
}

func (h *Handler) Name() string {
	return "ollama"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	model := req.Config.Model
	if model == "" {
		model = h.model
	}
	stream := false
	genReq := &api.GenerateRequest{
		Model:  model,
		Prompt: req.Prompt(),
		System: req.Config.SystemPrompt,
		Stream: &stream,
	}
	options := map[string]any{}
	if req.Config.Temperature > 0 {
		options["temperature"] = req.Config.Temperature
	}
	if req.Config.TopP > 0 {
		options["top_p"] = req.Config.TopP
	}
	if len(options) > 0 {
		genReq.Options = options
	}

	var (
		sb     strings.Builder
		tokens int64
	)
	err := h.client.Generate(ctx, genReq, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		if resp.Done {
			tokens = int64(resp.PromptEvalCount + resp.EvalCount)
		}
		return nil
	})
	if err != nil {
		return domain.LLMResponse{}, domain.WrapExternal(h.Name(), err)
	}
	return domain.LLMResponse{Tokens: tokens, Answer: sb.String()}, nil
}
