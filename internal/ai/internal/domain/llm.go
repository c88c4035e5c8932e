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

package domain

import (
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

const (
	BizEntityExtract = "entity_extract"
	BizScoreGate     = "score_gate"
	BizQuestionGen   = "question_gen"
	BizAnswerEval    = "answer_eval"
)

type LLMRequest struct {
	Biz string
	// 请求id
	Tid string
	// 业务方的输入，按顺序填入 PromptTemplate
	Input []string
	// 业务相关的配置，为空时由 config handler 填充
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		if req.Config.PromptTemplate == "" {
			req.prompt = strings.Join(req.Input, "\n\n")
			return req.prompt
		}
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Biz string `yaml:"biz"`
	// 使用的模型，为空时使用平台默认模型
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"topP"`
	MaxTokens   int64   `yaml:"maxTokens"`
	// 系统 Prompt
	SystemPrompt string `yaml:"systemPrompt"`
	// 允许的最长输入，按字符计算
	MaxInput int `yaml:"maxInput"`
	// 提示词，使用 %s 占位
	PromptTemplate string `yaml:"promptTemplate"`
}
