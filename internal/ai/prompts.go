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

package ai

import "github.com/ecodeclub/aihr/internal/ai/internal/domain"

// 默认的提示词，可以在配置 llm.biz 里面覆盖
// 每个模板的占位符顺序和调用方传入的 Input 顺序一致
func defaultBizConfigs() map[string]domain.BizConfig {
	return map[string]domain.BizConfig{
		// Input: 标签列表，文本
		domain.BizEntityExtract: {
			Temperature:  0.1,
			SystemPrompt: "You are an information extraction engine. Answer with a single JSON object and nothing else.",
			PromptTemplate: `Extract named entities from the text below.
Allowed labels: %s.
Return a JSON object whose keys are labels and whose values are arrays of short strings.
Omit labels that have no entities.

Text:
%s`,
			MaxInput: 12000,
		},
		// Input: 简历，岗位描述
		domain.BizScoreGate: {
			Temperature:  0,
			SystemPrompt: "You are a strict technical recruiter.",
			PromptTemplate: `Rate how well the resume fits the vacancy.
Answer with a single integer from 0 to 100 and nothing else.

Resume:
%s

Vacancy:
%s`,
			MaxInput: 12000,
		},
		// Input: 题目数量，简历，岗位描述
		domain.BizQuestionGen: {
			Temperature: 0.7,
			PromptTemplate: `Write %s interview questions for this candidate that check the requirements of the vacancy.
Put every question on its own line starting with "- ". Do not add anything else.

Resume:
%s

Vacancy:
%s`,
			MaxInput: 12000,
		},
		// Input: 问答记录
		domain.BizAnswerEval: {
			Temperature: 0.3,
			PromptTemplate: `Evaluate the candidate's interview answers.
Start with a line "score: <0-100>", then list strengths, weaknesses and recommendations.

%s`,
			MaxInput: 20000,
		},
	}
}
