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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMRequest_Prompt(t *testing.T) {
	testCases := []struct {
		name    string
		req     LLMRequest
		wantRes string
	}{
		{
			name: "使用模板",
			req: LLMRequest{
				Input:  []string{"3", "go"},
				Config: BizConfig{PromptTemplate: "写 %s 道 %s 的题目"},
			},
			wantRes: "写 3 道 go 的题目",
		},
		{
			name:    "没有模板直接拼接",
			req:     LLMRequest{Input: []string{"a", "b"}},
			wantRes: "a\n\nb",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.req.Prompt())
		})
	}
}
