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
	"errors"
	"testing"

	"github.com/ecodeclub/aihr/internal/ai"
	aimocks "github.com/ecodeclub/aihr/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParseQuestions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		raw   string
		limit int
		want  []string
	}{
		{
			name:  "各种列表标记",
			raw:   "- 问题一\n* 问题二\n• 问题三\n1. 问题四\n2) 问题五",
			limit: 8,
			want:  []string{"问题一", "问题二", "问题三", "问题四", "问题五"},
		},
		{
			name:  "去掉空行和思考过程",
			raw:   "<think>先想一想\n- 不是题目</think>\n\n- What is Go?\n\n   \n- Why channels?",
			limit: 8,
			want:  []string{"What is Go?", "Why channels?"},
		},
		{
			name:  "超过上限截断",
			raw:   "- a1\n- a2\n- a3\n- a4",
			limit: 2,
			want:  []string{"a1", "a2"},
		},
		{
			name:  "代码块标记",
			raw:   "```\n- a1\n```",
			limit: 8,
			want:  []string{"a1"},
		},
		{
			name:  "没有题目",
			raw:   "  \n\n",
			limit: 8,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseQuestions(tc.raw, tc.limit))
		})
	}
}

func TestQuestionGenerator_Generate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) ai.LLMService
		want    []string
		wantErr error
	}{
		{
			name: "生成成功",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizQuestionGen, req.Biz)
						assert.Equal(t, []string{"3", "resume", "vacancy"}, req.Input)
						return ai.LLMResponse{Answer: "- q1\n- q2"}, nil
					})
				return svc
			},
			want: []string{"q1", "q2"},
		},
		{
			name: "模型没有生成题目",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: "\n"}, nil)
				return svc
			},
			wantErr: ai.ErrParseFailure,
		},
		{
			name: "模型调用失败",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.Join(ai.ErrExternalService, errors.New("timeout")))
				return svc
			},
			wantErr: ai.ErrExternalService,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gen := NewQuestionGenerator(tc.mock(ctrl), 3)
			res, err := gen.Generate(context.Background(), "resume", "vacancy")
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == ai.ErrExternalService {
				// 调用失败不是解析失败
				assert.NotErrorIs(t, err, ai.ErrParseFailure)
			}
			assert.Equal(t, tc.want, res)
		})
	}
}
