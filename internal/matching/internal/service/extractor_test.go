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
	"testing"

	"github.com/ecodeclub/aihr/internal/ai"
	aimocks "github.com/ecodeclub/aihr/internal/ai/mocks"
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEntityExtractor_Extract(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		mock    func(ctrl *gomock.Controller) ai.LLMService
		wantRes domain.EntityMap
		wantErr error
	}{
		{
			name: "抽取成功",
			text: "5 years of Python and Docker",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizEntityExtract, req.Biz)
						assert.NotEmpty(t, req.Tid)
						assert.Equal(t, strings.Join(domain.Labels, ", "), req.Input[0])
						assert.Equal(t, "5 years of Python and Docker", req.Input[1])
						return ai.LLMResponse{
							Answer: "```json\n{\"SKILL\": [\"Python\", \"Docker\"], \"YEARS\": [\"5 years\"]}\n```",
						}, nil
					})
				return svc
			},
			wantRes: domain.EntityMap{
				domain.LabelSkill: {"python", "docker"},
				domain.LabelYears: {"5 years"},
			},
		},
		{
			name: "空文本不调用模型",
			text: "   ",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				return aimocks.NewMockService(ctrl)
			},
			wantRes: domain.EntityMap{},
		},
		{
			name: "输出不是 JSON",
			text: "resume",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "Sorry, I can't"}, nil)
				return svc
			},
			wantErr: ErrParseFailure,
		},
		{
			name: "模型不可用",
			text: "resume",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, ai.ErrExternalService)
				return svc
			},
			wantErr: ai.ErrExternalService,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			extractor := NewEntityExtractor(tc.mock(ctrl))
			res, err := extractor.Extract(context.Background(), tc.text)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
