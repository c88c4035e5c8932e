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
	"testing"

	"github.com/ecodeclub/aihr/internal/ai"
	aimocks "github.com/ecodeclub/aihr/internal/ai/mocks"
	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParseEvaluationScore(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		text    string
		want    float64
		wantHas bool
	}{
		{name: "英文", text: "score: 85\nstrong", want: 85, wantHas: true},
		{name: "大小写和全角冒号", text: "Score： 70", want: 70, wantHas: true},
		{name: "俄文", text: "Оценка: 42", want: 42, wantHas: true},
		{name: "超过 100", text: "score: 120", want: 100, wantHas: true},
		{name: "零分", text: "score: 0", want: 0, wantHas: true},
		{name: "没有分数", text: "the candidate did well"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, ok := ParseEvaluationScore(tc.text)
			assert.Equal(t, tc.wantHas, ok)
			assert.Equal(t, tc.want, score)
		})
	}
}

func TestTranscript(t *testing.T) {
	t.Parallel()
	res := Transcript([]domain.Question{
		{Idx: 0, Question: "q1", Answer: "a1"},
		{Idx: 1, Question: "q2", Answer: ""},
	})
	assert.Equal(t, "Question 1: q1\nAnswer 1: a1\n\nQuestion 2: q2\nAnswer 2: ", res)
}

func TestAnswerEvaluator_Evaluate(t *testing.T) {
	t.Parallel()
	iv := domain.Interview{
		AliasID: "alias",
		Questions: []domain.Question{
			{Idx: 0, Question: "q1", Answer: "a1", Answered: true},
			{Idx: 1, Question: "q2", Answer: "a2", Answered: true},
		},
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) ai.LLMService
		want domain.Report
	}{
		{
			name: "评估成功",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizAnswerEval, req.Biz)
						assert.Equal(t, []string{Transcript(iv.Questions)}, req.Input)
						return ai.LLMResponse{Answer: "<think>hmm</think>score: 77\ngood"}, nil
					})
				return svc
			},
			want: domain.Report{
				AliasID:       "alias",
				QuestionCount: 2,
				HasScore:      true,
				Score:         77,
				Text:          "score: 77\ngood",
			},
		},
		{
			name: "没有分数",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: "fine"}, nil)
				return svc
			},
			want: domain.Report{AliasID: "alias", QuestionCount: 2, Text: "fine"},
		},
		{
			name: "模型调用失败",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, ai.ErrExternalService)
				return svc
			},
			want: domain.Report{
				AliasID:       "alias",
				QuestionCount: 2,
				FailureReason: domain.ReasonServiceUnavailable,
			},
		},
		{
			name: "模型输出为空",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: "<think>x</think>  "}, nil)
				return svc
			},
			want: domain.Report{
				AliasID:       "alias",
				QuestionCount: 2,
				FailureReason: domain.ReasonParseFailure,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			report := NewAnswerEvaluator(tc.mock(ctrl)).Evaluate(context.Background(), iv)
			assert.Equal(t, tc.want, report)
		})
	}
}
