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

func TestWeights_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		weights Weights
		wantErr error
	}{
		{
			name:    "默认权重",
			weights: DefaultWeights(),
		},
		{
			name:    "浮点误差之内",
			weights: Weights{LabelSkill: 0.1, LabelTool: 0.2, LabelLanguage: 0.7000000001},
		},
		{
			name:    "为空",
			weights: Weights{},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "之和小于 1",
			weights: Weights{LabelSkill: 0.5, LabelTool: 0.4},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "负数",
			weights: Weights{LabelSkill: 1.5, LabelTool: -0.5},
			wantErr: ErrInvalidWeights,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.weights.Validate(), tc.wantErr)
		})
	}
}

func TestWeights_Categories(t *testing.T) {
	w := Weights{"Z_CUSTOM": 0.1, LabelTool: 0.2, "A_CUSTOM": 0.1, LabelSkill: 0.6}
	assert.Equal(t, []string{LabelSkill, LabelTool, "A_CUSTOM", "Z_CUSTOM"}, w.Categories())
}

func TestMatchOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultMatchOptions().Validate())
	assert.ErrorIs(t, MatchOptions{Threshold: 1.2, Weights: DefaultWeights()}.Validate(), ErrInvalidWeights)
}

func TestNewMetrics(t *testing.T) {
	testCases := []struct {
		name       string
		pairs      int
		vacancyCnt int
		resumeCnt  int
		wantRes    Metrics
	}{
		{
			name:       "一半匹配",
			pairs:      1,
			vacancyCnt: 2,
			resumeCnt:  2,
			wantRes:    Metrics{Precision: 0.5, Recall: 0.5, F1: 0.5},
		},
		{
			name:       "简历实体更多",
			pairs:      2,
			vacancyCnt: 2,
			resumeCnt:  4,
			wantRes:    Metrics{Precision: 0.5, Recall: 1, F1: 2.0 / 3},
		},
		{
			name:       "没有匹配",
			pairs:      0,
			vacancyCnt: 3,
			resumeCnt:  3,
			wantRes:    Metrics{},
		},
		{
			name:       "岗位没有实体",
			vacancyCnt: 0,
			resumeCnt:  3,
			wantRes:    Metrics{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := NewMetrics(tc.pairs, tc.vacancyCnt, tc.resumeCnt)
			assert.InDelta(t, tc.wantRes.Precision, res.Precision, 1e-9)
			assert.InDelta(t, tc.wantRes.Recall, res.Recall, 1e-9)
			assert.InDelta(t, tc.wantRes.F1, res.F1, 1e-9)
		})
	}
}

func TestScoreResult_Passed(t *testing.T) {
	assert.True(t, ScoreResult{Score: 70, Threshold: DefaultPassThreshold}.Passed())
	assert.False(t, ScoreResult{Score: 69.9, Threshold: DefaultPassThreshold}.Passed())
	assert.False(t, ScoreResult{Score: 0, Threshold: DefaultPassThreshold}.Passed())
}
