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
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ecodeclub/ekit/slice"
)

const (
	DefaultThreshold = 0.78
	weightTolerance  = 1e-6
)

var ErrInvalidWeights = errors.New("非法的权重配置")

// Weights 标签 -> 权重，权重之和必须是 1
type Weights map[string]float64

func DefaultWeights() Weights {
	return Weights{LabelSkill: 1.0}
}

func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: 权重为空", ErrInvalidWeights)
	}
	var sum float64
	for label, weight := range w {
		if weight < 0 || math.IsNaN(weight) {
			return fmt.Errorf("%w: %s 的权重 %f 非法", ErrInvalidWeights, label, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: 权重之和 %f 不等于 1", ErrInvalidWeights, sum)
	}
	return nil
}

// Categories 需要参与匹配的标签，权重为 0 的也算，方便审计
func (w Weights) Categories() []string {
	res := make([]string, 0, len(w))
	// 按照 Labels 的顺序输出，保证结果稳定
	for _, label := range Labels {
		if _, ok := w[label]; ok {
			res = append(res, label)
		}
	}
	extra := make([]string, 0)
	for label := range w {
		if !slice.Contains(Labels, label) {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(res, extra...)
}

type MatchOptions struct {
	// 相似度阈值，[0, 1]
	Threshold float64
	Weights   Weights
}

func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		Threshold: DefaultThreshold,
		Weights:   DefaultWeights(),
	}
}

func (o MatchOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 || math.IsNaN(o.Threshold) {
		return fmt.Errorf("%w: 阈值 %f 不在 [0, 1] 之内", ErrInvalidWeights, o.Threshold)
	}
	return o.Weights.Validate()
}

// Pair 被接受的一对实体
type Pair struct {
	Vacancy    string
	Resume     string
	Similarity float64
}

type Metrics struct {
	Precision float64
	Recall    float64
	F1        float64
}

// NewMetrics 岗位实体是全部的正样本，简历实体是全部的预测结果
// 没有岗位实体的时候 precision 和 recall 都是 0
func NewMetrics(pairs, vacancyCnt, resumeCnt int) Metrics {
	if vacancyCnt == 0 || resumeCnt == 0 {
		return Metrics{}
	}
	m := Metrics{
		Precision: float64(pairs) / float64(resumeCnt),
		Recall:    float64(pairs) / float64(vacancyCnt),
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

type CategoryResult struct {
	Category string
	Pairs    []Pair
	Metrics
	// [0, 100]
	Score      float64
	VacancyCnt int
	ResumeCnt  int
}

// MatchResult 只在内存里面，不会持久化
type MatchResult struct {
	Threshold  float64
	Categories map[string]CategoryResult
	// 按照权重汇总的结果
	Metrics
	Score   float64
	Resume  EntityMap
	Vacancy EntityMap
}

func (r MatchResult) AcceptedPairs() int {
	var res int
	for _, c := range r.Categories {
		res += len(c.Pairs)
	}
	return res
}
