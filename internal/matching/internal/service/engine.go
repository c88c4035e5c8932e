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
	"fmt"
	"math"
	"sync"

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var matchScoreHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "aihr_match_score",
	Help:    "Aggregate resume-vacancy match score",
	Buckets: prometheus.LinearBuckets(0, 10, 11),
})

// MatchEngine 按照标签对齐简历和岗位的实体
//
//go:generate mockgen -source=./engine.go -destination=../../mocks/engine.mock.go -package=matchingmocks -typed=true MatchEngine
type MatchEngine interface {
	// Match embedding 服务失败时整个调用失败，不会返回部分结果
	Match(ctx context.Context, resume, vacancy domain.EntityMap, opts domain.MatchOptions) (domain.MatchResult, error)
}

type matchEngine struct {
	embeddingSvc ai.EmbeddingService
}

func NewMatchEngine(embeddingSvc ai.EmbeddingService) MatchEngine {
	return &matchEngine{embeddingSvc: embeddingSvc}
}

func (m *matchEngine) Match(ctx context.Context,
	resume, vacancy domain.EntityMap, opts domain.MatchOptions) (domain.MatchResult, error) {
	if err := opts.Validate(); err != nil {
		return domain.MatchResult{}, err
	}
	categories := opts.Weights.Categories()
	res := domain.MatchResult{
		Threshold:  opts.Threshold,
		Categories: make(map[string]domain.CategoryResult, len(categories)),
		Resume:     resume,
		Vacancy:    vacancy,
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	for _, category := range categories {
		eg.Go(func() error {
			cr, err := m.matchCategory(ctx, category, vacancy.Get(category), resume.Get(category), opts.Threshold)
			if err != nil {
				return fmt.Errorf("匹配 %s 失败: %w", category, err)
			}
			mu.Lock()
			res.Categories[category] = cr
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.MatchResult{}, err
	}

	res.Metrics, res.Score = aggregate(categories, res.Categories, opts.Weights)
	matchScoreHistogram.Observe(res.Score)
	return res, nil
}

func (m *matchEngine) matchCategory(ctx context.Context, category string,
	vacancy, resume []string, threshold float64) (domain.CategoryResult, error) {
	res := domain.CategoryResult{
		Category:   category,
		VacancyCnt: len(vacancy),
		ResumeCnt:  len(resume),
	}
	// 任何一边为空，这个标签就是 0 分
	if len(vacancy) == 0 || len(resume) == 0 {
		return res, nil
	}
	texts := make([]string, 0, len(vacancy)+len(resume))
	texts = append(texts, vacancy...)
	texts = append(texts, resume...)
	vectors, err := m.embeddingSvc.Embed(ctx, texts)
	if err != nil {
		return res, err
	}
	if len(vectors) != len(texts) {
		return res, fmt.Errorf("%w: 向量数量不一致", ai.ErrExternalService)
	}
	res.Pairs = greedyAlign(vacancy, resume, vectors[:len(vacancy)], vectors[len(vacancy):], threshold)
	res.Metrics = domain.NewMetrics(len(res.Pairs), len(vacancy), len(resume))
	var sum float64
	for _, p := range res.Pairs {
		sum += p.Similarity
	}
	res.Score = clamp(100 * sum / float64(len(vacancy)))
	return res, nil
}

// greedyAlign 按照岗位实体的顺序，每个岗位实体挑相似度最高并且还没有被用过的简历实体
// 只有相似度不低于阈值才接受，接受之后这个简历实体不能再用，不回溯
func greedyAlign(vacancy, resume []string, vv, rv []ai.Vector, threshold float64) []domain.Pair {
	used := make([]bool, len(resume))
	res := make([]domain.Pair, 0, min(len(vacancy), len(resume)))
	for i := range vacancy {
		best, bestSim := -1, math.Inf(-1)
		for j := range resume {
			if used[j] {
				continue
			}
			if sim := vv[i].Dot(rv[j]); sim > bestSim {
				best, bestSim = j, sim
			}
		}
		if best < 0 || bestSim < threshold {
			continue
		}
		used[best] = true
		res = append(res, domain.Pair{
			Vacancy:    vacancy[i],
			Resume:     resume[best],
			Similarity: bestSim,
		})
	}
	return res
}

// aggregate 只统计岗位侧有实体并且权重大于 0 的标签，权重在这些标签里面重新归一化
func aggregate(categories []string, results map[string]domain.CategoryResult,
	weights domain.Weights) (domain.Metrics, float64) {
	var (
		total   float64
		metrics domain.Metrics
		score   float64
	)
	for _, category := range categories {
		cr := results[category]
		w := weights[category]
		if w <= 0 || cr.VacancyCnt == 0 {
			continue
		}
		total += w
		score += w * cr.Score
		metrics.Precision += w * cr.Precision
		metrics.Recall += w * cr.Recall
		metrics.F1 += w * cr.F1
	}
	if total == 0 {
		return domain.Metrics{}, 0
	}
	metrics.Precision /= total
	metrics.Recall /= total
	metrics.F1 /= total
	return metrics, clamp(score / total)
}

func clamp(score float64) float64 {
	return max(0, min(100, score))
}
