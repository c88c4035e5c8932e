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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository"
	"github.com/ecodeclub/aihr/internal/interview"
	"github.com/ecodeclub/aihr/internal/matching"
	"github.com/ecodeclub/aihr/internal/notification"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var screeningOutcomeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aihr_screening_outcomes_total",
	Help: "Screening outcomes grouped by outcome and reason",
}, []string{"outcome", "reason"})

type ScreeningConfig struct {
	// Concurrency 同时筛选的简历数量
	Concurrency   int     `yaml:"concurrency"`
	MatchEnabled  bool    `yaml:"matchEnabled"`
	MinMatchScore float64 `yaml:"minMatchScore"`
	// ResumeTimeout 单份简历所有外部调用的总时间
	ResumeTimeout time.Duration `yaml:"resumeTimeout"`
	PublicBaseURL string        `yaml:"publicBaseURL"`
}

// ScreeningService 把一个批次里面的简历逐个筛选，通过的直接创建面试
//
//go:generate mockgen -source=./screening.go -destination=../../mocks/screening.mock.go -package=intakemocks -typed=true ScreeningService
type ScreeningService interface {
	// Screen 取出批次并且删除，筛选结果逐条通知，最后再发一条汇总
	Screen(ctx context.Context, chatID, nonce int64) (domain.Summary, error)
}

type screeningService struct {
	repo    repository.UploadRepository
	decoder Decoder

	gate      matching.ScoreGate
	extractor matching.EntityExtractor
	engine    matching.MatchEngine
	opts      matching.MatchOptions

	questionGen  interview.QuestionGenerator
	interviewSvc interview.Service
	chatSvc      interview.ChatService
	expiration   time.Duration

	channel notification.Channel
	cfg     ScreeningConfig
	logger  *elog.Component
}

func NewScreeningService(repo repository.UploadRepository,
	decoder Decoder,
	matchingModule *matching.Module,
	interviewModule *interview.Module,
	channel notification.Channel,
	cfg ScreeningConfig) ScreeningService {
	return &screeningService{
		repo:         repo,
		decoder:      decoder,
		gate:         matchingModule.Gate,
		extractor:    matchingModule.Extractor,
		engine:       matchingModule.Engine,
		opts:         matchingModule.Options,
		questionGen:  interviewModule.QuestionGen,
		interviewSvc: interviewModule.Svc,
		chatSvc:      interviewModule.ChatSvc,
		expiration:   interviewModule.Expiration,
		channel:      channel,
		cfg:          cfg,
		logger:       elog.DefaultLogger.With(elog.FieldComponent("intake.screening")),
	}
}

// vacancyEntities 同一个批次只抽取一次岗位实体
type vacancyEntities struct {
	entities matching.EntityMap
	err      error
}

func (s *screeningService) Screen(ctx context.Context, chatID, nonce int64) (domain.Summary, error) {
	chat, err := s.chatSvc.Detail(ctx, chatID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("查找会话失败: %w", err)
	}
	u, err := s.repo.Take(ctx, chatID, nonce)
	if err != nil {
		return domain.Summary{}, err
	}
	if !u.HasResumes() {
		return domain.Summary{}, fmt.Errorf("%w: 批次 %d 没有简历", domain.ErrUploadNotFound, nonce)
	}
	files, err := s.decoder.Unzip(u.Resumes)
	if err != nil {
		s.notify(ctx, chat.ExternalID, fmt.Sprintf("Could not open %s: %s", u.ResumesName, err.Error()))
		return domain.Summary{}, fmt.Errorf("%w: %w", domain.ErrInvalidArchive, err)
	}

	var ve vacancyEntities
	if s.cfg.MatchEnabled {
		ve.entities, ve.err = s.extractor.Extract(ctx, u.VacancyText)
		if ve.err != nil {
			s.logger.Error("抽取岗位实体失败", elog.Int64("nonce", nonce), elog.FieldErr(ve.err))
		}
	}

	results := make([]domain.ScreeningResult, len(files))
	var eg errgroup.Group
	eg.SetLimit(max(1, s.cfg.Concurrency))
	for i, f := range files {
		eg.Go(func() error {
			res := s.screenResume(ctx, chatID, u.VacancyText, ve, f)
			screeningOutcomeCounter.WithLabelValues(string(res.Outcome), string(res.Reason)).Inc()
			s.notify(ctx, chat.ExternalID, res.String())
			results[i] = res
			return nil
		})
	}
	_ = eg.Wait()

	summary := domain.Summary{VacancyName: u.VacancyName, Results: results}
	s.notify(ctx, chat.ExternalID, summary.String())
	return summary, nil
}

func (s *screeningService) screenResume(ctx context.Context, chatID int64,
	vacancy string, ve vacancyEntities, f File) domain.ScreeningResult {
	res := domain.ScreeningResult{ResumeName: f.Name}
	text := s.decoder.Decode(FormatOf(f.Name), f.Data)
	if text == "" {
		return s.unscored(res, domain.ReasonEmptyResume)
	}
	if s.cfg.ResumeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ResumeTimeout)
		defer cancel()
	}

	gate, err := s.gate.Evaluate(ctx, text, vacancy)
	if err != nil {
		s.logger.Error("评分失败", elog.String("resume", f.Name), elog.FieldErr(err))
		return s.unscored(res, reasonOf(err))
	}
	res.HasScore, res.Score = true, gate.Score
	if !gate.Passed() {
		res.Outcome, res.Reason = domain.OutcomeRejected, domain.ReasonLowScore
		return res
	}

	if s.cfg.MatchEnabled {
		if ve.err != nil {
			return s.unscored(res, reasonOf(ve.err))
		}
		mr, err := s.match(ctx, text, ve.entities)
		if err != nil {
			s.logger.Error("匹配失败", elog.String("resume", f.Name), elog.FieldErr(err))
			return s.unscored(res, reasonOf(err))
		}
		res.HasMatch, res.MatchScore, res.Pairs = true, mr.Score, s.pairsOf(mr)
		if mr.Score < s.cfg.MinMatchScore {
			res.Outcome, res.Reason = domain.OutcomeRejected, domain.ReasonSkillMismatch
			return res
		}
	}

	questions, err := s.questionGen.Generate(ctx, text, vacancy)
	if err != nil {
		s.logger.Error("生成面试题失败", elog.String("resume", f.Name), elog.FieldErr(err))
		return s.unscored(res, domain.ReasonQuestionGenerationFailed)
	}

	// 所有外部调用都结束之后才写库
	iv, err := s.interviewSvc.Admit(ctx, interview.Candidate{
		ChatID: chatID,
		CV:     f.Data,
		CVName: f.Name,
	}, questions, s.expiration)
	if err != nil {
		s.logger.Error("创建面试失败", elog.String("resume", f.Name), elog.FieldErr(err))
		return s.unscored(res, domain.ReasonAdmissionFailed)
	}
	res.Outcome = domain.OutcomeAccepted
	res.InterviewURL = s.interviewURL(iv.AliasID)
	return res
}

func (s *screeningService) match(ctx context.Context, resume string,
	vacancy matching.EntityMap) (matching.MatchResult, error) {
	entities, err := s.extractor.Extract(ctx, resume)
	if err != nil {
		return matching.MatchResult{}, err
	}
	return s.engine.Match(ctx, entities, vacancy, s.opts)
}

func (s *screeningService) pairsOf(mr matching.MatchResult) []domain.MatchedPair {
	res := make([]domain.MatchedPair, 0, mr.AcceptedPairs())
	for _, category := range s.opts.Weights.Categories() {
		for _, p := range mr.Categories[category].Pairs {
			res = append(res, domain.MatchedPair{
				Category:   category,
				Vacancy:    p.Vacancy,
				Resume:     p.Resume,
				Similarity: p.Similarity,
			})
		}
	}
	return res
}

func (s *screeningService) interviewURL(alias string) string {
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/interviews/" + alias
}

func (s *screeningService) unscored(res domain.ScreeningResult, reason domain.Reason) domain.ScreeningResult {
	res.Outcome, res.Reason = domain.OutcomeUnscored, reason
	return res
}

func (s *screeningService) notify(ctx context.Context, recipient, text string) {
	err := s.channel.Send(ctx, recipient, text)
	if err != nil {
		s.logger.Error("发送筛选结果失败", elog.String("recipient", recipient), elog.FieldErr(err))
	}
}

// reasonOf 解析失败不是拒绝，其余的外部错误都当成服务不可用
func reasonOf(err error) domain.Reason {
	if errors.Is(err, matching.ErrParseFailure) {
		return domain.ReasonParseFailure
	}
	return domain.ReasonServiceUnavailable
}
