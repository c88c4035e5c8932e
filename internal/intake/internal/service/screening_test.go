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
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	repomocks "github.com/ecodeclub/aihr/internal/intake/internal/repository/mocks"
	"github.com/ecodeclub/aihr/internal/interview"
	interviewmocks "github.com/ecodeclub/aihr/internal/interview/mocks"
	"github.com/ecodeclub/aihr/internal/matching"
	matchingmocks "github.com/ecodeclub/aihr/internal/matching/mocks"
	notificationmocks "github.com/ecodeclub/aihr/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testResume  = "Go developer, Kafka, MySQL"
	testVacancy = "Senior Go developer"
)

type screeningMocks struct {
	repo      *repomocks.MockUploadRepository
	gate      *matchingmocks.MockScoreGate
	extractor *matchingmocks.MockEntityExtractor
	engine    *matchingmocks.MockMatchEngine
	questions *interviewmocks.MockQuestionGenerator
	interview *interviewmocks.MockInterviewService
	chat      *interviewmocks.MockChatService
	channel   *notificationmocks.MockChannel

	mu    sync.Mutex
	texts []string
}

func newScreeningMocks(ctrl *gomock.Controller) *screeningMocks {
	m := &screeningMocks{
		repo:      repomocks.NewMockUploadRepository(ctrl),
		gate:      matchingmocks.NewMockScoreGate(ctrl),
		extractor: matchingmocks.NewMockEntityExtractor(ctrl),
		engine:    matchingmocks.NewMockMatchEngine(ctrl),
		questions: interviewmocks.NewMockQuestionGenerator(ctrl),
		interview: interviewmocks.NewMockInterviewService(ctrl),
		chat:      interviewmocks.NewMockChatService(ctrl),
		channel:   notificationmocks.NewMockChannel(ctrl),
	}
	m.channel.EXPECT().Send(gomock.Any(), "chat-3", gomock.Any()).
		DoAndReturn(func(ctx context.Context, recipient, text string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.texts = append(m.texts, text)
			return nil
		}).AnyTimes()
	return m
}

func (m *screeningMocks) expectUpload(t *testing.T, files map[string][]byte) {
	m.chat.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Chat{ID: 3, ExternalID: "chat-3"}, nil)
	m.repo.EXPECT().Take(gomock.Any(), int64(3), int64(42)).Return(domain.PendingUpload{
		ChatID:      3,
		Nonce:       42,
		VacancyName: "backend.txt",
		VacancyText: testVacancy,
		ResumesName: "resumes.zip",
		Resumes:     zipOf(t, files),
	}, nil)
}

func (m *screeningMocks) service(cfg ScreeningConfig) ScreeningService {
	return NewScreeningService(m.repo, NewDecoder(50, 10<<20),
		&matching.Module{
			Gate:      m.gate,
			Extractor: m.extractor,
			Engine:    m.engine,
			Options: matching.MatchOptions{
				Threshold: 0.8,
				Weights:   matching.Weights{"SKILL": 1},
			},
		},
		&interview.Module{
			Svc:         m.interview,
			ChatSvc:     m.chat,
			QuestionGen: m.questions,
			Expiration:  72 * time.Hour,
		},
		m.channel, cfg)
}

func TestScreeningService_Screen(t *testing.T) {
	t.Parallel()
	baseCfg := ScreeningConfig{
		Concurrency:   2,
		MinMatchScore: 50,
		PublicBaseURL: "https://hr.example.com/",
	}
	matchCfg := baseCfg
	matchCfg.MatchEnabled = true

	passed := matching.ScoreResult{Score: 82, Threshold: 70}
	questions := []string{"Q1", "Q2"}

	testCases := []struct {
		name   string
		cfg    ScreeningConfig
		resume []byte
		mock   func(m *screeningMocks)
		want   domain.ScreeningResult
	}{
		{
			name:   "通过并且创建面试",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.questions.EXPECT().Generate(gomock.Any(), testResume, testVacancy).Return(questions, nil)
				m.interview.EXPECT().Admit(gomock.Any(), interview.Candidate{
					ChatID: 3,
					CV:     []byte(testResume),
					CVName: "alice.txt",
				}, questions, 72*time.Hour).Return(interview.Interview{AliasID: "abc"}, nil)
			},
			want: domain.ScreeningResult{
				ResumeName:   "alice.txt",
				Outcome:      domain.OutcomeAccepted,
				HasScore:     true,
				Score:        82,
				InterviewURL: "https://hr.example.com/interviews/abc",
			},
		},
		{
			name:   "分数太低",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).
					Return(matching.ScoreResult{Score: 40, Threshold: 70}, nil)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeRejected,
				Reason:     domain.ReasonLowScore,
				HasScore:   true,
				Score:      40,
			},
		},
		{
			name:   "模型输出无法解析",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).
					Return(matching.ScoreResult{}, fmt.Errorf("%w: 没有数字", matching.ErrParseFailure))
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonParseFailure,
			},
		},
		{
			name:   "模型服务不可用",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).
					Return(matching.ScoreResult{}, ai.ErrExternalService)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonServiceUnavailable,
			},
		},
		{
			name:   "空简历",
			cfg:    baseCfg,
			resume: []byte("   "),
			mock:   func(m *screeningMocks) {},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonEmptyResume,
			},
		},
		{
			name:   "技能不匹配",
			cfg:    matchCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				vacancy := matching.EntityMap{"SKILL": {"go", "rust"}}
				resume := matching.EntityMap{"SKILL": {"golang"}}
				m.extractor.EXPECT().Extract(gomock.Any(), testVacancy).Return(vacancy, nil)
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.extractor.EXPECT().Extract(gomock.Any(), testResume).Return(resume, nil)
				m.engine.EXPECT().Match(gomock.Any(), resume, vacancy, gomock.Any()).Return(matching.MatchResult{
					Score: 45,
					Categories: map[string]matching.CategoryResult{
						"SKILL": {Category: "SKILL", Pairs: []matching.Pair{{Vacancy: "go", Resume: "golang", Similarity: 0.9}}},
					},
				}, nil)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeRejected,
				Reason:     domain.ReasonSkillMismatch,
				HasScore:   true,
				Score:      82,
				HasMatch:   true,
				MatchScore: 45,
				Pairs:      []domain.MatchedPair{{Category: "SKILL", Vacancy: "go", Resume: "golang", Similarity: 0.9}},
			},
		},
		{
			name:   "匹配通过",
			cfg:    matchCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), testVacancy).Return(matching.EntityMap{"SKILL": {"go"}}, nil)
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.extractor.EXPECT().Extract(gomock.Any(), testResume).Return(matching.EntityMap{"SKILL": {"golang"}}, nil)
				m.engine.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(matching.MatchResult{Score: 90}, nil)
				m.questions.EXPECT().Generate(gomock.Any(), testResume, testVacancy).Return(questions, nil)
				m.interview.EXPECT().Admit(gomock.Any(), gomock.Any(), questions, 72*time.Hour).
					Return(interview.Interview{AliasID: "xyz"}, nil)
			},
			want: domain.ScreeningResult{
				ResumeName:   "alice.txt",
				Outcome:      domain.OutcomeAccepted,
				HasScore:     true,
				Score:        82,
				HasMatch:     true,
				MatchScore:   90,
				Pairs:        []domain.MatchedPair{},
				InterviewURL: "https://hr.example.com/interviews/xyz",
			},
		},
		{
			name:   "匹配服务不可用",
			cfg:    matchCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), testVacancy).Return(matching.EntityMap{"SKILL": {"go"}}, nil)
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.extractor.EXPECT().Extract(gomock.Any(), testResume).Return(matching.EntityMap{"SKILL": {"golang"}}, nil)
				m.engine.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(matching.MatchResult{}, ai.ErrExternalService)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonServiceUnavailable,
				HasScore:   true,
				Score:      82,
			},
		},
		{
			name:   "岗位实体无法解析",
			cfg:    matchCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.extractor.EXPECT().Extract(gomock.Any(), testVacancy).Return(nil, matching.ErrParseFailure)
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonParseFailure,
				HasScore:   true,
				Score:      82,
			},
		},
		{
			name:   "生成面试题失败",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.questions.EXPECT().Generate(gomock.Any(), testResume, testVacancy).Return(nil, ai.ErrExternalService)
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonQuestionGenerationFailed,
				HasScore:   true,
				Score:      82,
			},
		},
		{
			name:   "创建面试失败",
			cfg:    baseCfg,
			resume: []byte(testResume),
			mock: func(m *screeningMocks) {
				m.gate.EXPECT().Evaluate(gomock.Any(), testResume, testVacancy).Return(passed, nil)
				m.questions.EXPECT().Generate(gomock.Any(), testResume, testVacancy).Return(questions, nil)
				m.interview.EXPECT().Admit(gomock.Any(), gomock.Any(), questions, 72*time.Hour).
					Return(interview.Interview{}, errors.New("mock db 错误"))
			},
			want: domain.ScreeningResult{
				ResumeName: "alice.txt",
				Outcome:    domain.OutcomeUnscored,
				Reason:     domain.ReasonAdmissionFailed,
				HasScore:   true,
				Score:      82,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newScreeningMocks(ctrl)
			m.expectUpload(t, map[string][]byte{"alice.txt": tc.resume})
			tc.mock(m)

			summary, err := m.service(tc.cfg).Screen(context.Background(), 3, 42)
			require.NoError(t, err)
			assert.Equal(t, "backend.txt", summary.VacancyName)
			require.Len(t, summary.Results, 1)
			assert.Equal(t, tc.want, summary.Results[0])
			// 一条结果加一条汇总
			assert.Equal(t, []string{tc.want.String(), summary.String()}, m.texts)
		})
	}
}

func TestScreeningService_ScreenBatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newScreeningMocks(ctrl)
	files := make(map[string][]byte, 6)
	for i := 0; i < 6; i++ {
		files[fmt.Sprintf("cv-%d.txt", i)] = []byte(fmt.Sprintf("resume %d", i))
	}
	m.expectUpload(t, files)
	m.gate.EXPECT().Evaluate(gomock.Any(), gomock.Any(), testVacancy).
		DoAndReturn(func(ctx context.Context, resume, vacancy string) (matching.ScoreResult, error) {
			var idx int
			_, _ = fmt.Sscanf(resume, "resume %d", &idx)
			// 偶数通过，奇数不通过
			if idx%2 == 0 {
				return matching.ScoreResult{Score: 90, Threshold: 70}, nil
			}
			return matching.ScoreResult{Score: 10, Threshold: 70}, nil
		}).Times(6)
	m.questions.EXPECT().Generate(gomock.Any(), gomock.Any(), testVacancy).Return([]string{"Q1"}, nil).Times(3)
	m.interview.EXPECT().Admit(gomock.Any(), gomock.Any(), []string{"Q1"}, 72*time.Hour).
		Return(interview.Interview{AliasID: "abc"}, nil).Times(3)

	summary, err := m.service(ScreeningConfig{Concurrency: 3}).Screen(context.Background(), 3, 42)
	require.NoError(t, err)
	assert.Len(t, summary.Results, 6)
	assert.Equal(t, 3, summary.Count(domain.OutcomeAccepted))
	assert.Equal(t, 3, summary.Count(domain.OutcomeRejected))
	assert.Equal(t, 0, summary.Count(domain.OutcomeUnscored))
	// 汇总一定是最后一条
	require.Len(t, m.texts, 7)
	assert.Equal(t, summary.String(), m.texts[6])
}

func TestScreeningService_ScreenFailed(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(t *testing.T, m *screeningMocks)
		wantErr error
		// 失败的时候发出的通知
		wantTexts []string
	}{
		{
			name: "会话不存在",
			mock: func(t *testing.T, m *screeningMocks) {
				m.chat.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Chat{}, interview.ErrNotFound)
			},
			wantErr: interview.ErrNotFound,
		},
		{
			name: "批次不存在",
			mock: func(t *testing.T, m *screeningMocks) {
				m.chat.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Chat{ID: 3, ExternalID: "chat-3"}, nil)
				m.repo.EXPECT().Take(gomock.Any(), int64(3), int64(42)).Return(domain.PendingUpload{}, domain.ErrUploadNotFound)
			},
			wantErr: domain.ErrUploadNotFound,
		},
		{
			name: "还没有上传简历",
			mock: func(t *testing.T, m *screeningMocks) {
				m.chat.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Chat{ID: 3, ExternalID: "chat-3"}, nil)
				m.repo.EXPECT().Take(gomock.Any(), int64(3), int64(42)).Return(domain.PendingUpload{ChatID: 3, Nonce: 42}, nil)
			},
			wantErr: domain.ErrUploadNotFound,
		},
		{
			name: "压缩包损坏",
			mock: func(t *testing.T, m *screeningMocks) {
				m.chat.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Chat{ID: 3, ExternalID: "chat-3"}, nil)
				m.repo.EXPECT().Take(gomock.Any(), int64(3), int64(42)).Return(domain.PendingUpload{
					ChatID:      3,
					Nonce:       42,
					ResumesName: "resumes.zip",
					Resumes:     []byte("broken"),
				}, nil)
			},
			wantErr:   domain.ErrInvalidArchive,
			wantTexts: []string{"Could not open resumes.zip"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newScreeningMocks(ctrl)
			tc.mock(t, m)
			_, err := m.service(ScreeningConfig{Concurrency: 1}).Screen(context.Background(), 3, 42)
			assert.ErrorIs(t, err, tc.wantErr)
			require.Len(t, m.texts, len(tc.wantTexts))
			for i, text := range tc.wantTexts {
				assert.Contains(t, m.texts[i], text)
			}
		})
	}
}
