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
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/event"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository"
	"github.com/ecodeclub/aihr/internal/pkg/mqx"
	"github.com/gotomicro/ego/core/elog"
)

// NonceGenerator 生成上传批次的编号
type NonceGenerator interface {
	Next() int64
}

//go:generate mockgen -source=./upload.go -destination=../../mocks/upload.mock.go -package=intakemocks -typed=true UploadService
type UploadService interface {
	// CreateVacancy 解析岗位描述，创建一个待上传简历的批次，返回批次编号
	CreateVacancy(ctx context.Context, chatID int64, filename string, data []byte) (int64, error)
	// AttachResumes 把简历压缩包挂到批次上，并且发出筛选事件
	AttachResumes(ctx context.Context, chatID, nonce int64, filename string, data []byte) error
}

type uploadService struct {
	repo     repository.UploadRepository
	decoder  Decoder
	nonce    NonceGenerator
	producer mqx.Producer[event.ScreeningRequestedEvent]
	ttl      time.Duration
	logger   *elog.Component
}

func NewUploadService(repo repository.UploadRepository,
	decoder Decoder,
	nonce NonceGenerator,
	producer mqx.Producer[event.ScreeningRequestedEvent],
	ttl time.Duration) UploadService {
	return &uploadService{
		repo:     repo,
		decoder:  decoder,
		nonce:    nonce,
		producer: producer,
		ttl:      ttl,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("intake.upload")),
	}
}

func (s *uploadService) CreateVacancy(ctx context.Context, chatID int64, filename string, data []byte) (int64, error) {
	text := s.decoder.Decode(FormatOf(filename), data)
	if text == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrVacancyMissing, filename)
	}
	u := domain.PendingUpload{
		ChatID:      chatID,
		Nonce:       s.nonce.Next(),
		VacancyName: filename,
		VacancyText: text,
		ExpireAt:    time.Now().Add(s.ttl).UnixMilli(),
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return 0, err
	}
	return u.Nonce, nil
}

func (s *uploadService) AttachResumes(ctx context.Context, chatID, nonce int64, filename string, data []byte) error {
	if FormatOf(filename) != FormatZIP || len(data) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArchive, filename)
	}
	u, err := s.repo.Find(ctx, chatID, nonce)
	if err != nil {
		return err
	}
	u.ResumesName = filename
	u.Resumes = data
	// 保留原来的过期时间，挂简历不会续期
	if err = s.repo.Save(ctx, u); err != nil {
		return err
	}
	err = s.producer.Produce(ctx, event.ScreeningRequestedEvent{ChatID: chatID, Nonce: nonce})
	if err != nil {
		return fmt.Errorf("发送筛选事件失败: %w", err)
	}
	s.logger.Info("简历上传完成",
		elog.Int64("chatId", chatID),
		elog.Int64("nonce", nonce),
		elog.Int("bytes", len(data)))
	return nil
}
