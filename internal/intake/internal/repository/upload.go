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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/aihr/internal/intake/internal/domain"
	"github.com/ecodeclub/aihr/internal/intake/internal/repository/cache"
)

//go:generate mockgen -source=./upload.go -destination=./mocks/upload.mock.go -package=repomocks -typed=true UploadRepository
type UploadRepository interface {
	// Save 按照 ExpireAt 计算剩余的有效期，已经过期的记录不会保存
	Save(ctx context.Context, u domain.PendingUpload) error
	Find(ctx context.Context, chatID, nonce int64) (domain.PendingUpload, error)
	Take(ctx context.Context, chatID, nonce int64) (domain.PendingUpload, error)
}

type uploadRepository struct {
	cache cache.UploadCache
}

func NewUploadRepository(c cache.UploadCache) UploadRepository {
	return &uploadRepository{cache: c}
}

func (r *uploadRepository) Save(ctx context.Context, u domain.PendingUpload) error {
	ttl := u.TTL(time.Now())
	if ttl <= 0 {
		return domain.ErrUploadNotFound
	}
	return r.cache.Set(ctx, r.toEntity(u), ttl)
}

func (r *uploadRepository) Find(ctx context.Context, chatID, nonce int64) (domain.PendingUpload, error) {
	u, err := r.cache.Get(ctx, chatID, nonce)
	if err != nil {
		return domain.PendingUpload{}, r.convertErr(err)
	}
	return r.toDomain(u), nil
}

func (r *uploadRepository) Take(ctx context.Context, chatID, nonce int64) (domain.PendingUpload, error) {
	u, err := r.cache.Take(ctx, chatID, nonce)
	if err != nil {
		return domain.PendingUpload{}, r.convertErr(err)
	}
	return r.toDomain(u), nil
}

func (r *uploadRepository) convertErr(err error) error {
	if errors.Is(err, cache.ErrUploadNotFound) {
		return domain.ErrUploadNotFound
	}
	return err
}

func (r *uploadRepository) toEntity(u domain.PendingUpload) cache.PendingUpload {
	return cache.PendingUpload{
		ChatID:      u.ChatID,
		Nonce:       u.Nonce,
		VacancyName: u.VacancyName,
		VacancyText: u.VacancyText,
		ResumesName: u.ResumesName,
		Resumes:     u.Resumes,
		ExpireAt:    u.ExpireAt,
	}
}

func (r *uploadRepository) toDomain(u cache.PendingUpload) domain.PendingUpload {
	return domain.PendingUpload{
		ChatID:      u.ChatID,
		Nonce:       u.Nonce,
		VacancyName: u.VacancyName,
		VacancyText: u.VacancyText,
		ResumesName: u.ResumesName,
		Resumes:     u.Resumes,
		ExpireAt:    u.ExpireAt,
	}
}
