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
	"time"
)

var (
	ErrUploadNotFound = errors.New("上传记录不存在或者已经过期")
	// ErrVacancyMissing 岗位描述解析不出任何文本
	ErrVacancyMissing = errors.New("岗位描述为空")
	ErrInvalidArchive = errors.New("简历必须是 zip 压缩包")
)

// PendingUpload 招聘方先上传岗位描述，再上传简历压缩包
// 两步之间的状态按照 (ChatID, Nonce) 保存
type PendingUpload struct {
	// ChatID 会话的内部 ID
	ChatID int64
	Nonce  int64

	VacancyName string
	VacancyText string

	ResumesName string
	// Resumes zip 压缩包的原始内容
	Resumes []byte

	// ExpireAt 毫秒
	ExpireAt int64
}

func (u PendingUpload) HasResumes() bool {
	return len(u.Resumes) > 0
}

// TTL 剩余的有效期，已经过期返回 0
func (u PendingUpload) TTL(now time.Time) time.Duration {
	return max(0, time.UnixMilli(u.ExpireAt).Sub(now))
}
