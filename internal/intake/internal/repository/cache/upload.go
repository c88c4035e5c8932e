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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrUploadNotFound = errors.New("上传记录不存在")

// PendingUpload 缓存里面的结构，Resumes 序列化之后是 base64
type PendingUpload struct {
	ChatID      int64  `json:"chatId"`
	Nonce       int64  `json:"nonce"`
	VacancyName string `json:"vacancyName"`
	VacancyText string `json:"vacancyText"`
	ResumesName string `json:"resumesName"`
	Resumes     []byte `json:"resumes"`
	ExpireAt    int64  `json:"expireAt"`
}

//go:generate mockgen -source=./upload.go -destination=./mocks/upload.mock.go -package=cachemocks -typed=true UploadCache
type UploadCache interface {
	Set(ctx context.Context, u PendingUpload, expiration time.Duration) error
	Get(ctx context.Context, chatID, nonce int64) (PendingUpload, error)
	// Take 取出并且删除，并发调用只有一个能拿到
	Take(ctx context.Context, chatID, nonce int64) (PendingUpload, error)
}

type UploadECache struct {
	ec ecache.Cache
}

func NewUploadECache(ec ecache.Cache) UploadCache {
	return &UploadECache{
		ec: &ecache.NamespaceCache{
			Namespace: "intake:upload:",
			C:         ec,
		},
	}
}

func (c *UploadECache) Set(ctx context.Context, u PendingUpload, expiration time.Duration) error {
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "序列化上传记录失败")
	}
	return c.ec.Set(ctx, c.key(u.ChatID, u.Nonce), string(data), expiration)
}

func (c *UploadECache) Get(ctx context.Context, chatID, nonce int64) (PendingUpload, error) {
	val := c.ec.Get(ctx, c.key(chatID, nonce))
	if val.KeyNotFound() {
		return PendingUpload{}, ErrUploadNotFound
	}
	if val.Err != nil {
		return PendingUpload{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, ok := val.Val.(string)
	if !ok {
		return PendingUpload{}, errors.Errorf("缓存的数据类型不对 %T", val.Val)
	}
	var res PendingUpload
	err := json.Unmarshal([]byte(str), &res)
	if err != nil {
		return PendingUpload{}, errors.Wrap(err, "反序列化上传记录失败")
	}
	return res, nil
}

func (c *UploadECache) Take(ctx context.Context, chatID, nonce int64) (PendingUpload, error) {
	res, err := c.Get(ctx, chatID, nonce)
	if err != nil {
		return PendingUpload{}, err
	}
	cnt, err := c.ec.Delete(ctx, c.key(chatID, nonce))
	if err != nil {
		return PendingUpload{}, errors.Wrap(err, "删除上传记录失败")
	}
	// 已经被别人取走了
	if cnt == 0 {
		return PendingUpload{}, ErrUploadNotFound
	}
	return res, nil
}

func (c *UploadECache) key(chatID, nonce int64) string {
	return fmt.Sprintf("%d:%d", chatID, nonce)
}
