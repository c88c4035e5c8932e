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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrVectorNotFound = errors.New("向量没找到")

//go:generate mockgen -source=./embedding.go -destination=./mocks/embedding.mock.go -package=cachemocks -typed=true EmbeddingCache
type EmbeddingCache interface {
	Get(ctx context.Context, model, text string) (domain.Vector, error)
	Set(ctx context.Context, model, text string, vec domain.Vector) error
}

type EmbeddingECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewEmbeddingECache(ec ecache.Cache, expiration time.Duration) EmbeddingCache {
	return &EmbeddingECache{
		ec: &ecache.NamespaceCache{
			Namespace: "embedding:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (e *EmbeddingECache) Get(ctx context.Context, model, text string) (domain.Vector, error) {
	val := e.ec.Get(ctx, e.key(model, text))
	if val.KeyNotFound() {
		return nil, ErrVectorNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, ok := val.Val.(string)
	if !ok {
		return nil, errors.Errorf("缓存的数据类型不对 %T", val.Val)
	}
	var vec domain.Vector
	err := json.Unmarshal([]byte(str), &vec)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化向量失败")
	}
	return vec, nil
}

func (e *EmbeddingECache) Set(ctx context.Context, model, text string, vec domain.Vector) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return errors.Wrap(err, "序列化向量失败")
	}
	return e.ec.Set(ctx, e.key(model, text), string(data), e.expiration)
}

// 文本可能很长，所以用摘要
func (e *EmbeddingECache) key(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%s", model, hex.EncodeToString(sum[:]))
}
