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
)

var (
	ErrNotFound = errors.New("数据不存在")
	// ErrCandidateNotFound 也是一种 ErrNotFound
	ErrCandidateNotFound = fmt.Errorf("%w: 候选人不存在", ErrNotFound)
	ErrStateConflict     = errors.New("面试状态冲突")
	ErrValidation        = errors.New("参数校验失败")
)
