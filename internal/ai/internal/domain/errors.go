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

// ErrExternalService 模型服务不可用或者超时，调用方可以自行重试
var ErrExternalService = errors.New("外部模型服务调用失败")

// ErrParseFailure 模型的输出无法解析，它也是一种 ErrExternalService
// 调用方绝对不能把它当成一个合法的结果，比如 0 分或者没有题目
var ErrParseFailure = fmt.Errorf("%w: 无法解析模型输出", ErrExternalService)

// WrapExternal 把平台返回的错误统一包装成 ErrExternalService
func WrapExternal(platform string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrExternalService, platform, err)
}
