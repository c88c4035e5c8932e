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

import "time"

// Candidate 创建之后不会修改
type Candidate struct {
	ID int64
	// ChatID 0 表示没有关联的会话
	ChatID int64
	CV     []byte
	CVName string
	Ctime  time.Time
}

// Chat 招聘方的会话，ExternalID 是聊天平台上的标识
type Chat struct {
	ID         int64
	ExternalID string
	Ctime      time.Time
}
