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

type State string

func (s State) String() string {
	return string(s)
}

const (
	// StateOpen 创建之后就是 OPEN，可以提交答案
	StateOpen State = "OPEN"
	// StateFinished 提交答案之后进入
	StateFinished State = "FINISHED"
	// StateClosed 过期之后被定时任务关闭
	StateClosed State = "CLOSED"
)

type Interview struct {
	ID int64
	// AliasID 唯一对外暴露的标识，和 ID 没有任何关系
	AliasID     string
	CandidateID int64
	// ChatID 候选人所属的招聘方会话，0 表示没有
	ChatID int64
	State  State
	// ExpireAt 毫秒，0 表示永不过期
	ExpireAt  int64
	Questions []Question
	Ctime     time.Time
	Utime     time.Time
}

// IsOpen 过期之后即使定时任务还没有关闭，也不再接受答案
func (i Interview) IsOpen(now time.Time) bool {
	if i.State != StateOpen {
		return false
	}
	return i.ExpireAt == 0 || i.ExpireAt > now.UnixMilli()
}

// ExpireAtOf 计算过期时间，expiration 不大于 0 表示不过期
func ExpireAtOf(now time.Time, expiration time.Duration) int64 {
	if expiration <= 0 {
		return 0
	}
	return now.Add(expiration).UnixMilli()
}

type Question struct {
	// Idx 题目在面试里面的顺序，从 0 开始，同时也是对外的题目编号
	Idx      int
	Question string
	Answer   string
	// Answered 区分空答案和没有回答
	Answered bool
}

// Answer 对外提交的答案，ID 就是 Question.Idx
type Answer struct {
	ID     int
	Answer string
}
