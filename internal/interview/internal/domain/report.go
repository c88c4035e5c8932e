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
	"fmt"
	"strings"
)

const (
	ReasonServiceUnavailable = "SERVICE_UNAVAILABLE"
	ReasonParseFailure       = "PARSE_FAILURE"
)

// Report 面试结束之后发给招聘方的报告
type Report struct {
	AliasID       string
	QuestionCount int
	// HasScore 模型的输出里面可能没有分数
	HasScore bool
	Score    float64
	Text     string
	// FailureReason 不为空说明评估失败了
	FailureReason string
}

func (r Report) Failed() bool {
	return r.FailureReason != ""
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Interview %s finished, %d questions answered.\n", r.AliasID, r.QuestionCount))
	if r.Failed() {
		sb.WriteString(fmt.Sprintf("Evaluation unavailable: %s", r.FailureReason))
		return sb.String()
	}
	if r.HasScore {
		sb.WriteString(fmt.Sprintf("Score: %.0f/100\n", r.Score))
	}
	sb.WriteString(r.Text)
	return sb.String()
}
