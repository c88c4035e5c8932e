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

const DefaultPassThreshold = 70.0

// ScoreResult 只有解析成功才会有 ScoreResult，解析失败是一个错误
type ScoreResult struct {
	// [0, 100]
	Score float64
	// 模型的原始输出，用于排查问题
	Raw       string
	Threshold float64
}

func (s ScoreResult) Passed() bool {
	return s.Score >= s.Threshold
}
