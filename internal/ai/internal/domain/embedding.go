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

import "math"

// Vector 单位长度的 embedding 向量
type Vector []float64

// Normalize 返回 L2 归一化之后的向量，零向量原样返回
func (v Vector) Normalize() Vector {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return v
	}
	norm := math.Sqrt(sum)
	res := make(Vector, len(v))
	for i, x := range v {
		res[i] = x / norm
	}
	return res
}

// Dot 点积。两个向量都已经归一化的时候就是余弦相似度
// 长度不一致的时候按照较短的那个计算
func (v Vector) Dot(other Vector) float64 {
	n := min(len(v), len(other))
	var res float64
	for i := 0; i < n; i++ {
		res += v[i] * other[i]
	}
	return res
}

func VectorOf32(src []float32) Vector {
	res := make(Vector, len(src))
	for i, x := range src {
		res[i] = float64(x)
	}
	return res
}
