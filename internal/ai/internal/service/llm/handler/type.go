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

package handler

import (
	"context"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
)

type HandleFunc func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)

func (f HandleFunc) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return f(ctx, req)
}

//go:generate mockgen -source=./type.go -destination=./mocks/handler.mock.go -package=hdlmocks -typed=true Handler
type Handler interface {
	Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type Builder interface {
	Next(next Handler) Handler
}

// Chain 按照顺序把 builders 串起来，platform 是最终的出口
func Chain(platform Handler, builders ...Builder) Handler {
	res := platform
	for i := len(builders) - 1; i >= 0; i-- {
		res = builders[i].Next(res)
	}
	return res
}
