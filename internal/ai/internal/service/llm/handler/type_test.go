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
	"testing"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordBuilder struct {
	name  string
	trace *[]string
}

func (r recordBuilder) Next(next Handler) Handler {
	return HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		*r.trace = append(*r.trace, r.name)
		return next.Handle(ctx, req)
	})
}

func TestChain(t *testing.T) {
	var trace []string
	platform := HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		trace = append(trace, "platform")
		return domain.LLMResponse{Answer: req.Biz}, nil
	})
	hdl := Chain(platform,
		recordBuilder{name: "log", trace: &trace},
		recordBuilder{name: "config", trace: &trace})
	resp, err := hdl.Handle(context.Background(), domain.LLMRequest{Biz: domain.BizAnswerEval})
	require.NoError(t, err)
	assert.Equal(t, domain.BizAnswerEval, resp.Answer)
	assert.Equal(t, []string{"log", "config", "platform"}, trace)
}
