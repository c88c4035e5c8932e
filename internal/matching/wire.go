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

//go:build wireinject

package matching

import (
	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/matching/internal/domain"
	"github.com/ecodeclub/aihr/internal/matching/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(aiModule *ai.Module) (*Module, error) {
	wire.Build(
		service.NewEntityExtractor,
		service.NewMatchEngine,
		initScoreGate,
		initMatchOptions,
		wire.FieldsOf(new(*ai.Module), "Svc", "EmbeddingSvc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type config struct {
	Threshold     float64            `yaml:"threshold"`
	Weights       map[string]float64 `yaml:"weights"`
	PassThreshold float64            `yaml:"passThreshold"`
}

func loadConfig() config {
	cfg := config{
		Threshold:     domain.DefaultThreshold,
		PassThreshold: domain.DefaultPassThreshold,
	}
	if econf.Get("matching") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("matching", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initScoreGate(svc ai.LLMService) ScoreGate {
	return service.NewScoreGate(svc, loadConfig().PassThreshold)
}

func initMatchOptions() (MatchOptions, error) {
	cfg := loadConfig()
	opts := domain.DefaultMatchOptions()
	opts.Threshold = cfg.Threshold
	if len(cfg.Weights) > 0 {
		opts.Weights = cfg.Weights
	}
	return opts, opts.Validate()
}
