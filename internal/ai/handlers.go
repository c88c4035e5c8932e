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

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/aihr/internal/ai/internal/domain"
	"github.com/ecodeclub/aihr/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/embedding"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/platform/anthropic"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/platform/ollama"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/aihr/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/econf"
)

type platformConfig struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"apikey"`
	Model   string `yaml:"model"`
	// ollama 专用
	Host string `yaml:"host"`
}

func loadPlatformConfig(key string) platformConfig {
	var cfg platformConfig
	if econf.Get(key) == nil {
		// 例如 ollama 允许完全不配置
		return cfg
	}
	err := econf.UnmarshalKey(key, &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitPlatform platform 就是真正的出口
func InitPlatform() handler.Handler {
	name := econf.GetString("llm.platform")
	cfg := loadPlatformConfig("llm." + name)
	switch name {
	case "", "openai":
		return openai.NewHandler(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case "zhipu":
		h, err := zhipu.NewHandler(cfg.APIKey, cfg.Model)
		if err != nil {
			panic(err)
		}
		return h
	case "anthropic":
		return anthropic.NewHandler(cfg.APIKey, cfg.Model)
	case "gemini":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		h, err := gemini.NewHandler(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			panic(err)
		}
		return h
	case "ollama":
		client, err := ollama.NewClient(cfg.Host)
		if err != nil {
			panic(err)
		}
		return ollama.NewHandler(client, cfg.Model)
	default:
		panic(fmt.Sprintf("未知的 LLM 平台 %s", name))
	}
}

// InitBizConfigs 配置文件里面的同名 biz 会覆盖默认配置
func InitBizConfigs() map[string]domain.BizConfig {
	res := defaultBizConfigs()
	if econf.Get("llm.biz") == nil {
		return res
	}
	var cfgs map[string]domain.BizConfig
	err := econf.UnmarshalKey("llm.biz", &cfgs)
	if err != nil {
		panic(err)
	}
	for biz, cfg := range cfgs {
		res[biz] = cfg
	}
	return res
}

// InitHandler log -> config -> platform
func InitHandler(platform handler.Handler, cfgs map[string]domain.BizConfig) handler.Handler {
	return handler.Chain(platform, log.NewHandler(), config.NewBuilder(cfgs))
}

func InitEmbeddingBackend() embedding.Backend {
	name := econf.GetString("embedding.platform")
	cfg := loadPlatformConfig("embedding." + name)
	switch name {
	case "", "openai":
		return embedding.NewOpenAIBackend(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case "ollama":
		client, err := ollama.NewClient(cfg.Host)
		if err != nil {
			panic(err)
		}
		return embedding.NewOllamaBackend(client, cfg.Model)
	default:
		panic(fmt.Sprintf("未知的 embedding 平台 %s", name))
	}
}

func InitEmbeddingService(backend embedding.Backend, ec ecache.Cache) embedding.Service {
	svc := embedding.NewService(backend)
	ttl := econf.GetDuration("embedding.cacheTTL")
	if ttl <= 0 {
		// 关闭缓存
		return svc
	}
	// 同一个模型版本的结果是确定的，所以可以缓存
	return embedding.NewCachedService(svc, backend.Name()+":"+backend.Model(),
		cache.NewEmbeddingECache(ec, ttl))
}
