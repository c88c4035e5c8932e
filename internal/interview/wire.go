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

package interview

import (
	"sync"
	"time"

	"github.com/ecodeclub/aihr/internal/ai"
	"github.com/ecodeclub/aihr/internal/interview/internal/job"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository"
	"github.com/ecodeclub/aihr/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	"github.com/ecodeclub/aihr/internal/interview/internal/web"
	"github.com/ecodeclub/aihr/internal/notification"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, aiModule *ai.Module, notificationModule *notification.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewInterviewRepository,
		service.NewAnswerEvaluator,
		initQuestionGenerator,
		initInterviewService,
		service.NewChatService,
		web.NewInterviewHandler,
		initRecruiterHandler,
		initCloseExpiredInterviewsJob,
		initExpiration,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Channel"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.InterviewDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db)
}

type config struct {
	NumQuestions    int           `yaml:"numQuestions"`
	Expiration      time.Duration `yaml:"expiration"`
	EvaluateTimeout time.Duration `yaml:"evaluateTimeout"`
	CloseBatchSize  int           `yaml:"closeBatchSize"`
}

func loadConfig() config {
	cfg := config{
		NumQuestions:    8,
		Expiration:      72 * time.Hour,
		EvaluateTimeout: time.Minute,
		CloseBatchSize:  100,
	}
	if econf.Get("interview") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("interview", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initExpiration() time.Duration {
	return loadConfig().Expiration
}

func initQuestionGenerator(svc ai.LLMService) service.QuestionGenerator {
	return service.NewQuestionGenerator(svc, loadConfig().NumQuestions)
}

func initInterviewService(repo repository.InterviewRepository,
	evaluator service.AnswerEvaluator,
	channel notification.Channel) service.InterviewService {
	return service.NewInterviewService(repo, evaluator, channel, loadConfig().EvaluateTimeout)
}

func initCloseExpiredInterviewsJob(svc service.InterviewService) *job.CloseExpiredInterviewsJob {
	return job.NewCloseExpiredInterviewsJob(svc, loadConfig().CloseBatchSize)
}

func initRecruiterHandler(chatSvc service.ChatService, svc service.InterviewService) *web.RecruiterHandler {
	return web.NewRecruiterHandler(chatSvc, svc, econf.GetString("recruiter.accessToken"))
}
