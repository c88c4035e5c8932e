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

package interview

import (
	"github.com/ecodeclub/aihr/internal/interview/internal/domain"
	"github.com/ecodeclub/aihr/internal/interview/internal/job"
	"github.com/ecodeclub/aihr/internal/interview/internal/service"
	"github.com/ecodeclub/aihr/internal/interview/internal/web"
)

type Service = service.InterviewService
type ChatService = service.ChatService
type QuestionGenerator = service.QuestionGenerator

type Handler = web.InterviewHandler
type RecruiterHandler = web.RecruiterHandler

type CloseExpiredInterviewsJob = job.CloseExpiredInterviewsJob

type Interview = domain.Interview
type Question = domain.Question
type Answer = domain.Answer
type Candidate = domain.Candidate
type Chat = domain.Chat
type State = domain.State

const (
	StateOpen     = domain.StateOpen
	StateFinished = domain.StateFinished
	StateClosed   = domain.StateClosed
)

var (
	ErrNotFound          = domain.ErrNotFound
	ErrCandidateNotFound = domain.ErrCandidateNotFound
	ErrStateConflict     = domain.ErrStateConflict
	ErrValidation        = domain.ErrValidation
)
