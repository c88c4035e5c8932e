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

package web

type Question struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

type QuestionsResp struct {
	Questions []Question `json:"questions"`
}

type Answer struct {
	ID     int    `json:"id"`
	Answer string `json:"answer"`
}

type SubmitAnswersReq struct {
	Answers []Answer `json:"answers"`
}

type ErrorResp struct {
	Error string `json:"error"`
}

type LoginReq struct {
	// ChatID 聊天平台上的会话标识
	ChatID string `json:"chatId"`
	Token  string `json:"token"`
}

type Chat struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"externalId"`
	Ctime      int64  `json:"ctime"`
}

type CandidateDetailReq struct {
	ID int64 `json:"id"`
}

// Candidate 不返回简历内容
type Candidate struct {
	ID     int64  `json:"id"`
	CVName string `json:"cvName"`
	CVSize int    `json:"cvSize"`
	Ctime  int64  `json:"ctime"`
}

type InterviewDetailReq struct {
	AliasID string `json:"aliasId"`
}

type Interview struct {
	AliasID   string              `json:"aliasId"`
	State     string              `json:"state"`
	ExpireAt  int64               `json:"expireAt"`
	Questions []InterviewQuestion `json:"questions"`
	Ctime     int64               `json:"ctime"`
	Utime     int64               `json:"utime"`
}

type InterviewQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Answered bool   `json:"answered"`
}
