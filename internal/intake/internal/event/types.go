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

package event

const ScreeningRequestedEventName = "intake_screening_events"

// ScreeningRequestedEvent 简历已经上传，可以开始筛选
type ScreeningRequestedEvent struct {
	ChatID int64 `json:"chatId"`
	Nonce  int64 `json:"nonce"`
}
