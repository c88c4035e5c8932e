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

const ReportEventName = "notification_report_events"

// ReportEvent 发给招聘方的一条文本消息
type ReportEvent struct {
	// Recipient 聊天平台上的会话标识
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
}
