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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterview_IsOpen(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	testCases := []struct {
		name string
		iv   Interview
		want bool
	}{
		{
			name: "永不过期",
			iv:   Interview{State: StateOpen},
			want: true,
		},
		{
			name: "还没有过期",
			iv:   Interview{State: StateOpen, ExpireAt: now.UnixMilli() + 1},
			want: true,
		},
		{
			name: "刚好到期",
			iv:   Interview{State: StateOpen, ExpireAt: now.UnixMilli()},
		},
		{
			name: "过期了但是还没有被关闭",
			iv:   Interview{State: StateOpen, ExpireAt: now.Add(-time.Minute).UnixMilli()},
		},
		{
			name: "已经结束",
			iv:   Interview{State: StateFinished},
		},
		{
			name: "已经关闭",
			iv:   Interview{State: StateClosed, ExpireAt: now.Add(-time.Minute).UnixMilli()},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.iv.IsOpen(now))
		})
	}
}

func TestExpireAtOf(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	assert.Equal(t, int64(0), ExpireAtOf(now, 0))
	assert.Equal(t, int64(0), ExpireAtOf(now, -time.Hour))
	assert.Equal(t, now.Add(time.Hour).UnixMilli(), ExpireAtOf(now, time.Hour))
}
