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

package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      int64
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 1024,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "nodeId为负数",
			nodeId: -1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "生成正常",
			nodeId:      3,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.nodeId)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestGenerator_Next(t *testing.T) {
	g, err := NewGenerator(7)
	require.NoError(t, err)

	const goroutines, perGoroutine = 8, 20000
	var mu sync.Mutex
	idmap := make(map[int64]struct{}, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				ids = append(ids, g.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				idmap[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	// 校验生成的id是否重复
	assert.Len(t, idmap, goroutines*perGoroutine)
	for id := range idmap {
		assert.Equal(t, int64(7), NodeOf(id))
		break
	}
}
