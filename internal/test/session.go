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


package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_session"

var errNotLogin = errors.New("没有登录")

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 直接从 gin.Context 里面取出 LoginAs 放进去的 session
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errNotLogin
	}
	return val.(session.Session), nil
}

// LoginAs 模拟已经登录的会话，uid 就是会话 ID
func LoginAs(uid int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(sessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	}
}
