package web

import (
	"github.com/ecodeclub/aihr/internal/intake/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}
