package errs

var (
	SystemError = ErrorCode{Code: 520001, Msg: "系统错误"}
	// InvalidToken 招聘方登录使用的 token 不对
	InvalidToken      = ErrorCode{Code: 420001, Msg: "无效的访问令牌"}
	ChatNotFound      = ErrorCode{Code: 420002, Msg: "会话不存在"}
	CandidateNotFound = ErrorCode{Code: 420003, Msg: "候选人不存在"}
	InterviewNotFound = ErrorCode{Code: 420004, Msg: "面试不存在"}
	// PermissionDenied 只能查看自己会话下的数据
	PermissionDenied = ErrorCode{Code: 420005, Msg: "无权访问"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
