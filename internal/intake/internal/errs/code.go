package errs

var (
	SystemError = ErrorCode{Code: 530001, Msg: "系统错误"}
	// InvalidFile 没有上传文件，或者文件太大
	InvalidFile    = ErrorCode{Code: 430001, Msg: "文件无效"}
	VacancyMissing = ErrorCode{Code: 430002, Msg: "岗位描述为空"}
	UploadNotFound = ErrorCode{Code: 430003, Msg: "Upload the vacancy first"}
	InvalidArchive = ErrorCode{Code: 430004, Msg: "简历必须是 zip 压缩包"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
