package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	BookUnavailable = ErrorCode{Code: 503002, Msg: "图书不存在或已下架"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
