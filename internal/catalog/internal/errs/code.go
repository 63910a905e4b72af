package errs

var (
	SystemError  = ErrorCode{Code: 502001, Msg: "系统错误"}
	BookNotFound = ErrorCode{Code: 502002, Msg: "图书不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
