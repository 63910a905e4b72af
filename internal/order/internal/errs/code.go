package errs

var (
	SystemError        = ErrorCode{Code: 505001, Msg: "系统错误"}
	CartEmpty          = ErrorCode{Code: 505002, Msg: "购物车为空"}
	StockNotEnough     = ErrorCode{Code: 505003, Msg: "库存不足"}
	InvalidAddress     = ErrorCode{Code: 505004, Msg: "收货地址不完整"}
	OrderNotFound      = ErrorCode{Code: 505005, Msg: "订单未找到"}
	OrderNotCancelable = ErrorCode{Code: 505006, Msg: "订单当前状态不可取消"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
