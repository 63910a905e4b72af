package errs

var (
	SystemError        = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidSignature   = ErrorCode{Code: 506002, Msg: "支付签名校验失败"}
	PaymentNotFound    = ErrorCode{Code: 506003, Msg: "支付单未找到"}
	OrderNotPayable    = ErrorCode{Code: 506004, Msg: "订单当前状态不可支付"}
	GatewayUnavailable = ErrorCode{Code: 506005, Msg: "支付网关暂不可用"}
	CartEmpty          = ErrorCode{Code: 506006, Msg: "购物车为空"}
	StockNotEnough     = ErrorCode{Code: 506007, Msg: "库存不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
