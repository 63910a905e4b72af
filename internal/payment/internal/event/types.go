package event

const PaymentEventName = "payment_events"

type PaymentEvent struct {
	OrderSN string `json:"orderSn"`
	PayerID int64  `json:"payerId"`
	// 支付单最终状态
	Status uint8 `json:"status"`
	// 应付金额, 单位为分
	Amount int64 `json:"amount"`
}
