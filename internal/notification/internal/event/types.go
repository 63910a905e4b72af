package event

const PaymentEventName = "payment_events"

// 支付模块发布的支付单终态, 数值与发布方保持一致
const (
	PaymentStatusPaid   uint8 = 3
	PaymentStatusFailed uint8 = 4
)

type PaymentEvent struct {
	OrderSN string `json:"orderSn"`
	PayerID int64  `json:"payerId"`
	Status  uint8  `json:"status"`
	Amount  int64  `json:"amount"`
}
