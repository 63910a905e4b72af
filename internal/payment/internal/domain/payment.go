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

package domain

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnknown    PaymentStatus = 0
	PaymentStatusInit       PaymentStatus = 1 // 本地支付单已创建, 尚未在网关下单
	PaymentStatusProcessing PaymentStatus = 2 // 网关订单已创建, 等待签名回传
	PaymentStatusPaid       PaymentStatus = 3
	PaymentStatusFailed     PaymentStatus = 4
)

type Payment struct {
	ID      int64
	SN      string
	OrderID int64
	OrderSN string
	PayerID int64
	// Amount 单位为分, 从订单总额复制而来, 不重算
	Amount   int64
	Currency string
	// 网关侧标识, 在网关下单后填充
	GatewayOrderID   string
	GatewayPaymentID string
	Status           PaymentStatus
	Ctime            int64
	Utime            int64
}

// CheckoutIntent 发起网关支付后返回给前端的凭据
type CheckoutIntent struct {
	PaymentSN      string
	OrderSN        string
	GatewayOrderID string
	Amount         int64
	Currency       string
	KeyID          string
}
