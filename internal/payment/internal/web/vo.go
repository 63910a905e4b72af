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

package web

type CreateOrderReq struct {
	// RequestID 客户端生成的幂等键, 重复提交会被拒绝
	RequestID string    `json:"requestId"`
	Address   AddressVO `json:"address"`
}

type AddressVO struct {
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone,omitempty"`
}

type CreateOrderResp struct {
	OrderSN        string `json:"orderSn"`
	PaymentSN      string `json:"paymentSn"`
	GatewayOrderID string `json:"gatewayOrderId"`
	// Amount 单位为分, 前端直接透传给网关收银台
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

type VerifyPaymentReq struct {
	GatewayOrderID   string `json:"razorpayOrderId"`
	GatewayPaymentID string `json:"razorpayPaymentId"`
	Signature        string `json:"razorpaySignature"`
}

type PaymentFailureReq struct {
	GatewayOrderID string `json:"razorpayOrderId"`
}
