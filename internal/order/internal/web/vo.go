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
	Address AddressVO `json:"address"`
}

type CreateOrderResp struct {
	SN string `json:"sn"`
}

type RetrieveOrderDetailReq struct {
	SN string `json:"sn"`
}

type CancelOrderReq struct {
	SN string `json:"sn"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderStatusReq struct {
	SN string `json:"sn"`
}

type UpdateOrderStatusReq struct {
	BuyerID int64  `json:"buyerId"`
	SN      string `json:"sn"`
	Status  uint8  `json:"status"`
}

type RetrieveOrderStatusResp struct {
	SN            string `json:"sn"`
	PaymentStatus uint8  `json:"paymentStatus"`
	Status        uint8  `json:"status"`
}

type PreviewOrderResp struct {
	Items        []OrderItem `json:"items,omitempty"`
	Subtotal     int64       `json:"subtotal"`
	ShippingCost int64       `json:"shippingCost"`
	Tax          int64       `json:"tax"`
	Total        int64       `json:"total"`
}

type Order struct {
	SN            string      `json:"sn"`
	PaymentSN     string      `json:"paymentSn,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	Address       AddressVO   `json:"address"`
	Subtotal      int64       `json:"subtotal"`
	ShippingCost  int64       `json:"shippingCost"`
	Tax           int64       `json:"tax"`
	Total         int64       `json:"total"`
	Method        uint8       `json:"method"`
	PaymentStatus uint8       `json:"paymentStatus"`
	Status        uint8       `json:"status"`
	Ctime         int64       `json:"ctime"`
}

type OrderItem struct {
	BookSN          string `json:"bookSn"`
	Title           string `json:"title"`
	CoverURL        string `json:"coverUrl,omitempty"`
	UnitPrice       int64  `json:"unitPrice"`
	DiscountPercent int64  `json:"discountPercent"`
	RealPrice       int64  `json:"realPrice"`
	Quantity        int64  `json:"quantity"`
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
