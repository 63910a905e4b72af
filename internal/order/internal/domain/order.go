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
	PaymentStatusPending PaymentStatus = 1 // 待支付
	PaymentStatusPaid    PaymentStatus = 2 // 已支付
	PaymentStatusFailed  PaymentStatus = 3 // 支付失败
)

// OrderStatus 履约状态, 与支付状态相互独立
type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending    OrderStatus = 1 // 待处理
	StatusProcessing OrderStatus = 2 // 处理中
	StatusShipped    OrderStatus = 3 // 已发货
	StatusDelivered  OrderStatus = 4 // 已送达
	StatusCancelled  OrderStatus = 5 // 已取消
)

type PaymentMethod uint8

func (m PaymentMethod) ToUint8() uint8 {
	return uint8(m)
}

const (
	MethodGateway PaymentMethod = 1 // 支付网关
	MethodCOD     PaymentMethod = 2 // 货到付款
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	// 支付模块的冗余标识, 网关支付时填充
	PaymentID int64
	PaymentSN string
	Items     []OrderItem
	Address   Address
	// 金额单位为分, 创建时由定价引擎计算一次, 之后不再重算
	Subtotal     int64
	ShippingCost int64
	Tax          int64
	Total        int64

	Method        PaymentMethod
	PaymentStatus PaymentStatus
	Status        OrderStatus
	Ctime         int64
	Utime         int64
}

// OrderItem 下单时的快照, 目录后续调价不影响已生成的订单
type OrderItem struct {
	BookID          int64
	BookSN          string
	Title           string
	CoverURL        string
	UnitPrice       int64
	DiscountPercent int64
	RealPrice       int64
	Quantity        int64
}

type Address struct {
	Recipient  string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Phone      string
}

func (a Address) Valid() bool {
	return a.Recipient != "" && a.Line1 != "" && a.City != "" && a.PostalCode != ""
}

// Preview 下单前的预览, 与创建订单共用同一套定价计算
type Preview struct {
	Items        []OrderItem
	Subtotal     int64
	ShippingCost int64
	Tax          int64
	Total        int64
}
