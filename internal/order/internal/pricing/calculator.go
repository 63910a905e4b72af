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

package pricing

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

const (
	// 缺省计价参数, 金额单位为分
	defaultFreeShippingThreshold int64   = 5000
	defaultFlatShippingCost      int64   = 500
	defaultTaxRate               float64 = 0.1
)

// Config 计价参数, 从配置的 pricing 段读取, 缺省走默认值
type Config struct {
	FreeShippingThreshold int64   `yaml:"freeShippingThreshold"`
	FlatShippingCost      int64   `yaml:"flatShippingCost"`
	TaxRate               float64 `yaml:"taxRate"`
}

type Line struct {
	UnitPrice       int64
	DiscountPercent int64
	Quantity        int64
}

type Amounts struct {
	LineTotals   []int64
	Subtotal     int64
	ShippingCost int64
	Tax          int64
	Total        int64
}

// Calculator 负责订单金额的全部计算, 订单与预览共用, 保证同一输入算出同一结果
type Calculator struct {
	freeShippingThreshold int64
	flatShippingCost      int64
	taxRate               decimal.Decimal
}

func NewCalculator() *Calculator {
	var cfg Config
	_ = econf.UnmarshalKey("pricing", &cfg)
	return NewCalculatorWith(cfg)
}

func NewCalculatorWith(cfg Config) *Calculator {
	if cfg.FreeShippingThreshold <= 0 {
		cfg.FreeShippingThreshold = defaultFreeShippingThreshold
	}
	if cfg.FlatShippingCost <= 0 {
		cfg.FlatShippingCost = defaultFlatShippingCost
	}
	if cfg.TaxRate <= 0 {
		cfg.TaxRate = defaultTaxRate
	}
	return &Calculator{
		freeShippingThreshold: cfg.FreeShippingThreshold,
		flatShippingCost:      cfg.FlatShippingCost,
		taxRate:               decimal.NewFromFloat(cfg.TaxRate),
	}
}

func (c *Calculator) Calculate(lines []Line) Amounts {
	hundred := decimal.NewFromInt(100)
	lineTotals := make([]int64, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromInt(l.UnitPrice)
		discount := decimal.NewFromInt(l.DiscountPercent).Div(hundred)
		// 单行金额四舍五入到分后再累加
		lineTotal := price.
			Mul(decimal.NewFromInt(1).Sub(discount)).
			Mul(decimal.NewFromInt(l.Quantity)).
			Round(0)
		lineTotals = append(lineTotals, lineTotal.IntPart())
		subtotal = subtotal.Add(lineTotal)
	}
	shipping := decimal.NewFromInt(c.flatShippingCost)
	if subtotal.GreaterThan(decimal.NewFromInt(c.freeShippingThreshold)) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(c.taxRate).Round(0)
	total := subtotal.Add(shipping).Add(tax)
	return Amounts{
		LineTotals:   lineTotals,
		Subtotal:     subtotal.IntPart(),
		ShippingCost: shipping.IntPart(),
		Tax:          tax.IntPart(),
		Total:        total.IntPart(),
	}
}

// RealUnitPrice 折后单价, 用于订单条目快照展示
func (c *Calculator) RealUnitPrice(unitPrice, discountPercent int64) int64 {
	hundred := decimal.NewFromInt(100)
	return decimal.NewFromInt(unitPrice).
		Mul(decimal.NewFromInt(1).Sub(decimal.NewFromInt(discountPercent).Div(hundred))).
		Round(0).IntPart()
}
