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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_Calculate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		lines []Line
		want  Amounts
	}{
		{
			name: "折扣两件包邮",
			lines: []Line{
				{UnitPrice: 10000, DiscountPercent: 10, Quantity: 2},
			},
			want: Amounts{
				LineTotals:   []int64{18000},
				Subtotal:     18000,
				ShippingCost: 0,
				Tax:          1800,
				Total:        19800,
			},
		},
		{
			name: "恰好等于包邮门槛仍收运费",
			lines: []Line{
				{UnitPrice: 5000, DiscountPercent: 0, Quantity: 1},
			},
			want: Amounts{
				LineTotals:   []int64{5000},
				Subtotal:     5000,
				ShippingCost: 500,
				Tax:          500,
				Total:        6000,
			},
		},
		{
			name: "超出门槛一分即包邮",
			lines: []Line{
				{UnitPrice: 5001, DiscountPercent: 0, Quantity: 1},
			},
			want: Amounts{
				LineTotals:   []int64{5001},
				Subtotal:     5001,
				ShippingCost: 0,
				Tax:          500,
				Total:        5501,
			},
		},
		{
			name: "单行四舍五入到分",
			lines: []Line{
				{UnitPrice: 333, DiscountPercent: 15, Quantity: 1},
			},
			want: Amounts{
				// 333 * 0.85 = 283.05 -> 283
				LineTotals:   []int64{283},
				Subtotal:     283,
				ShippingCost: 500,
				Tax:          28,
				Total:        811,
			},
		},
		{
			name:  "空购物车",
			lines: []Line{},
			want: Amounts{
				LineTotals:   []int64{},
				Subtotal:     0,
				ShippingCost: 500,
				Tax:          0,
				Total:        500,
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewCalculator()
			got := c.Calculate(tc.lines)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculator_ConfiguredRates(t *testing.T) {
	t.Parallel()
	c := NewCalculatorWith(Config{
		FreeShippingThreshold: 10000,
		FlatShippingCost:      800,
		TaxRate:               0.18,
	})
	got := c.Calculate([]Line{
		{UnitPrice: 5001, DiscountPercent: 0, Quantity: 1},
	})
	assert.Equal(t, Amounts{
		LineTotals:   []int64{5001},
		Subtotal:     5001,
		ShippingCost: 800,
		Tax:          900,
		Total:        6701,
	}, got)

	// 零值配置回落到默认参数
	d := NewCalculatorWith(Config{})
	fallback := d.Calculate([]Line{
		{UnitPrice: 5001, DiscountPercent: 0, Quantity: 1},
	})
	assert.Equal(t, int64(0), fallback.ShippingCost)
	assert.Equal(t, int64(500), fallback.Tax)
}

func TestCalculator_Deterministic(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	lines := []Line{
		{UnitPrice: 1999, DiscountPercent: 7, Quantity: 3},
		{UnitPrice: 4500, DiscountPercent: 0, Quantity: 1},
	}
	first := c.Calculate(lines)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Calculate(lines))
	}
}

func TestCalculator_RealUnitPrice(t *testing.T) {
	t.Parallel()
	c := NewCalculator()
	assert.Equal(t, int64(9000), c.RealUnitPrice(10000, 10))
	assert.Equal(t, int64(283), c.RealUnitPrice(333, 15))
	assert.Equal(t, int64(333), c.RealUnitPrice(333, 0))
}
