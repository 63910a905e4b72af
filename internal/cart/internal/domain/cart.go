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

type Cart struct {
	UID   int64
	Items []CartItem
}

// CartItem 购物车行, 价格信息来自实时目录, 不在购物车内快照
type CartItem struct {
	BookID          int64
	BookSN          string
	Title           string
	CoverURL        string
	Price           int64
	DiscountPercent int64
	Stock           int64
	Quantity        int64
}
