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

type AddItemReq struct {
	BookID   int64 `json:"bookID"`
	Quantity int64 `json:"quantity"`
}

type UpdateQuantityReq struct {
	BookID   int64 `json:"bookID"`
	Quantity int64 `json:"quantity"`
}

type RemoveItemReq struct {
	BookID int64 `json:"bookID"`
}

type CartResp struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	BookID          int64  `json:"bookID"`
	BookSN          string `json:"bookSN"`
	Title           string `json:"title"`
	CoverURL        string `json:"coverURL"`
	Price           int64  `json:"price"`
	DiscountPercent int64  `json:"discountPercent"`
	Stock           int64  `json:"stock"`
	Quantity        int64  `json:"quantity"`
}
