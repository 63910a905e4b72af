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

package razorpay

import (
	"context"
	"errors"
	"fmt"

	razorpaygo "github.com/razorpay/razorpay-go"
)

var (
	ErrGatewayUnavailable = errors.New("支付网关不可用")
	ErrMalformedResponse  = errors.New("支付网关响应格式异常")
)

// GatewayPayment 网关侧一笔支付尝试的状态快照
type GatewayPayment struct {
	ID     string
	Status string
}

// GatewayAPIService 对 Razorpay SDK 的薄封装, 方便在单元测试中打桩
//
//go:generate mockgen -destination=../../../mocks/gateway.mock.go -package=paymentmocks -source=./client.go GatewayAPIService
type GatewayAPIService interface {
	// CreateOrder 在网关创建一笔订单, 金额单位为分, 返回网关订单号
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	// FetchPaymentsForOrder 查询网关订单下的全部支付尝试, 对账任务使用
	FetchPaymentsForOrder(ctx context.Context, gatewayOrderID string) ([]GatewayPayment, error)
}

func NewGatewayAPIService(client *razorpaygo.Client) GatewayAPIService {
	return &gatewayAPIService{client: client}
}

type gatewayAPIService struct {
	client *razorpaygo.Client
}

func (g *gatewayAPIService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	resp, err := g.client.Order.Create(body, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	id, ok := resp["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: 缺少订单号", ErrMalformedResponse)
	}
	return id, nil
}

func (g *gatewayAPIService) FetchPaymentsForOrder(ctx context.Context, gatewayOrderID string) ([]GatewayPayment, error) {
	resp, err := g.client.Order.Payments(gatewayOrderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	items, ok := resp["items"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: 缺少 items", ErrMalformedResponse)
	}
	res := make([]GatewayPayment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := m["id"].(string)
		status, _ := m["status"].(string)
		res = append(res, GatewayPayment{ID: id, Status: status})
	}
	return res, nil
}
