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

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/ecodeclub/booknest/internal/email"
	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/user"
)

const fromAlias = "BookNest"

const orderConfirmationTpl = `<html><body>
<p>{{.Nickname}}, 您好：</p>
<p>您的订单 <b>{{.OrderSN}}</b> 已支付成功。</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>书名</th><th>单价</th><th>数量</th></tr>
{{range .Items}}<tr><td>{{.Title}}</td><td>{{.RealPrice}}</td><td>{{.Quantity}}</td></tr>
{{end}}</table>
<p>商品金额: {{.Subtotal}}<br>运费: {{.ShippingCost}}<br>税费: {{.Tax}}<br>实付金额: <b>{{.Total}}</b></p>
<p>我们会尽快为您发货。</p>
</body></html>`

const paymentFailedTpl = `<html><body>
<p>{{.Nickname}}, 您好：</p>
<p>您的订单 <b>{{.OrderSN}}</b> 支付未成功，订单已关闭。</p>
<p>如仍需购买，请重新下单。</p>
</body></html>`

//go:generate mockgen -source=./service.go -destination=../../mocks/notification.mock.go -package=notificationmocks Service
type Service interface {
	// SendOrderConfirmation 支付成功后给买家发送订单确认邮件
	SendOrderConfirmation(ctx context.Context, orderSN string, buyerID int64) error
	// SendPaymentFailed 支付失败后通知买家订单已关闭
	SendPaymentFailed(ctx context.Context, orderSN string, buyerID int64) error
}

type service struct {
	orderSvc    order.Service
	userSvc     user.UserService
	emailClient email.Service
}

func NewService(orderSvc order.Service,
	userSvc user.UserService,
	emailClient email.Service) Service {
	return &service{
		orderSvc:    orderSvc,
		userSvc:     userSvc,
		emailClient: emailClient,
	}
}

func (s *service) SendOrderConfirmation(ctx context.Context, orderSN string, buyerID int64) error {
	u, err := s.userSvc.Profile(ctx, buyerID)
	if err != nil {
		return err
	}
	ord, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return err
	}
	type itemData struct {
		Title     string
		RealPrice string
		Quantity  int64
	}
	items := make([]itemData, 0, len(ord.Items))
	for _, it := range ord.Items {
		items = append(items, itemData{
			Title:     it.Title,
			RealPrice: formatAmount(it.RealPrice),
			Quantity:  it.Quantity,
		})
	}
	body, err := renderWithHTMLTemplate(orderConfirmationTpl, map[string]any{
		"Nickname":     u.Nickname,
		"OrderSN":      ord.SN,
		"Items":        items,
		"Subtotal":     formatAmount(ord.Subtotal),
		"ShippingCost": formatAmount(ord.ShippingCost),
		"Tax":          formatAmount(ord.Tax),
		"Total":        formatAmount(ord.Total),
	})
	if err != nil {
		return err
	}
	return s.emailClient.SendMail(ctx, email.Mail{
		From:    fromAlias,
		To:      u.Email,
		Subject: fmt.Sprintf("订单 %s 支付成功", ord.SN),
		Body:    body,
	})
}

func (s *service) SendPaymentFailed(ctx context.Context, orderSN string, buyerID int64) error {
	u, err := s.userSvc.Profile(ctx, buyerID)
	if err != nil {
		return err
	}
	body, err := renderWithHTMLTemplate(paymentFailedTpl, map[string]any{
		"Nickname": u.Nickname,
		"OrderSN":  orderSN,
	})
	if err != nil {
		return err
	}
	return s.emailClient.SendMail(ctx, email.Mail{
		From:    fromAlias,
		To:      u.Email,
		Subject: fmt.Sprintf("订单 %s 支付未成功", orderSN),
		Body:    body,
	})
}

// formatAmount 将单位为分的金额格式化为带两位小数的字符串
func formatAmount(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}

func renderWithHTMLTemplate(tpl string, data any) ([]byte, error) {
	t, err := template.New("mail").Parse(tpl)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
