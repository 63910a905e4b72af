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
	"context"
	"strings"
	"testing"

	"github.com/ecodeclub/booknest/internal/email"
	emailmocks "github.com/ecodeclub/booknest/internal/email/mocks"
	"github.com/ecodeclub/booknest/internal/order"
	ordermocks "github.com/ecodeclub/booknest/internal/order/mocks"
	"github.com/ecodeclub/booknest/internal/user"
	usermocks "github.com/ecodeclub/booknest/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SendOrderConfirmation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderSvc := ordermocks.NewMockService(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	emailClient := emailmocks.NewMockService(ctrl)

	userSvc.EXPECT().Profile(gomock.Any(), int64(7)).
		Return(user.User{Id: 7, Nickname: "abcd", Email: "buyer@example.com"}, nil)
	orderSvc.EXPECT().FindOrderBySN(gomock.Any(), "OrderSN-1").
		Return(order.Order{
			SN:      "OrderSN-1",
			BuyerID: 7,
			Items: []order.OrderItem{
				{Title: "Go 语言实战", RealPrice: 9000, Quantity: 2},
			},
			Subtotal:     18000,
			ShippingCost: 0,
			Tax:          1800,
			Total:        19800,
		}, nil)
	emailClient.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail email.Mail) error {
			assert.Equal(t, "buyer@example.com", mail.To)
			assert.Contains(t, mail.Subject, "OrderSN-1")
			body := string(mail.Body)
			assert.Contains(t, body, "Go 语言实战")
			assert.Contains(t, body, "198.00")
			assert.Contains(t, body, "18.00")
			return nil
		})

	svc := NewService(orderSvc, userSvc, emailClient)
	err := svc.SendOrderConfirmation(context.Background(), "OrderSN-1", 7)
	require.NoError(t, err)
}

func TestService_SendPaymentFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderSvc := ordermocks.NewMockService(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	emailClient := emailmocks.NewMockService(ctrl)

	userSvc.EXPECT().Profile(gomock.Any(), int64(7)).
		Return(user.User{Id: 7, Nickname: "abcd", Email: "buyer@example.com"}, nil)
	emailClient.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mail email.Mail) error {
			assert.Equal(t, "buyer@example.com", mail.To)
			assert.True(t, strings.Contains(mail.Subject, "未成功"))
			assert.Contains(t, string(mail.Body), "OrderSN-2")
			return nil
		})

	svc := NewService(orderSvc, userSvc, emailClient)
	err := svc.SendPaymentFailed(context.Background(), "OrderSN-2", 7)
	require.NoError(t, err)
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "0.05", formatAmount(5))
	assert.Equal(t, "1.50", formatAmount(150))
	assert.Equal(t, "198.00", formatAmount(19800))
}
