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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/booknest/internal/cart"
	cartmocks "github.com/ecodeclub/booknest/internal/cart/mocks"
	"github.com/ecodeclub/booknest/internal/catalog"
	catalogmocks "github.com/ecodeclub/booknest/internal/catalog/mocks"
	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/errs"
	"github.com/ecodeclub/booknest/internal/order/internal/integration/startup"
	"github.com/ecodeclub/booknest/internal/order/internal/repository/dao"
	"github.com/ecodeclub/booknest/internal/order/internal/web"
	"github.com/ecodeclub/booknest/internal/test"
	testioc "github.com/ecodeclub/booknest/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.OrderDAO
	svc    order.Service
	ctrl   *gomock.Controller
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())

	module, err := startup.InitModule(s.getCartMockService(), s.getCatalogMockService())
	require.NoError(s.T(), err)
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = testioc.InitDB()
	err = dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.dao = dao.NewOrderGORMDAO(s.db)
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `order_items`").Error
	require.NoError(s.T(), err)
}

// 购物车固定两行: 图书100两本打九折, 图书101一本打八五折
func (s *OrderModuleTestSuite) getCartMockService() cart.Service {
	mockedCartSvc := cartmocks.NewMockService(s.ctrl)
	mockedCartSvc.EXPECT().GetCart(gomock.Any(), testUID).AnyTimes().Return(cart.Cart{
		UID: testUID,
		Items: []cart.CartItem{
			{BookID: 100, BookSN: "Book100", Quantity: 2},
			{BookID: 101, BookSN: "Book101", Quantity: 1},
		},
	}, nil)
	mockedCartSvc.EXPECT().Clear(gomock.Any(), testUID).AnyTimes().Return(nil)
	return mockedCartSvc
}

func (s *OrderModuleTestSuite) getCatalogMockService() catalog.Service {
	books := map[int64]catalog.Book{
		100: {
			ID:              100,
			SN:              "Book100",
			Title:           "图书100",
			CoverURL:        "CoverURL100",
			Price:           10000,
			DiscountPercent: 10,
			Stock:           10,
			Status:          catalog.StatusOnShelf,
		},
		101: {
			ID:              101,
			SN:              "Book101",
			Title:           "图书101",
			CoverURL:        "CoverURL101",
			Price:           333,
			DiscountPercent: 15,
			Stock:           5,
			Status:          catalog.StatusOnShelf,
		},
	}
	mockedCatalogSvc := catalogmocks.NewMockService(s.ctrl)
	mockedCatalogSvc.EXPECT().FindBooksByIDs(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, ids []int64) ([]catalog.Book, error) {
			res := make([]catalog.Book, 0, len(ids))
			for _, id := range ids {
				b, ok := books[id]
				if !ok {
					return nil, errors.New("图书ID非法")
				}
				res = append(res, b)
			}
			return res, nil
		})
	mockedCatalogSvc.EXPECT().DecrStock(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil)
	return mockedCatalogSvc
}

func (s *OrderModuleTestSuite) TestHandler_PreviewOrder() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/orders/preview", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.PreviewOrderResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[web.PreviewOrderResp]{
		Data: web.PreviewOrderResp{
			Items: []web.OrderItem{
				{
					BookSN:          "Book100",
					Title:           "图书100",
					CoverURL:        "CoverURL100",
					UnitPrice:       10000,
					DiscountPercent: 10,
					RealPrice:       9000,
					Quantity:        2,
				},
				{
					BookSN:          "Book101",
					Title:           "图书101",
					CoverURL:        "CoverURL101",
					UnitPrice:       333,
					DiscountPercent: 15,
					RealPrice:       283,
					Quantity:        1,
				},
			},
			Subtotal:     18283,
			ShippingCost: 0,
			Tax:          1828,
			Total:        20111,
		},
	}, recorder.MustScan())
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/orders", iox.NewJSONReader(web.CreateOrderReq{
			Address: web.AddressVO{
				Recipient:  "张三",
				Line1:      "科技园路1号",
				City:       "深圳",
				PostalCode: "518000",
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	sn := recorder.MustScan().Data.SN
	require.NotZero(t, sn)

	created, err := s.svc.FindOrderBySNAndBuyerID(context.Background(), sn, testUID)
	require.NoError(t, err)
	assert.Equal(t, int64(18283), created.Subtotal)
	assert.Equal(t, int64(0), created.ShippingCost)
	assert.Equal(t, int64(1828), created.Tax)
	assert.Equal(t, int64(20111), created.Total)
	assert.Equal(t, domain.MethodCOD, created.Method)
	assert.Equal(t, domain.PaymentStatusPending, created.PaymentStatus)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Len(t, created.Items, 2)
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrderFailed() {
	t := s.T()

	// 缺少收件人, 地址非法
	req, err := http.NewRequest(http.MethodPost,
		"/orders", iox.NewJSONReader(web.CreateOrderReq{
			Address: web.AddressVO{
				Line1:      "科技园路1号",
				City:       "深圳",
				PostalCode: "518000",
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.InvalidAddress.Code,
		Msg:  errs.InvalidAddress.Msg,
	}, recorder.MustScan())
}

func (s *OrderModuleTestSuite) TestHandler_ListAndCancel() {
	t := s.T()

	created, err := s.svc.CreateFromCart(context.Background(), testUID, domain.MethodCOD, domain.Address{
		Recipient:  "李四",
		Line1:      "软件园2期",
		City:       "杭州",
		PostalCode: "310000",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/orders/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	listResp := recorder.MustScan().Data
	require.NotZero(t, listResp.Total)

	req, err = http.NewRequest(http.MethodPost,
		"/orders/cancel", iox.NewJSONReader(web.CancelOrderReq{SN: created.SN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	cancelRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(cancelRecorder, req)
	require.Equal(t, 200, cancelRecorder.Code)

	cancelled, err := s.svc.FindOrderBySNAndBuyerID(context.Background(), created.SN, testUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}
