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
	"errors"
	"fmt"

	"github.com/ecodeclub/booknest/internal/cart"
	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/pricing"
	"github.com/ecodeclub/booknest/internal/order/internal/repository"
	"github.com/ecodeclub/booknest/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCartEmpty       = errors.New("购物车为空")
	ErrInvalidAddress  = errors.New("收货地址不完整")
	ErrStockNotEnough  = catalog.ErrStockNotEnough
	ErrOrderNotFound   = errors.New("订单未找到")
	ErrOrderNotPending = errors.New("订单不处于待支付状态")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks Service
type Service interface {
	// PreviewOrder 基于当前购物车计算一份金额预览, 不落库
	PreviewOrder(ctx context.Context, uid int64) (domain.Preview, error)
	// CreateFromCart 基于购物车创建待支付订单, 此时不扣库存不清购物车
	CreateFromCart(ctx context.Context, uid int64, method domain.PaymentMethod, address domain.Address) (domain.Order, error)
	UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	// MarkPaid 把订单从待支付推进到已支付, 返回本次调用是否真正完成了状态迁移
	MarkPaid(ctx context.Context, oid int64) (bool, error)
	// MarkFailed 把订单从待支付推进到支付失败, 已终态的订单调用无效果
	MarkFailed(ctx context.Context, oid int64) (bool, error)
	// CancelOrder 买家主动取消, 仅待支付订单可取消
	CancelOrder(ctx context.Context, uid int64, sn string) error
	UpdateOrderStatus(ctx context.Context, uid int64, sn string, status domain.OrderStatus) error
	FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	CancelTimeoutOrders(ctx context.Context, orderIDs []int64) error
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	catalogSvc catalog.Service,
	calculator *pricing.Calculator,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		catalogSvc:  catalogSvc,
		calculator:  calculator,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	catalogSvc  catalog.Service
	calculator  *pricing.Calculator
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) PreviewOrder(ctx context.Context, uid int64) (domain.Preview, error) {
	items, amounts, err := s.buildOrderLines(ctx, uid)
	if err != nil {
		return domain.Preview{}, err
	}
	return domain.Preview{
		Items:        items,
		Subtotal:     amounts.Subtotal,
		ShippingCost: amounts.ShippingCost,
		Tax:          amounts.Tax,
		Total:        amounts.Total,
	}, nil
}

func (s *service) CreateFromCart(ctx context.Context, uid int64, method domain.PaymentMethod, address domain.Address) (domain.Order, error) {
	if !address.Valid() {
		return domain.Order{}, fmt.Errorf("%w: uid: %d", ErrInvalidAddress, uid)
	}
	items, amounts, err := s.buildOrderLines(ctx, uid)
	if err != nil {
		return domain.Order{}, err
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order := domain.Order{
		SN:            sn,
		BuyerID:       uid,
		Items:         items,
		Address:       address,
		Subtotal:      amounts.Subtotal,
		ShippingCost:  amounts.ShippingCost,
		Tax:           amounts.Tax,
		Total:         amounts.Total,
		Method:        method,
		PaymentStatus: domain.PaymentStatusPending,
		Status:        domain.StatusPending,
	}
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	// 货到付款没有支付网关环节, 直接扣库存清购物车
	if method == domain.MethodCOD {
		s.settleInventoryAndCart(ctx, created)
	}
	return created, nil
}

// buildOrderLines 读取购物车并校验目录状态与库存, 返回订单条目与定价结果
func (s *service) buildOrderLines(ctx context.Context, uid int64) ([]domain.OrderItem, pricing.Amounts, error) {
	c, err := s.cartSvc.GetCart(ctx, uid)
	if err != nil {
		return nil, pricing.Amounts{}, fmt.Errorf("读取购物车失败: %w", err)
	}
	if len(c.Items) == 0 {
		return nil, pricing.Amounts{}, fmt.Errorf("%w: uid: %d", ErrCartEmpty, uid)
	}
	ids := slice.Map(c.Items, func(idx int, src cart.CartItem) int64 {
		return src.BookID
	})
	books, err := s.catalogSvc.FindBooksByIDs(ctx, ids)
	if err != nil {
		return nil, pricing.Amounts{}, fmt.Errorf("查询图书失败: %w", err)
	}
	bookMap := make(map[int64]catalog.Book, len(books))
	for _, b := range books {
		bookMap[b.ID] = b
	}
	items := make([]domain.OrderItem, 0, len(c.Items))
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, ci := range c.Items {
		b, ok := bookMap[ci.BookID]
		if !ok || b.Status != catalog.StatusOnShelf {
			return nil, pricing.Amounts{}, fmt.Errorf("%w: bookID: %d", cart.ErrBookUnavailable, ci.BookID)
		}
		if b.Stock < ci.Quantity {
			return nil, pricing.Amounts{}, fmt.Errorf("%w: bookID: %d", ErrStockNotEnough, ci.BookID)
		}
		items = append(items, domain.OrderItem{
			BookID:          b.ID,
			BookSN:          b.SN,
			Title:           b.Title,
			CoverURL:        b.CoverURL,
			UnitPrice:       b.Price,
			DiscountPercent: b.DiscountPercent,
			RealPrice:       s.calculator.RealUnitPrice(b.Price, b.DiscountPercent),
			Quantity:        ci.Quantity,
		})
		lines = append(lines, pricing.Line{
			UnitPrice:       b.Price,
			DiscountPercent: b.DiscountPercent,
			Quantity:        ci.Quantity,
		})
	}
	return items, s.calculator.Calculate(lines), nil
}

// settleInventoryAndCart 扣库存并清空购物车, 失败只记日志不回滚订单
func (s *service) settleInventoryAndCart(ctx context.Context, order domain.Order) {
	for _, item := range order.Items {
		err := s.catalogSvc.DecrStock(ctx, item.BookID, item.Quantity)
		if err != nil {
			s.logger.Error("扣减库存失败",
				elog.FieldErr(err),
				elog.Int64("oid", order.ID),
				elog.Int64("bookID", item.BookID))
		}
	}
	if err := s.cartSvc.Clear(ctx, order.BuyerID); err != nil {
		s.logger.Error("清空购物车失败",
			elog.FieldErr(err),
			elog.Int64("uid", order.BuyerID))
	}
}

func (s *service) UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error {
	return s.repo.UpdateOrderPaymentIDAndPaymentSN(ctx, uid, oid, pid, psn)
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: sn: %s", ErrOrderNotFound, sn)
	}
	return order, nil
}

func (s *service) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: sn: %s, uid: %d", ErrOrderNotFound, sn, buyerID)
	}
	return order, nil
}

func (s *service) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		total  int64
		orders []domain.Order
		eg     errgroup.Group
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOrdersByUID(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrdersByUID(ctx, offset, limit, uid)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		total  int64
		orders []domain.Order
		eg     errgroup.Group
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOrders(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) MarkPaid(ctx context.Context, oid int64) (bool, error) {
	return s.repo.MarkPaidIfPending(ctx, oid)
}

func (s *service) MarkFailed(ctx context.Context, oid int64) (bool, error) {
	return s.repo.MarkFailedIfPending(ctx, oid)
}

func (s *service) CancelOrder(ctx context.Context, uid int64, sn string) error {
	ok, err := s.repo.CancelOrderIfPending(ctx, uid, sn)
	if err != nil {
		return fmt.Errorf("取消订单失败: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: sn: %s", ErrOrderNotPending, sn)
	}
	return nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, uid int64, sn string, status domain.OrderStatus) error {
	return s.repo.UpdateOrderStatus(ctx, uid, sn, status)
}

func (s *service) FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		total  int64
		orders []domain.Order
		eg     errgroup.Group
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountTimeoutOrders(ctx, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = s.repo.FindTimeoutOrders(ctx, offset, limit, ctime)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) CancelTimeoutOrders(ctx context.Context, orderIDs []int64) error {
	return s.repo.CancelTimeoutOrders(ctx, orderIDs)
}
