package service

import (
	"context"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/cart/model"
	"book-hub/pkg/core/cart/repository/dao"
)

type CartService struct {
	repo dao.CartRepository
}

func NewCartService(repo dao.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Add 不校验 user/book 是否存在，数量也不要求为正
func (s *CartService) Add(ctx context.Context, userID, bookID uint, quantity int) (model.CartItem, error) {
	return s.repo.Add(ctx, userID, bookID, quantity)
}

func (s *CartService) ListByUser(ctx context.Context, userID uint, skip, limit int) (pagination.Result[model.CartItem], error) {
	page, err := pagination.New(skip, limit)
	if err != nil {
		return pagination.Result[model.CartItem]{}, err
	}
	items, total, err := s.repo.ListByUser(ctx, userID, page)
	if err != nil {
		return pagination.Result[model.CartItem]{}, err
	}
	return pagination.Result[model.CartItem]{Total: total, Items: items}, nil
}

func (s *CartService) Get(ctx context.Context, id uint) (model.CartItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *CartService) Update(ctx context.Context, id uint, quantity *int) (model.CartItem, error) {
	return s.repo.UpdateQuantity(ctx, id, quantity)
}

func (s *CartService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Clear 空购物车同样视为成功
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	_, err := s.repo.ClearUser(ctx, userID)
	return err
}
