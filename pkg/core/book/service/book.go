package service

import (
	"context"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/book/model"
	"book-hub/pkg/core/book/repository/dao"
)

type BookService struct {
	repo dao.BookRepository
}

func NewBookService(repo dao.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Create(ctx context.Context, book model.Book) (model.Book, error) {
	book.ID = 0
	if err := s.repo.Create(ctx, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context, filter model.Filter, skip, limit int) (pagination.Result[model.Book], error) {
	page, err := pagination.New(skip, limit)
	if err != nil {
		return pagination.Result[model.Book]{}, err
	}
	books, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return pagination.Result[model.Book]{}, err
	}
	return pagination.Result[model.Book]{Total: total, Items: books}, nil
}

func (s *BookService) Get(ctx context.Context, id uint) (model.Book, error) {
	return s.repo.Get(ctx, id)
}

func (s *BookService) Update(ctx context.Context, id uint, patch model.BookPatch) (model.Book, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
