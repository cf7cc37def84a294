package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/core/book/model"
	dao "book-hub/pkg/core/book/repository/dao/impl"
	"book-hub/pkg/core/book/service"
	"book-hub/pkg/core/store/storetest"
)

func TestBookServiceList(t *testing.T) {
	svc := service.NewBookService(dao.NewGormBookRepository(storetest.Open(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, model.Book{Title: "Harry Potter", Author: "Rowling", ISBN: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.Book{Title: "Matilda", Author: "Dahl", ISBN: "b"})
	require.NoError(t, err)

	res, err := svc.List(ctx, model.Filter{Title: "harry"}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
	assert.Equal(t, "Harry Potter", res.Items[0].Title)

	_, err = svc.List(ctx, model.Filter{}, 0, 101)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestBookServiceCreateIgnoresClientID(t *testing.T) {
	svc := service.NewBookService(dao.NewGormBookRepository(storetest.Open(t)))

	book, err := svc.Create(context.Background(), model.Book{ID: 99, Title: "Beloved", ISBN: "c"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, book.ID)
}
