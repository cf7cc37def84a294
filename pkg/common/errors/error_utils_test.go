package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapGormError(t *testing.T) {
	assert.NoError(t, WrapGormError(nil, "Book"))

	notFound := WrapGormError(fmt.Errorf("query: %w", gorm.ErrRecordNotFound), "Book")
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.Equal(t, "Book", ResourceOf(notFound))

	cases := map[string]error{
		"gorm":     gorm.ErrDuplicatedKey,
		"mysql":    &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
		"postgres": &pgconn.PgError{Code: "23505"},
		"sqlite":   errors.New("UNIQUE constraint failed: books.isbn"),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			err := WrapGormError(raw, "Book")
			assert.True(t, errors.Is(err, ErrConflict), "got %v", err)
		})
	}

	internal := WrapGormError(errors.New("connection reset"), "Book")
	assert.True(t, errors.Is(internal, ErrDatabaseInternal))
	assert.Contains(t, internal.Error(), "connection reset")
	assert.Empty(t, ResourceOf(internal))
}
