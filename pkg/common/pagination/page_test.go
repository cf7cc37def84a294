package pagination

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "book-hub/pkg/common/errors"
)

func TestNew(t *testing.T) {
	page, err := New(20, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{Skip: 20, Limit: 100}, page)

	_, err = New(0, 0)
	assert.NoError(t, err)

	_, err = New(0, 101)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = New(-1, 10)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestMap(t *testing.T) {
	in := Result[int]{Total: 7, Items: []int{1, 2}}
	out := Map(in, strconv.Itoa)
	assert.Equal(t, Result[string]{Total: 7, Items: []string{"1", "2"}}, out)

	empty := Map(Result[int]{}, strconv.Itoa)
	assert.NotNil(t, empty.Items)
}
