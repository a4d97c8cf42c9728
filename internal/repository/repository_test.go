package repository

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

// stubResult 固定返回值的 sql.Result
type stubResult struct {
	n   int64
	err error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.n, r.err }

func TestAffectedRows(t *testing.T) {
	n, err := affectedRows(stubResult{n: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = affectedRows(stubResult{n: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestAffectedRowsDriverError(t *testing.T) {
	// 驱动读不出受影响行数时上抛数据库错误，而不是当作 0 行处理
	_, err := affectedRows(stubResult{err: stderrors.New("rows affected not supported")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorTypeInternal))
	assert.True(t, errors.IsCode(err, errors.CodeDatabaseError))
}

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantLimit     int
		wantOffset    int
	}{
		{"defaults", 0, 0, DefaultLimit, 0},
		{"within range", 20, 40, 20, 40},
		{"capped at max", 500, 0, MaxLimit, 0},
		{"negative normalized", -1, -10, DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, p.GetLimit())
			assert.Equal(t, tt.wantOffset, p.GetOffset())
		})
	}
}
