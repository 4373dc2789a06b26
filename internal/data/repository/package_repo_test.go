package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *int:
			*p = r.values[i].(int)
		case *bool:
			*p = r.values[i].(bool)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *decimal.Decimal:
			*p = r.values[i].(decimal.Decimal)
		case *decimal.NullDecimal:
			if r.values[i] != nil {
				*p = decimal.NullDecimal{Decimal: r.values[i].(decimal.Decimal), Valid: true}
			}
		}
	}
	return nil
}

type fakeDB struct {
	database.PgxIface
	row      fakeRow
	execArgs []any
	execErr  error
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func TestFindByID(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{
		"P1", "Full Body Checkup", 72,
		decimal.NewFromInt(899), decimal.NewFromInt(1299), nil,
		true, now, now,
	}}}
	repo := NewPackageRepository(db, zap.NewNop())

	pkg, err := repo.FindByID(context.Background(), "P1")
	require.NoError(t, err)
	require.NotNil(t, pkg)

	assert.Equal(t, "Full Body Checkup", pkg.Name)
	assert.Equal(t, 72, pkg.TestCount)
	require.NotNil(t, pkg.OriginalPrice)
	assert.Equal(t, "1299", pkg.OriginalPrice.String())
	assert.Nil(t, pkg.DiscountPercentage)
}

func TestFindByID_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewPackageRepository(db, zap.NewNop())

	pkg, err := repo.FindByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestFindByID_Error(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: errors.New("conn closed")}}
	repo := NewPackageRepository(db, zap.NewNop())

	_, err := repo.FindByID(context.Background(), "P1")
	assert.ErrorContains(t, err, "find package by ID P1")
}

func TestNullable(t *testing.T) {
	assert.False(t, nullable(nil).Valid)

	d := decimal.NewFromInt(30)
	n := nullable(&d)
	assert.True(t, n.Valid)
	assert.True(t, d.Equal(n.Decimal))
}
