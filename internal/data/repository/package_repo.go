package repository

import (
	"context"
	"errors"
	"fmt"

	"lab-booking/internal/data/entity"
	"lab-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	FindAllActive(ctx context.Context) ([]*entity.Package, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, name, test_count, price, original_price, discount_percentage, is_active, created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	var (
		pkg      entity.Package
		original decimal.NullDecimal
		discount decimal.NullDecimal
	)

	err := row.Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.TestCount,
		&pkg.Price,
		&original,
		&discount,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if original.Valid {
		pkg.OriginalPrice = &original.Decimal
	}
	if discount.Valid {
		pkg.DiscountPercentage = &discount.Decimal
	}
	return &pkg, nil
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.TestCount,
		pkg.Price,
		nullable(pkg.OriginalPrice),
		nullable(pkg.DiscountPercentage),
		pkg.IsActive,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("package_id", pkg.ID),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create package %s: %w", pkg.ID, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id, err)
	}

	return pkg, nil
}

func (r *packageRepository) FindAllActive(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active packages", zap.Error(err))
		return nil, fmt.Errorf("find active packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return packages, nil
}
