package repository

import (
	"lab-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Package PackageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Package: NewPackageRepository(db, log),
	}
}
