package entity

import (
	"github.com/google/uuid"
)

type Package struct {
	BaseNoDelete
	Name          string    `db:"name"`
	Description   *string   `db:"description"`
	Price         float64   `db:"price"`
	CategoryID    uuid.UUID `db:"category_id"`
	PackageTypeID uuid.UUID `db:"package_type_id"`
	IsActive      bool      `db:"is_active"`
}
