package repository

import (
	"ventadiaria/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the three tables. The day-record row types
// are unexported, so schema management lives here rather than in infra.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&registroVentaRow{},
		&registroFinanzasRow{},
		&model.Contacto{},
	)
}
