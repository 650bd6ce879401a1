package repository

import (
	"context"

	"ventadiaria/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactoRepository is the contact directory, keyed by canonical phone.
// Upserts merge: a known phone gets its name overwritten, nothing is deleted.
type ContactoRepository interface {
	Upsert(ctx context.Context, c *model.Contacto) error
	// UpsertBatch merges a whole import in one statement. The slice must not
	// repeat a phone (Postgres rejects double-updating a row in one INSERT);
	// the importer dedupes last-wins before calling.
	UpsertBatch(ctx context.Context, contactos []model.Contacto) error
	List(ctx context.Context) ([]model.Contacto, error)
}

type contactoRepo struct{ db *gorm.DB }

func NewContactoRepository(db *gorm.DB) ContactoRepository { return &contactoRepo{db: db} }

var contactoOnConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "telefono"}},
	DoUpdates: clause.AssignmentColumns([]string{"nombre", "updated_at"}),
}

func (r *contactoRepo) Upsert(ctx context.Context, c *model.Contacto) error {
	return r.db.WithContext(ctx).Clauses(contactoOnConflict).Create(c).Error
}

func (r *contactoRepo) UpsertBatch(ctx context.Context, contactos []model.Contacto) error {
	if len(contactos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(contactoOnConflict).Create(&contactos).Error
}

func (r *contactoRepo) List(ctx context.Context) ([]model.Contacto, error) {
	var contactos []model.Contacto
	err := r.db.WithContext(ctx).Order("nombre").Find(&contactos).Error
	return contactos, err
}
