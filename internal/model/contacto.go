package model

import "time"

// Contacto is an entry in the client contact directory. The canonical phone
// (digit-only, "593"-prefixed) is the primary key: importing or saving a
// client with an already-known phone merges into the same row.
type Contacto struct {
	Telefono  string `gorm:"type:varchar(20);primaryKey" json:"telefono"`
	Nombre    string `gorm:"not null" json:"nombre"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Contacto) TableName() string { return "contactos_clientes" }
