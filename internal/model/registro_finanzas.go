package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movimiento is a single income or expense entry. Entries are append-only:
// there is no edit or delete of individual movements, corrections are new
// entries.
type Movimiento struct {
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
}

// RegistroFinanzas is the finance document for one calendar day, keyed by
// ISO date and independent of the day's sales record.
type RegistroFinanzas struct {
	Fecha         string       `json:"fecha"`
	Ingresos      []Movimiento `json:"ingresos"`
	Gastos        []Movimiento `json:"gastos"`
	ActualizadoEn time.Time    `json:"actualizado_en"`
}
