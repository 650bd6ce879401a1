package dto

import "github.com/shopspring/decimal"

// MovimientoRequest appends one income or expense entry to a day's record.
type MovimientoRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"required"`
}

type MovimientoResponse struct {
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
}

// TotalesResponse holds the income / expense / balance triple, used both for
// one day and for the global full-collection aggregate.
type TotalesResponse struct {
	Ingresos decimal.Decimal `json:"ingresos"`
	Gastos   decimal.Decimal `json:"gastos"`
	Balance  decimal.Decimal `json:"balance"`
}

type RegistroFinanzasResponse struct {
	Fecha    string               `json:"fecha"`
	Ingresos []MovimientoResponse `json:"ingresos"`
	Gastos   []MovimientoResponse `json:"gastos"`
	// Totales is the day's aggregate; Globales is recomputed from every
	// stored record on each mutation.
	Totales  TotalesResponse `json:"totales"`
	Globales TotalesResponse `json:"globales"`
}
