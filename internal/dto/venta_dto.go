package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CabeceraRequest merges the day header of a sales record (PUT /v1/ventas/:fecha).
type CabeceraRequest struct {
	Inversion     decimal.Decimal `json:"inversion"      validate:"min=0"`
	CostoUnitario decimal.Decimal `json:"costo_unitario" validate:"min=0"`
	StockTotal    int             `json:"stock_total"    validate:"min=0"`
	Producto      string          `json:"producto"       validate:"required,oneof=Morocho Bollo Encebollado 'Arroz con pollo' 'Seco de pollo' 'Seco de carne' Tortillas Bebidas Otro"`
	ProductoOtro  string          `json:"producto_otro"`
}

// GuardarClienteRequest carries a client order (add or edit). Field checks run
// in the service in a fixed order so the first offending field is reported,
// matching the original form behavior, so no validator tags here.
type GuardarClienteRequest struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
	Telefono string `json:"telefono"`
}

// FiltroEntrega is bound from the query string of the client listing.
type FiltroEntrega struct {
	Filtro string `form:"filtro,default=todos" validate:"oneof=todos entregados pendientes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Cantidad  int             `json:"cantidad"`
	Total     decimal.Decimal `json:"total"`
	Entregado bool            `json:"entregado"`
	Telefono  string          `json:"telefono"`
	Producto  string          `json:"producto"`
}

type RegistroVentaResponse struct {
	Fecha         string            `json:"fecha"`
	Inversion     decimal.Decimal   `json:"inversion"`
	CostoUnitario decimal.Decimal   `json:"costo_unitario"`
	StockTotal    int               `json:"stock_total"`
	Producto      string            `json:"producto"`
	ProductoOtro  string            `json:"producto_otro,omitempty"`
	ProductoTexto string            `json:"producto_texto"`
	Clientes      []ClienteResponse `json:"clientes"`
	Resumen       ResumenResponse   `json:"resumen"`
}

// ResumenResponse is the reconciliation summary of one day.
// UnidadesRestantes is signed: overselling shows as a negative remainder.
type ResumenResponse struct {
	ProductoTexto     string          `json:"producto_texto"`
	UnidadesStock     int             `json:"unidades_stock"`
	UnidadesVendidas  int             `json:"unidades_vendidas"`
	UnidadesRestantes int             `json:"unidades_restantes"`
	TotalVendido      decimal.Decimal `json:"total_vendido"`
	Ganancia          decimal.Decimal `json:"ganancia"`
	Clientes          int             `json:"clientes"`
	Entregados        int             `json:"entregados"`
	Pendientes        int             `json:"pendientes"`
}

// WhatsAppLinkResponse carries the composed wa.me deep link for one order.
type WhatsAppLinkResponse struct {
	Telefono string `json:"telefono"`
	Link     string `json:"link"`
}

// ReporteEmailRequest enqueues the day's PDF report for email delivery.
type ReporteEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
