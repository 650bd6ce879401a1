package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductosBase is the fixed product-of-day catalog. "Otro" enables the
// free-text ProductoOtro field.
var ProductosBase = []string{
	"Morocho",
	"Bollo",
	"Encebollado",
	"Arroz con pollo",
	"Seco de pollo",
	"Seco de carne",
	"Tortillas",
	"Bebidas",
	"Otro",
}

// Cliente is one client order inside a day's sales record. IDs are unique
// within the record only; orders never move between days.
type Cliente struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Cantidad  int             `json:"cantidad"`
	Total     decimal.Decimal `json:"total"`
	Entregado bool            `json:"entregado"`
	Telefono  string          `json:"telefono"`
	Producto  string          `json:"producto"`
}

// RegistroVenta is the sales document for one calendar day, keyed by ISO
// date. Days are fully independent of each other; every mutation is a
// merge-write of this one document.
type RegistroVenta struct {
	Fecha         string          `json:"fecha"`
	Inversion     decimal.Decimal `json:"inversion"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	StockTotal    int             `json:"stock_total"`
	Producto      string          `json:"producto"`
	ProductoOtro  string          `json:"producto_otro"`
	Clientes      []Cliente       `json:"clientes"`
	ActualizadoEn time.Time       `json:"actualizado_en"`
}

// ProductoTexto resolves the display name of the day's product: the free
// text when "Otro" is selected, with "tu pedido" as fallback for the
// WhatsApp greeting when nothing was typed.
func (r *RegistroVenta) ProductoTexto() string {
	if r.Producto == "Otro" {
		if otro := strings.TrimSpace(r.ProductoOtro); otro != "" {
			return otro
		}
		return "tu pedido"
	}
	return r.Producto
}

// BuscarCliente returns the index of the order with the given id, or -1.
func (r *RegistroVenta) BuscarCliente(id string) int {
	for i := range r.Clientes {
		if r.Clientes[i].ID == id {
			return i
		}
	}
	return -1
}

// Resumen is the day's stock-vs-sold reconciliation.
type Resumen struct {
	ProductoTexto     string
	UnidadesStock     int
	UnidadesVendidas  int
	UnidadesRestantes int
	TotalVendido      decimal.Decimal
	Ganancia          decimal.Decimal
	Clientes          int
	Entregados        int
	Pendientes        int
}

// CalcularResumen derives the reconciliation from the current order list.
// UnidadesRestantes is signed: overselling is representable, not prevented.
func (r *RegistroVenta) CalcularResumen() Resumen {
	vendidas := 0
	entregados := 0
	totalVendido := decimal.Zero
	for _, c := range r.Clientes {
		vendidas += c.Cantidad
		totalVendido = totalVendido.Add(c.Total)
		if c.Entregado {
			entregados++
		}
	}

	return Resumen{
		ProductoTexto:     r.ProductoTexto(),
		UnidadesStock:     r.StockTotal,
		UnidadesVendidas:  vendidas,
		UnidadesRestantes: r.StockTotal - vendidas,
		TotalVendido:      totalVendido,
		Ganancia:          totalVendido.Sub(r.Inversion),
		Clientes:          len(r.Clientes),
		Entregados:        entregados,
		Pendientes:        len(r.Clientes) - entregados,
	}
}
