package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ventadiaria/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistroVentaRepository is the keyed document store for per-day sales
// records. Every write is a merge: only the columns named by the operation
// are assigned, the rest of the row is retained. Last write wins; there is
// no optimistic-concurrency check.
type RegistroVentaRepository interface {
	// Load returns the day's record, or a fresh empty record (found=false)
	// when the date has never been written.
	Load(ctx context.Context, fecha string) (*model.RegistroVenta, bool, error)
	// MergeCabecera upserts only the day header (inversion, costo unitario,
	// stock, producto), leaving the client list untouched.
	MergeCabecera(ctx context.Context, reg *model.RegistroVenta) error
	// MergeClientes upserts only the client list.
	MergeClientes(ctx context.Context, fecha string, clientes []model.Cliente) error
	// MergeTodo upserts header and client list together (the add/edit-client
	// path persists both, like the original day form).
	MergeTodo(ctx context.Context, reg *model.RegistroVenta) error
}

type registroVentaRepo struct{ db *gorm.DB }

func NewRegistroVentaRepository(db *gorm.DB) RegistroVentaRepository {
	return &registroVentaRepo{db: db}
}

// registroVentaRow is the gorm row backing a day record. The client list is
// a JSONB array so the whole day stays one document.
type registroVentaRow struct {
	Fecha         string          `gorm:"type:varchar(10);primaryKey"`
	Inversion     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	StockTotal    int             `gorm:"not null;default:0"`
	Producto      string          `gorm:"type:varchar(60);not null;default:''"`
	ProductoOtro  string          `gorm:"type:varchar(60);not null;default:''"`
	Clientes      datatypes.JSON  `gorm:"type:jsonb;not null;default:'[]'"`
	ActualizadoEn time.Time       `gorm:"autoUpdateTime"`
}

func (registroVentaRow) TableName() string { return "registros_venta" }

// clienteDoc mirrors model.Cliente for decoding stored documents. Total is a
// pointer so the load path can tell an absent field apart from zero: legacy
// documents may lack per-order totals, in which case the total is recomputed
// with the day's CURRENT unit cost. That can rewrite historical totals when
// the unit cost changes; the behavior is kept as-is from the source system.
type clienteDoc struct {
	ID        docID            `json:"id"`
	Nombre    string           `json:"nombre"`
	Cantidad  int              `json:"cantidad"`
	Total     *decimal.Decimal `json:"total"`
	Entregado bool             `json:"entregado"`
	Telefono  string           `json:"telefono"`
	Producto  string           `json:"producto"`
}

// docID tolerates both uuid strings (current writes) and the bare numeric
// ids found in documents written by the legacy front-end.
type docID string

func (d *docID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*d = docID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = docID(s)
	return nil
}

func (r *registroVentaRepo) Load(ctx context.Context, fecha string) (*model.RegistroVenta, bool, error) {
	var row registroVentaRow
	err := r.db.WithContext(ctx).First(&row, "fecha = ?", fecha).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.RegistroVenta{Fecha: fecha, Producto: model.ProductosBase[0]}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	reg, err := rowToRegistro(&row)
	if err != nil {
		return nil, false, err
	}
	return reg, true, nil
}

func (r *registroVentaRepo) MergeCabecera(ctx context.Context, reg *model.RegistroVenta) error {
	row, err := registroToRow(reg)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"inversion", "costo_unitario", "stock_total", "producto", "producto_otro", "actualizado_en"}),
	}).Create(row).Error
}

func (r *registroVentaRepo) MergeClientes(ctx context.Context, fecha string, clientes []model.Cliente) error {
	doc, err := json.Marshal(clientesToDocs(clientes))
	if err != nil {
		return err
	}
	row := &registroVentaRow{Fecha: fecha, Clientes: datatypes.JSON(doc)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"clientes", "actualizado_en"}),
	}).Create(row).Error
}

func (r *registroVentaRepo) MergeTodo(ctx context.Context, reg *model.RegistroVenta) error {
	row, err := registroToRow(reg)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"inversion", "costo_unitario", "stock_total", "producto", "producto_otro", "clientes", "actualizado_en"}),
	}).Create(row).Error
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func rowToRegistro(row *registroVentaRow) (*model.RegistroVenta, error) {
	var docs []clienteDoc
	if len(row.Clientes) > 0 {
		if err := json.Unmarshal(row.Clientes, &docs); err != nil {
			return nil, err
		}
	}

	clientes := make([]model.Cliente, 0, len(docs))
	for _, d := range docs {
		total := decimal.Zero
		switch {
		case d.Total != nil:
			// Stored total is accepted as-is, even when stale.
			total = *d.Total
		case d.Cantidad > 0:
			total = row.CostoUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		}
		clientes = append(clientes, model.Cliente{
			ID:        string(d.ID),
			Nombre:    d.Nombre,
			Cantidad:  d.Cantidad,
			Total:     total,
			Entregado: d.Entregado,
			Telefono:  d.Telefono,
			Producto:  d.Producto,
		})
	}

	return &model.RegistroVenta{
		Fecha:         row.Fecha,
		Inversion:     row.Inversion,
		CostoUnitario: row.CostoUnitario,
		StockTotal:    row.StockTotal,
		Producto:      row.Producto,
		ProductoOtro:  row.ProductoOtro,
		Clientes:      clientes,
		ActualizadoEn: row.ActualizadoEn,
	}, nil
}

func registroToRow(reg *model.RegistroVenta) (*registroVentaRow, error) {
	doc, err := json.Marshal(clientesToDocs(reg.Clientes))
	if err != nil {
		return nil, err
	}
	return &registroVentaRow{
		Fecha:         reg.Fecha,
		Inversion:     reg.Inversion,
		CostoUnitario: reg.CostoUnitario,
		StockTotal:    reg.StockTotal,
		Producto:      reg.Producto,
		ProductoOtro:  reg.ProductoOtro,
		Clientes:      datatypes.JSON(doc),
	}, nil
}

func clientesToDocs(clientes []model.Cliente) []clienteDoc {
	docs := make([]clienteDoc, 0, len(clientes))
	for _, c := range clientes {
		total := c.Total
		docs = append(docs, clienteDoc{
			ID:        docID(c.ID),
			Nombre:    c.Nombre,
			Cantidad:  c.Cantidad,
			Total:     &total,
			Entregado: c.Entregado,
			Telefono:  c.Telefono,
			Producto:  c.Producto,
		})
	}
	return docs
}
