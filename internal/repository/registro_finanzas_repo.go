package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ventadiaria/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistroFinanzasRepository stores one finance document per calendar day.
// Global totals are never materialized; callers recompute them from ListAll.
type RegistroFinanzasRepository interface {
	// Load returns the day's record, or an empty one (found=false) when the
	// date has never been written. Null / missing arrays decode as empty.
	Load(ctx context.Context, fecha string) (*model.RegistroFinanzas, bool, error)
	// MergeMovimientos upserts the income and expense arrays of one day.
	MergeMovimientos(ctx context.Context, reg *model.RegistroFinanzas) error
	// ListAll returns every finance record for the global full-collection scan.
	ListAll(ctx context.Context) ([]model.RegistroFinanzas, error)
}

type registroFinanzasRepo struct{ db *gorm.DB }

func NewRegistroFinanzasRepository(db *gorm.DB) RegistroFinanzasRepository {
	return &registroFinanzasRepo{db: db}
}

type registroFinanzasRow struct {
	Fecha         string         `gorm:"type:varchar(10);primaryKey"`
	Ingresos      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Gastos        datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ActualizadoEn time.Time      `gorm:"autoUpdateTime"`
}

func (registroFinanzasRow) TableName() string { return "registros_finanzas" }

func (r *registroFinanzasRepo) Load(ctx context.Context, fecha string) (*model.RegistroFinanzas, bool, error) {
	var row registroFinanzasRow
	err := r.db.WithContext(ctx).First(&row, "fecha = ?", fecha).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.RegistroFinanzas{Fecha: fecha}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	reg, err := finanzasRowToRegistro(&row)
	if err != nil {
		return nil, false, err
	}
	return reg, true, nil
}

func (r *registroFinanzasRepo) MergeMovimientos(ctx context.Context, reg *model.RegistroFinanzas) error {
	row, err := finanzasRegistroToRow(reg)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"ingresos", "gastos", "actualizado_en"}),
	}).Create(row).Error
}

func (r *registroFinanzasRepo) ListAll(ctx context.Context) ([]model.RegistroFinanzas, error) {
	var rows []registroFinanzasRow
	if err := r.db.WithContext(ctx).Order("fecha").Find(&rows).Error; err != nil {
		return nil, err
	}
	regs := make([]model.RegistroFinanzas, 0, len(rows))
	for i := range rows {
		reg, err := finanzasRowToRegistro(&rows[i])
		if err != nil {
			return nil, err
		}
		regs = append(regs, *reg)
	}
	return regs, nil
}

func finanzasRowToRegistro(row *registroFinanzasRow) (*model.RegistroFinanzas, error) {
	reg := &model.RegistroFinanzas{Fecha: row.Fecha, ActualizadoEn: row.ActualizadoEn}
	if len(row.Ingresos) > 0 {
		if err := json.Unmarshal(row.Ingresos, &reg.Ingresos); err != nil {
			return nil, err
		}
	}
	if len(row.Gastos) > 0 {
		if err := json.Unmarshal(row.Gastos, &reg.Gastos); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func finanzasRegistroToRow(reg *model.RegistroFinanzas) (*registroFinanzasRow, error) {
	ingresos, err := json.Marshal(movimientosOrEmpty(reg.Ingresos))
	if err != nil {
		return nil, err
	}
	gastos, err := json.Marshal(movimientosOrEmpty(reg.Gastos))
	if err != nil {
		return nil, err
	}
	return &registroFinanzasRow{
		Fecha:    reg.Fecha,
		Ingresos: datatypes.JSON(ingresos),
		Gastos:   datatypes.JSON(gastos),
	}, nil
}

// movimientosOrEmpty keeps nil slices from serializing as JSON null.
func movimientosOrEmpty(ms []model.Movimiento) []model.Movimiento {
	if ms == nil {
		return []model.Movimiento{}
	}
	return ms
}
