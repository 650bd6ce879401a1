package service

import (
	"context"
	"strings"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/model"
	"ventadiaria/internal/repository"

	"github.com/shopspring/decimal"
)

type FinanzasService interface {
	// ObtenerDia returns the day's ledger with daily and global totals.
	ObtenerDia(ctx context.Context, fecha string) (*dto.RegistroFinanzasResponse, error)
	AgregarIngreso(ctx context.Context, fecha string, req dto.MovimientoRequest) (*dto.RegistroFinanzasResponse, error)
	AgregarGasto(ctx context.Context, fecha string, req dto.MovimientoRequest) (*dto.RegistroFinanzasResponse, error)
	// TotalesGlobales aggregates every persisted day.
	TotalesGlobales(ctx context.Context) (*dto.TotalesResponse, error)
}

type finanzasService struct {
	repo repository.RegistroFinanzasRepository
}

func NewFinanzasService(repo repository.RegistroFinanzasRepository) FinanzasService {
	return &finanzasService{repo: repo}
}

func (s *finanzasService) ObtenerDia(ctx context.Context, fecha string) (*dto.RegistroFinanzasResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return s.responder(ctx, reg)
}

func (s *finanzasService) AgregarIngreso(ctx context.Context, fecha string, req dto.MovimientoRequest) (*dto.RegistroFinanzasResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	reg.Ingresos = append(reg.Ingresos, model.Movimiento{
		Monto:       req.Monto,
		Descripcion: strings.TrimSpace(req.Descripcion),
	})
	if err := s.repo.MergeMovimientos(ctx, reg); err != nil {
		return nil, err
	}
	return s.responder(ctx, reg)
}

func (s *finanzasService) AgregarGasto(ctx context.Context, fecha string, req dto.MovimientoRequest) (*dto.RegistroFinanzasResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	reg.Gastos = append(reg.Gastos, model.Movimiento{
		Monto:       req.Monto,
		Descripcion: strings.TrimSpace(req.Descripcion),
	})
	if err := s.repo.MergeMovimientos(ctx, reg); err != nil {
		return nil, err
	}
	return s.responder(ctx, reg)
}

func (s *finanzasService) TotalesGlobales(ctx context.Context) (*dto.TotalesResponse, error) {
	registros, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totales := totalesGlobales(registros)
	return &totales, nil
}

func (s *finanzasService) responder(ctx context.Context, reg *model.RegistroFinanzas) (*dto.RegistroFinanzasResponse, error) {
	registros, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RegistroFinanzasResponse{
		Fecha:    reg.Fecha,
		Ingresos: movimientosToResponse(reg.Ingresos),
		Gastos:   movimientosToResponse(reg.Gastos),
		Totales:  totalesDiarios(reg),
		Globales: totalesGlobales(registros),
	}, nil
}

// ── Pure aggregation helpers ──────────────────────────────────────────────────

func sumarMovimientos(movs []model.Movimiento) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		total = total.Add(m.Monto)
	}
	return total
}

func totalesDiarios(reg *model.RegistroFinanzas) dto.TotalesResponse {
	ingresos := sumarMovimientos(reg.Ingresos)
	gastos := sumarMovimientos(reg.Gastos)
	return dto.TotalesResponse{
		Ingresos: ingresos,
		Gastos:   gastos,
		Balance:  ingresos.Sub(gastos),
	}
}

// totalesGlobales folds every day's movements into one running balance.
func totalesGlobales(registros []model.RegistroFinanzas) dto.TotalesResponse {
	ingresos := decimal.Zero
	gastos := decimal.Zero
	for i := range registros {
		ingresos = ingresos.Add(sumarMovimientos(registros[i].Ingresos))
		gastos = gastos.Add(sumarMovimientos(registros[i].Gastos))
	}
	return dto.TotalesResponse{
		Ingresos: ingresos,
		Gastos:   gastos,
		Balance:  ingresos.Sub(gastos),
	}
}

func movimientosToResponse(movs []model.Movimiento) []dto.MovimientoResponse {
	resp := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		resp = append(resp, dto.MovimientoResponse{Monto: m.Monto, Descripcion: m.Descripcion})
	}
	return resp
}
