package service

import (
	"context"
	"errors"
	"strings"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/infra"
	"ventadiaria/internal/model"
	"ventadiaria/internal/phone"
	"ventadiaria/internal/repository"
	"ventadiaria/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type VentaService interface {
	ObtenerDia(ctx context.Context, fecha string) (*dto.RegistroVentaResponse, error)
	// GuardarCabecera merge-writes the day header; the client list is untouched.
	GuardarCabecera(ctx context.Context, fecha string, req dto.CabeceraRequest) (*dto.RegistroVentaResponse, error)
	// GuardarCliente adds or edits one order. editID == "" appends; an editID
	// matching an existing order replaces it in place, an unknown editID
	// appends a new order.
	GuardarCliente(ctx context.Context, fecha, editID string, req dto.GuardarClienteRequest) (*dto.RegistroVentaResponse, error)
	// ToggleEntrega flips the delivered flag. Unknown ids are a no-op: the
	// record is returned unchanged and nothing is written.
	ToggleEntrega(ctx context.Context, fecha, id string) (*dto.RegistroVentaResponse, error)
	EliminarCliente(ctx context.Context, fecha, id string) (*dto.RegistroVentaResponse, error)
	Resumen(ctx context.Context, fecha string) (*dto.ResumenResponse, error)
	// ListarClientes filters by delivery state (todos | entregados |
	// pendientes) preserving insertion order.
	ListarClientes(ctx context.Context, fecha, filtro string) ([]dto.ClienteResponse, error)
	LinkWhatsApp(ctx context.Context, fecha, id string) (*dto.WhatsAppLinkResponse, error)
	// GenerarReporte writes the day's PDF report and returns its path.
	GenerarReporte(ctx context.Context, fecha string) (string, error)
	// EnviarReportePorEmail enqueues async generation + delivery of the report.
	EnviarReportePorEmail(ctx context.Context, fecha, email string) error
}

type ventaService struct {
	repo       repository.RegistroVentaRepository
	contactos  ContactoService
	dispatcher *worker.Dispatcher // nil when async delivery is not wired (tests)

	pdfStoragePath string
	nombreNegocio  string
}

func NewVentaService(
	repo repository.RegistroVentaRepository,
	contactos ContactoService,
	dispatcher *worker.Dispatcher,
	pdfStoragePath string,
	nombreNegocio string,
) VentaService {
	return &ventaService{
		repo:           repo,
		contactos:      contactos,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

func (s *ventaService) ObtenerDia(ctx context.Context, fecha string) (*dto.RegistroVentaResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return registroVentaToResponse(reg), nil
}

func (s *ventaService) GuardarCabecera(ctx context.Context, fecha string, req dto.CabeceraRequest) (*dto.RegistroVentaResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}

	reg.Inversion = req.Inversion
	reg.CostoUnitario = req.CostoUnitario
	reg.StockTotal = req.StockTotal
	reg.Producto = req.Producto
	reg.ProductoOtro = strings.TrimSpace(req.ProductoOtro)

	// Stored client totals are NOT rewritten when the unit cost changes;
	// only orders persisted without a total pick up the new cost on load.
	if err := s.repo.MergeCabecera(ctx, reg); err != nil {
		return nil, err
	}
	return registroVentaToResponse(reg), nil
}

func (s *ventaService) GuardarCliente(ctx context.Context, fecha, editID string, req dto.GuardarClienteRequest) (*dto.RegistroVentaResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}

	// Validation order matters: the first offending field wins and the
	// record is left untouched.
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, ErrNombreInvalido
	}
	if req.Cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}
	if !reg.CostoUnitario.IsPositive() {
		return nil, ErrCostoUnitarioFaltante
	}
	if strings.TrimSpace(req.Telefono) == "" {
		return nil, ErrTelefonoInvalido
	}

	tel := phone.Normalize(req.Telefono)
	total := reg.CostoUnitario.Mul(decimal.NewFromInt(int64(req.Cantidad)))
	producto := reg.ProductoTexto()

	if idx := reg.BuscarCliente(editID); editID != "" && idx >= 0 {
		// Replace in place: position, id and delivered flag survive the edit.
		c := &reg.Clientes[idx]
		c.Nombre = nombre
		c.Cantidad = req.Cantidad
		c.Total = total
		c.Telefono = tel
		c.Producto = producto
	} else {
		reg.Clientes = append(reg.Clientes, model.Cliente{
			ID:       uuid.NewString(),
			Nombre:   nombre,
			Cantidad: req.Cantidad,
			Total:    total,
			Telefono: tel,
			Producto: producto,
		})
	}

	if err := s.repo.MergeTodo(ctx, reg); err != nil {
		return nil, err
	}

	// Directory upsert is a side effect of saving the order; a failure here
	// must not undo an already-persisted sale.
	if s.contactos != nil {
		if _, err := s.contactos.Guardar(ctx, dto.GuardarContactoRequest{Nombre: nombre, Telefono: tel}); err != nil {
			log.Warn().Err(err).Str("fecha", fecha).Msg("no se pudo guardar el contacto del cliente")
		}
	}

	return registroVentaToResponse(reg), nil
}

func (s *ventaService) ToggleEntrega(ctx context.Context, fecha, id string) (*dto.RegistroVentaResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}

	idx := reg.BuscarCliente(id)
	if idx < 0 {
		return registroVentaToResponse(reg), nil
	}

	reg.Clientes[idx].Entregado = !reg.Clientes[idx].Entregado
	if err := s.repo.MergeClientes(ctx, fecha, reg.Clientes); err != nil {
		return nil, err
	}
	return registroVentaToResponse(reg), nil
}

func (s *ventaService) EliminarCliente(ctx context.Context, fecha, id string) (*dto.RegistroVentaResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}

	filtrados := reg.Clientes[:0:0]
	for _, c := range reg.Clientes {
		if c.ID != id {
			filtrados = append(filtrados, c)
		}
	}
	reg.Clientes = filtrados

	if err := s.repo.MergeClientes(ctx, fecha, reg.Clientes); err != nil {
		return nil, err
	}
	return registroVentaToResponse(reg), nil
}

func (s *ventaService) Resumen(ctx context.Context, fecha string) (*dto.ResumenResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	resumen := resumenToResponse(reg.CalcularResumen())
	return &resumen, nil
}

func (s *ventaService) ListarClientes(ctx context.Context, fecha, filtro string) ([]dto.ClienteResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return clientesToResponse(filtrarPorEntrega(reg.Clientes, filtro)), nil
}

func (s *ventaService) LinkWhatsApp(ctx context.Context, fecha, id string) (*dto.WhatsAppLinkResponse, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return nil, err
	}

	idx := reg.BuscarCliente(id)
	if idx < 0 {
		return nil, ErrClienteNoEncontrado
	}
	c := reg.Clientes[idx]

	tel := phone.Normalize(c.Telefono)
	if tel == "" {
		return nil, ErrTelefonoInvalido
	}

	return &dto.WhatsAppLinkResponse{
		Telefono: tel,
		Link:     infra.WhatsAppLink(tel, c.Nombre, c.Cantidad, c.Producto, fecha),
	}, nil
}

func (s *ventaService) GenerarReporte(ctx context.Context, fecha string) (string, error) {
	reg, _, err := s.repo.Load(ctx, fecha)
	if err != nil {
		return "", err
	}
	return infra.GenerarReportePDF(reg, s.pdfStoragePath, s.nombreNegocio)
}

func (s *ventaService) EnviarReportePorEmail(ctx context.Context, fecha, email string) error {
	if s.dispatcher == nil {
		return errors.New("el envío de reportes no está disponible")
	}
	return s.dispatcher.EnqueueReporte(ctx, worker.ReportePayload{Fecha: fecha, Email: email})
}

// ── Pure helpers ──────────────────────────────────────────────────────────────

// filtrarPorEntrega keeps insertion order. Any filter other than
// "entregados" / "pendientes" returns everything.
func filtrarPorEntrega(clientes []model.Cliente, filtro string) []model.Cliente {
	if filtro != "entregados" && filtro != "pendientes" {
		return clientes
	}
	quererEntregado := filtro == "entregados"

	filtrados := make([]model.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if c.Entregado == quererEntregado {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func registroVentaToResponse(reg *model.RegistroVenta) *dto.RegistroVentaResponse {
	return &dto.RegistroVentaResponse{
		Fecha:         reg.Fecha,
		Inversion:     reg.Inversion,
		CostoUnitario: reg.CostoUnitario,
		StockTotal:    reg.StockTotal,
		Producto:      reg.Producto,
		ProductoOtro:  reg.ProductoOtro,
		ProductoTexto: reg.ProductoTexto(),
		Clientes:      clientesToResponse(reg.Clientes),
		Resumen:       resumenToResponse(reg.CalcularResumen()),
	}
}

func resumenToResponse(r model.Resumen) dto.ResumenResponse {
	return dto.ResumenResponse{
		ProductoTexto:     r.ProductoTexto,
		UnidadesStock:     r.UnidadesStock,
		UnidadesVendidas:  r.UnidadesVendidas,
		UnidadesRestantes: r.UnidadesRestantes,
		TotalVendido:      r.TotalVendido,
		Ganancia:          r.Ganancia,
		Clientes:          r.Clientes,
		Entregados:        r.Entregados,
		Pendientes:        r.Pendientes,
	}
}

func clientesToResponse(clientes []model.Cliente) []dto.ClienteResponse {
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		resp = append(resp, dto.ClienteResponse{
			ID:        c.ID,
			Nombre:    c.Nombre,
			Cantidad:  c.Cantidad,
			Total:     c.Total,
			Entregado: c.Entregado,
			Telefono:  c.Telefono,
			Producto:  c.Producto,
		})
	}
	return resp
}
