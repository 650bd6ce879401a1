package tests

import (
	"context"
	"strings"
	"testing"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/model"
	"ventadiaria/internal/repository"
	"ventadiaria/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubRegistroVentaRepo is an in-memory RegistroVentaRepository. It copies on
// load and merge so services cannot mutate stored state without writing.
type stubRegistroVentaRepo struct {
	registros  map[string]*model.RegistroVenta
	escrituras int
}

func newStubRegistroVentaRepo() *stubRegistroVentaRepo {
	return &stubRegistroVentaRepo{registros: make(map[string]*model.RegistroVenta)}
}

func (r *stubRegistroVentaRepo) Load(_ context.Context, fecha string) (*model.RegistroVenta, bool, error) {
	if reg, ok := r.registros[fecha]; ok {
		copia := *reg
		copia.Clientes = append([]model.Cliente(nil), reg.Clientes...)
		return &copia, true, nil
	}
	return &model.RegistroVenta{
		Fecha:    fecha,
		Producto: model.ProductosBase[0],
		Clientes: []model.Cliente{},
	}, false, nil
}

func (r *stubRegistroVentaRepo) MergeCabecera(ctx context.Context, reg *model.RegistroVenta) error {
	r.escrituras++
	actual, _, _ := r.Load(ctx, reg.Fecha)
	actual.Inversion = reg.Inversion
	actual.CostoUnitario = reg.CostoUnitario
	actual.StockTotal = reg.StockTotal
	actual.Producto = reg.Producto
	actual.ProductoOtro = reg.ProductoOtro
	r.registros[reg.Fecha] = actual
	return nil
}

func (r *stubRegistroVentaRepo) MergeClientes(ctx context.Context, fecha string, clientes []model.Cliente) error {
	r.escrituras++
	actual, _, _ := r.Load(ctx, fecha)
	actual.Clientes = append([]model.Cliente(nil), clientes...)
	r.registros[fecha] = actual
	return nil
}

func (r *stubRegistroVentaRepo) MergeTodo(_ context.Context, reg *model.RegistroVenta) error {
	r.escrituras++
	copia := *reg
	copia.Clientes = append([]model.Cliente(nil), reg.Clientes...)
	r.registros[reg.Fecha] = &copia
	return nil
}

var _ repository.RegistroVentaRepository = (*stubRegistroVentaRepo)(nil)

// stubContactoService records directory upserts triggered by saved orders.
type stubContactoService struct {
	guardados []dto.GuardarContactoRequest
}

func (s *stubContactoService) Listar(_ context.Context) ([]dto.ContactoResponse, error) {
	return nil, nil
}

func (s *stubContactoService) Guardar(_ context.Context, req dto.GuardarContactoRequest) (*dto.ContactoResponse, error) {
	s.guardados = append(s.guardados, req)
	return &dto.ContactoResponse{Nombre: req.Nombre, Telefono: req.Telefono}, nil
}

func (s *stubContactoService) ImportarCSV(_ context.Context, _ []byte) (*dto.CSVImportResponse, error) {
	return nil, nil
}

var _ service.ContactoService = (*stubContactoService)(nil)

// ── VentaService factory for tests ───────────────────────────────────────────

func buildVentaSvc() (service.VentaService, *stubRegistroVentaRepo, *stubContactoService) {
	repo := newStubRegistroVentaRepo()
	contactos := &stubContactoService{}
	svc := service.NewVentaService(repo, contactos, nil, "", "VentaDiaria")
	return svc, repo, contactos
}

func guardarCabecera(t *testing.T, svc service.VentaService, fecha string, costo, inversion float64, stock int) {
	t.Helper()
	_, err := svc.GuardarCabecera(context.Background(), fecha, dto.CabeceraRequest{
		Inversion:     decimal.NewFromFloat(inversion),
		CostoUnitario: decimal.NewFromFloat(costo),
		StockTotal:    stock,
		Producto:      "Encebollado",
	})
	require.NoError(t, err)
}

// ── Tests ─────────────────────────────────────────────────────────────────────

const fecha = "2026-03-15"

func TestGuardarCliente_Agregar(t *testing.T) {
	svc, _, contactos := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	resp, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre:   "  María  ",
		Cantidad: 5,
		Telefono: "0961079919",
	})
	require.NoError(t, err)
	require.Len(t, resp.Clientes, 1)

	c := resp.Clientes[0]
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "María", c.Nombre)
	assert.Equal(t, "12.5", c.Total.String()) // 5 × 2.50
	assert.Equal(t, "593961079919", c.Telefono)
	assert.Equal(t, "Encebollado", c.Producto)
	assert.False(t, c.Entregado)

	// Saving the order also upserts the contact directory
	require.Len(t, contactos.guardados, 1)
	assert.Equal(t, "593961079919", contactos.guardados[0].Telefono)
}

func TestGuardarCliente_ValidacionEnOrden(t *testing.T) {
	svc, repo, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)
	escrituras := repo.escrituras

	// Nombre first, even with everything else wrong too
	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "   ", Cantidad: 0, Telefono: "",
	})
	assert.ErrorIs(t, err, service.ErrNombreInvalido)

	_, err = svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: -1, Telefono: "0961079919",
	})
	assert.ErrorIs(t, err, service.ErrCantidadInvalida)

	_, err = svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "   ",
	})
	assert.ErrorIs(t, err, service.ErrTelefonoInvalido)

	// A rejected order never touches the record
	assert.Equal(t, escrituras, repo.escrituras)
	reg, _, _ := repo.Load(context.Background(), fecha)
	assert.Empty(t, reg.Clientes)
}

func TestGuardarCliente_SinCostoUnitario(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	// No header saved: unit cost of the day is zero

	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "0961079919",
	})
	assert.ErrorIs(t, err, service.ErrCostoUnitarioFaltante)
}

func TestGuardarCliente_EditarEnPosicion(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	resp, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "0961079919",
	})
	require.NoError(t, err)
	_, err = svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Luis", Cantidad: 1, Telefono: "0987654321",
	})
	require.NoError(t, err)

	anaID := resp.Clientes[0].ID
	_, err = svc.ToggleEntrega(context.Background(), fecha, anaID)
	require.NoError(t, err)

	editado, err := svc.GuardarCliente(context.Background(), fecha, anaID, dto.GuardarClienteRequest{
		Nombre: "Ana María", Cantidad: 4, Telefono: "0961079919",
	})
	require.NoError(t, err)
	require.Len(t, editado.Clientes, 2)

	// Same position, same id, delivered flag survives; quantity and total change
	c := editado.Clientes[0]
	assert.Equal(t, anaID, c.ID)
	assert.Equal(t, "Ana María", c.Nombre)
	assert.Equal(t, "10", c.Total.String()) // 4 × 2.50
	assert.True(t, c.Entregado)
	assert.Equal(t, "Luis", editado.Clientes[1].Nombre)
}

func TestGuardarCliente_EditIDDesconocido(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "0961079919",
	})
	require.NoError(t, err)

	// Unknown edit id appends as a new order with its own id
	resp, err := svc.GuardarCliente(context.Background(), fecha, "no-existe", dto.GuardarClienteRequest{
		Nombre: "Luis", Cantidad: 1, Telefono: "0987654321",
	})
	require.NoError(t, err)
	require.Len(t, resp.Clientes, 2)
	assert.Equal(t, "Luis", resp.Clientes[1].Nombre)
	assert.NotEqual(t, "no-existe", resp.Clientes[1].ID)
}

func TestToggleEntrega_IDDesconocidoNoEscribe(t *testing.T) {
	svc, repo, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)
	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "0961079919",
	})
	require.NoError(t, err)
	escrituras := repo.escrituras

	resp, err := svc.ToggleEntrega(context.Background(), fecha, "no-existe")
	require.NoError(t, err)
	assert.False(t, resp.Clientes[0].Entregado)
	assert.Equal(t, escrituras, repo.escrituras)
}

func TestEliminarCliente(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	primero, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 2, Telefono: "0961079919",
	})
	require.NoError(t, err)
	_, err = svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Luis", Cantidad: 1, Telefono: "0987654321",
	})
	require.NoError(t, err)

	resp, err := svc.EliminarCliente(context.Background(), fecha, primero.Clientes[0].ID)
	require.NoError(t, err)
	require.Len(t, resp.Clientes, 1)
	assert.Equal(t, "Luis", resp.Clientes[0].Nombre)
}

func TestResumen(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 5, Telefono: "0961079919",
	})
	require.NoError(t, err)
	resp, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Luis", Cantidad: 3, Telefono: "0987654321",
	})
	require.NoError(t, err)
	_, err = svc.ToggleEntrega(context.Background(), fecha, resp.Clientes[1].ID)
	require.NoError(t, err)

	resumen, err := svc.Resumen(context.Background(), fecha)
	require.NoError(t, err)
	assert.Equal(t, 30, resumen.UnidadesStock)
	assert.Equal(t, 8, resumen.UnidadesVendidas)
	assert.Equal(t, 22, resumen.UnidadesRestantes)
	assert.Equal(t, "20", resumen.TotalVendido.String()) // 8 × 2.50
	assert.Equal(t, "10", resumen.Ganancia.String())     // 20 − 10 inversion
	assert.Equal(t, 2, resumen.Clientes)
	assert.Equal(t, 1, resumen.Entregados)
	assert.Equal(t, 1, resumen.Pendientes)
}

func TestResumen_Sobreventa(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 3)

	_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "Ana", Cantidad: 5, Telefono: "0961079919",
	})
	require.NoError(t, err)

	resumen, err := svc.Resumen(context.Background(), fecha)
	require.NoError(t, err)
	// Overselling is accepted and shows as a negative remainder
	assert.Equal(t, -2, resumen.UnidadesRestantes)
}

func TestListarClientes_FiltroPendientes(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	for _, nombre := range []string{"Ana", "Luis", "Carmen"} {
		_, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
			Nombre: nombre, Cantidad: 1, Telefono: "0961079919",
		})
		require.NoError(t, err)
	}
	todos, err := svc.ListarClientes(context.Background(), fecha, "todos")
	require.NoError(t, err)
	require.Len(t, todos, 3)
	_, err = svc.ToggleEntrega(context.Background(), fecha, todos[1].ID)
	require.NoError(t, err)

	pendientes, err := svc.ListarClientes(context.Background(), fecha, "pendientes")
	require.NoError(t, err)
	require.Len(t, pendientes, 2)
	// Insertion order survives the filter
	assert.Equal(t, "Ana", pendientes[0].Nombre)
	assert.Equal(t, "Carmen", pendientes[1].Nombre)

	entregados, err := svc.ListarClientes(context.Background(), fecha, "entregados")
	require.NoError(t, err)
	require.Len(t, entregados, 1)
	assert.Equal(t, "Luis", entregados[0].Nombre)
}

func TestLinkWhatsApp(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	guardarCabecera(t, svc, fecha, 2.5, 10, 30)

	resp, err := svc.GuardarCliente(context.Background(), fecha, "", dto.GuardarClienteRequest{
		Nombre: "María", Cantidad: 2, Telefono: "0961079919",
	})
	require.NoError(t, err)

	link, err := svc.LinkWhatsApp(context.Background(), fecha, resp.Clientes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "593961079919", link.Telefono)
	assert.True(t, strings.HasPrefix(link.Link, "https://wa.me/593961079919?text="), link.Link)
	// Spaces are %20, never "+", and the date is DD/MM/YYYY
	assert.NotContains(t, link.Link, "+")
	assert.Contains(t, link.Link, "%20")
	assert.Contains(t, link.Link, "15%2F03%2F2026")
	assert.Contains(t, link.Link, "Encebollado")
}

func TestLinkWhatsApp_ClienteNoEncontrado(t *testing.T) {
	svc, _, _ := buildVentaSvc()
	_, err := svc.LinkWhatsApp(context.Background(), fecha, "no-existe")
	assert.ErrorIs(t, err, service.ErrClienteNoEncontrado)
}
