package tests

import (
	"context"
	"sort"
	"testing"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/model"
	"ventadiaria/internal/repository"
	"ventadiaria/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubContactoRepo keys by phone, like the real table.
type stubContactoRepo struct {
	contactos map[string]model.Contacto
}

func newStubContactoRepo() *stubContactoRepo {
	return &stubContactoRepo{contactos: make(map[string]model.Contacto)}
}

func (r *stubContactoRepo) Upsert(_ context.Context, c *model.Contacto) error {
	r.contactos[c.Telefono] = *c
	return nil
}

func (r *stubContactoRepo) UpsertBatch(_ context.Context, contactos []model.Contacto) error {
	for _, c := range contactos {
		r.contactos[c.Telefono] = c
	}
	return nil
}

func (r *stubContactoRepo) List(_ context.Context) ([]model.Contacto, error) {
	out := make([]model.Contacto, 0, len(r.contactos))
	for _, c := range r.contactos {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

var _ repository.ContactoRepository = (*stubContactoRepo)(nil)

func buildContactoSvc() (service.ContactoService, *stubContactoRepo) {
	repo := newStubContactoRepo()
	// nil redis client: the directory cache is a no-op in unit tests
	return service.NewContactoService(repo, nil, 0), repo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestImportarCSV(t *testing.T) {
	svc, repo := buildContactoSvc()

	csv := "Nombre,Teléfono\n" +
		"María,0961079919\n" +
		"Juan,+593 98-765-4321\n" +
		"\n" +
		"Pepe,abc\n" +
		",0911111111\n"

	resp, err := svc.ImportarCSV(context.Background(), []byte(csv))
	require.NoError(t, err)

	require.Len(t, resp.Importados, 2)
	assert.Equal(t, "María", resp.Importados[0].Nombre)
	assert.Equal(t, "593961079919", resp.Importados[0].Telefono)
	assert.Equal(t, "593987654321", resp.Importados[1].Telefono)

	// Blank line is ignored silently; defective rows are counted with reasons
	assert.Equal(t, 2, resp.Omitidas)
	require.Len(t, resp.Errores, 2)
	assert.Contains(t, resp.Errores[0], "fila 5")
	assert.Contains(t, resp.Errores[1], "fila 6")

	assert.Len(t, repo.contactos, 2)
}

func TestImportarCSV_PuntoYComaYDuplicados(t *testing.T) {
	svc, repo := buildContactoSvc()

	// Same phone in two spellings: the later row wins
	csv := "cliente;celular\n" +
		"Ana;0911111111\n" +
		"Luis;0922222222\n" +
		"Ana María;+593911111111\n"

	resp, err := svc.ImportarCSV(context.Background(), []byte(csv))
	require.NoError(t, err)
	require.Len(t, resp.Importados, 2)
	assert.Zero(t, resp.Omitidas)

	// The winner keeps the first occurrence's position
	assert.Equal(t, "Ana María", resp.Importados[0].Nombre)
	assert.Equal(t, "593911111111", resp.Importados[0].Telefono)
	assert.Equal(t, "Luis", resp.Importados[1].Nombre)
	assert.Len(t, repo.contactos, 2)
}

func TestImportarCSV_ColumnasFaltantes(t *testing.T) {
	svc, repo := buildContactoSvc()

	_, err := svc.ImportarCSV(context.Background(), []byte("Producto,Precio\nMorocho,1.50\n"))
	require.ErrorIs(t, err, service.ErrColumnasFaltantes)
	assert.ErrorContains(t, err, "nombre y teléfono")

	// Structural failure: nothing is written
	assert.Empty(t, repo.contactos)
}

func TestImportarCSV_SinDatos(t *testing.T) {
	svc, _ := buildContactoSvc()

	_, err := svc.ImportarCSV(context.Background(), []byte("Nombre,Telefono\n"))
	assert.ErrorIs(t, err, service.ErrCSVSinDatos)

	_, err = svc.ImportarCSV(context.Background(), []byte(""))
	assert.ErrorIs(t, err, service.ErrCSVSinDatos)
}

func TestGuardarContacto(t *testing.T) {
	svc, repo := buildContactoSvc()

	resp, err := svc.Guardar(context.Background(), dto.GuardarContactoRequest{
		Nombre: "  Carmen ", Telefono: "(09) 6107-9919",
	})
	require.NoError(t, err)
	assert.Equal(t, "Carmen", resp.Nombre)
	assert.Equal(t, "593961079919", resp.Telefono)
	assert.Len(t, repo.contactos, 1)

	// Same canonical phone updates the name instead of duplicating
	_, err = svc.Guardar(context.Background(), dto.GuardarContactoRequest{
		Nombre: "Carmen Díaz", Telefono: "0961079919",
	})
	require.NoError(t, err)
	assert.Len(t, repo.contactos, 1)
	assert.Equal(t, "Carmen Díaz", repo.contactos["593961079919"].Nombre)
}

func TestGuardarContacto_Validacion(t *testing.T) {
	svc, _ := buildContactoSvc()

	_, err := svc.Guardar(context.Background(), dto.GuardarContactoRequest{Nombre: " ", Telefono: "0961079919"})
	assert.ErrorIs(t, err, service.ErrNombreInvalido)

	_, err = svc.Guardar(context.Background(), dto.GuardarContactoRequest{Nombre: "Ana", Telefono: "---"})
	assert.ErrorIs(t, err, service.ErrTelefonoInvalido)
}

func TestListarContactos_OrdenPorNombre(t *testing.T) {
	svc, _ := buildContactoSvc()

	for _, c := range []dto.GuardarContactoRequest{
		{Nombre: "Zoila", Telefono: "0911111111"},
		{Nombre: "Ana", Telefono: "0922222222"},
		{Nombre: "Luis", Telefono: "0933333333"},
	} {
		_, err := svc.Guardar(context.Background(), c)
		require.NoError(t, err)
	}

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "Ana", lista[0].Nombre)
	assert.Equal(t, "Luis", lista[1].Nombre)
	assert.Equal(t, "Zoila", lista[2].Nombre)
}
