package handler

import (
	"io"
	"net/http"

	"ventadiaria/internal/apierror"
	"ventadiaria/internal/dto"
	"ventadiaria/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar el directorio de contactos
// @Description  Retorna todos los contactos ordenados por nombre.
// @Tags         contactos
// @Produce      json
// @Success      200 {array} dto.ContactoResponse
// @Router       /v1/contactos [get]
func (h *ContactosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar godoc
// @Summary      Guardar un contacto
// @Description  Upsert por teléfono canónico: un teléfono repetido actualiza el nombre existente.
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Param        body body dto.GuardarContactoRequest true "Nombre y teléfono"
// @Success      201 {object} dto.ContactoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos [post]
func (h *ContactosHandler) Guardar(c *gin.Context) {
	var req dto.GuardarContactoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Importar godoc
// @Summary      Importar contactos desde CSV
// @Description  Acepta un archivo multipart ("archivo") o el texto CSV como cuerpo. Separador , o ; detectado automáticamente; filas defectuosas se omiten y reportan.
// @Tags         contactos
// @Accept       mpfd
// @Produce      json
// @Param        archivo formData file false "Archivo CSV"
// @Success      200 {object} dto.CSVImportResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/importar [post]
func (h *ContactosHandler) Importar(c *gin.Context) {
	data, err := leerCSV(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo CSV"))
		return
	}
	resp, err := h.svc.ImportarCSV(c.Request.Context(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// leerCSV pulls the upload from the multipart field "archivo", falling back
// to the raw request body for text/csv posts.
func leerCSV(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("archivo"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}
