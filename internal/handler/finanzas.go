package handler

import (
	"net/http"

	"ventadiaria/internal/dto"
	"ventadiaria/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanzasHandler struct{ svc service.FinanzasService }

func NewFinanzasHandler(svc service.FinanzasService) *FinanzasHandler {
	return &FinanzasHandler{svc: svc}
}

// ObtenerDia godoc
// @Summary      Obtener el registro financiero de un día
// @Description  Retorna ingresos, gastos y totales del día junto con el balance global acumulado.
// @Tags         finanzas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Success      200 {object} dto.RegistroFinanzasResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/finanzas/{fecha} [get]
func (h *FinanzasHandler) ObtenerDia(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	resp, err := h.svc.ObtenerDia(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarIngreso godoc
// @Summary      Agregar un ingreso
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        fecha path string                true "Fecha YYYY-MM-DD"
// @Param        body  body dto.MovimientoRequest true "Monto y descripción"
// @Success      201 {object} dto.RegistroFinanzasResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/finanzas/{fecha}/ingresos [post]
func (h *FinanzasHandler) AgregarIngreso(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarIngreso(c.Request.Context(), fecha, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AgregarGasto godoc
// @Summary      Agregar un gasto
// @Tags         finanzas
// @Accept       json
// @Produce      json
// @Param        fecha path string                true "Fecha YYYY-MM-DD"
// @Param        body  body dto.MovimientoRequest true "Monto y descripción"
// @Success      201 {object} dto.RegistroFinanzasResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/finanzas/{fecha}/gastos [post]
func (h *FinanzasHandler) AgregarGasto(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarGasto(c.Request.Context(), fecha, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// TotalesGlobales godoc
// @Summary      Totales globales
// @Description  Suma ingresos y gastos de todos los días registrados.
// @Tags         finanzas
// @Produce      json
// @Success      200 {object} dto.TotalesResponse
// @Router       /v1/finanzas/totales [get]
func (h *FinanzasHandler) TotalesGlobales(c *gin.Context) {
	resp, err := h.svc.TotalesGlobales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
