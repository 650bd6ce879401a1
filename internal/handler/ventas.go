package handler

import (
	"net/http"

	"ventadiaria/internal/apierror"
	"ventadiaria/internal/dto"
	"ventadiaria/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// ObtenerDia godoc
// @Summary      Obtener el registro de ventas de un día
// @Description  Retorna cabecera, pedidos y resumen del día. Días sin registro retornan un documento vacío con valores por defecto.
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Success      200 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha} [get]
func (h *VentasHandler) ObtenerDia(c *gin.Context) {
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

// GuardarCabecera godoc
// @Summary      Guardar la cabecera del día
// @Description  Merge de inversión, costo unitario, stock y producto del día. La lista de pedidos no se toca.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        fecha path string              true "Fecha YYYY-MM-DD"
// @Param        body  body dto.CabeceraRequest true "Cabecera del día"
// @Success      200 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha} [put]
func (h *VentasHandler) GuardarCabecera(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.CabeceraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarCabecera(c.Request.Context(), fecha, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarCliente godoc
// @Summary      Agregar un pedido
// @Description  Valida en orden fijo (nombre, cantidad, costo unitario del día, teléfono) y agrega el pedido al final de la lista.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        fecha path string                    true "Fecha YYYY-MM-DD"
// @Param        body  body dto.GuardarClienteRequest true "Datos del pedido"
// @Success      201 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes [post]
func (h *VentasHandler) AgregarCliente(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.GuardarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarCliente(c.Request.Context(), fecha, "", req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EditarCliente godoc
// @Summary      Editar un pedido
// @Description  Reemplaza el pedido en su posición conservando id y estado de entrega. Un id desconocido agrega el pedido como nuevo.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        fecha path string                    true "Fecha YYYY-MM-DD"
// @Param        id    path string                    true "ID del pedido"
// @Param        body  body dto.GuardarClienteRequest true "Datos del pedido"
// @Success      200 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes/{id} [put]
func (h *VentasHandler) EditarCliente(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.GuardarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarCliente(c.Request.Context(), fecha, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleEntrega godoc
// @Summary      Alternar entrega de un pedido
// @Description  Invierte el estado de entrega. Un id desconocido no modifica nada y retorna el registro tal cual.
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Param        id    path string true "ID del pedido"
// @Success      200 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes/{id}/entrega [patch]
func (h *VentasHandler) ToggleEntrega(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	resp, err := h.svc.ToggleEntrega(c.Request.Context(), fecha, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarCliente godoc
// @Summary      Eliminar un pedido
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Param        id    path string true "ID del pedido"
// @Success      200 {object} dto.RegistroVentaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes/{id} [delete]
func (h *VentasHandler) EliminarCliente(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	resp, err := h.svc.EliminarCliente(c.Request.Context(), fecha, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarClientes godoc
// @Summary      Listar pedidos del día
// @Description  Filtra por estado de entrega conservando el orden de inserción.
// @Tags         ventas
// @Produce      json
// @Param        fecha  path  string true  "Fecha YYYY-MM-DD"
// @Param        filtro query string false "todos | entregados | pendientes"
// @Success      200 {array} dto.ClienteResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes [get]
func (h *VentasHandler) ListarClientes(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var filtro dto.FiltroEntrega
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro invalido: use todos, entregados o pendientes"))
		return
	}
	resp, err := h.svc.ListarClientes(c.Request.Context(), fecha, filtro.Filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen del día
// @Description  Conciliación stock vs vendido: unidades, total vendido, ganancia y conteos de entrega. El restante es con signo.
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Success      200 {object} dto.ResumenResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/resumen [get]
func (h *VentasHandler) Resumen(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LinkWhatsApp godoc
// @Summary      Link de confirmación por WhatsApp
// @Description  Compone el deep link wa.me con el saludo pre-llenado para un pedido.
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Param        id    path string true "ID del pedido"
// @Success      200 {object} dto.WhatsAppLinkResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/clientes/{id}/whatsapp [get]
func (h *VentasHandler) LinkWhatsApp(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	resp, err := h.svc.LinkWhatsApp(c.Request.Context(), fecha, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerarReporte godoc
// @Summary      Generar el reporte PDF del día
// @Tags         ventas
// @Produce      json
// @Param        fecha path string true "Fecha YYYY-MM-DD"
// @Success      201 {object} map[string]string
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/reporte [post]
func (h *VentasHandler) GenerarReporte(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	path, err := h.svc.GenerarReporte(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}

// EnviarReporte godoc
// @Summary      Enviar el reporte PDF del día por email
// @Description  Encola generación y envío asíncronos; responde 202 de inmediato.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        fecha path string                  true "Fecha YYYY-MM-DD"
// @Param        body  body dto.ReporteEmailRequest true "Destinatario"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas/{fecha}/reporte/email [post]
func (h *VentasHandler) EnviarReporte(c *gin.Context) {
	fecha := fechaParam(c)
	if fecha == "" {
		return
	}
	var req dto.ReporteEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarReportePorEmail(c.Request.Context(), fecha, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
