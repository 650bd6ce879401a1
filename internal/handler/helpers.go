package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"ventadiaria/internal/apierror"
	"ventadiaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// fechaParam validates the :fecha path segment as an ISO calendar date.
// Returns "" after writing the error response when the date is malformed.
func fechaParam(c *gin.Context) string {
	fecha := c.Param("fecha")
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha invalida, use YYYY-MM-DD"))
		return ""
	}
	return fecha
}

// respondError maps service errors onto HTTP statuses. Validation sentinels
// are the caller's fault; anything unexpected is pushed to the error handler
// middleware as a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNombreInvalido),
		errors.Is(err, service.ErrCantidadInvalida),
		errors.Is(err, service.ErrCostoUnitarioFaltante),
		errors.Is(err, service.ErrTelefonoInvalido),
		errors.Is(err, service.ErrCSVSinDatos),
		errors.Is(err, service.ErrColumnasFaltantes):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrClienteNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	default:
		c.Error(err)
	}
}
