package service

import "errors"

// Client-entry validation errors. Checked in a fixed order (nombre, cantidad,
// costo unitario, telefono): the first failure is returned and the record is
// left untouched. All are recoverable, the caller corrects the field and
// resubmits.
var (
	ErrNombreInvalido        = errors.New("Ingrese un nombre válido")
	ErrCantidadInvalida      = errors.New("Ingrese una cantidad válida")
	ErrCostoUnitarioFaltante = errors.New("Debe ingresar el costo unitario")
	ErrTelefonoInvalido      = errors.New("Ingrese un número válido")
)

// CSV structural errors. Either one aborts the whole import with no partial
// writes; row-level defects are skipped and counted instead.
var (
	ErrCSVSinDatos       = errors.New("El CSV no tiene datos suficientes")
	ErrColumnasFaltantes = errors.New("No se encontraron columnas adecuadas")
)

// ErrClienteNoEncontrado is returned by lookups that need an existing order
// (the WhatsApp link composer). Toggle and delete treat an unknown id as a
// no-op instead.
var ErrClienteNoEncontrado = errors.New("Cliente no encontrado")
