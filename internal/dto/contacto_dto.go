package dto

// GuardarContactoRequest upserts a directory entry manually.
type GuardarContactoRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
}

type ContactoResponse struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// CSVImportResponse reports one import run. Rows with a blank name or phone
// are skipped, counted and listed as reasons; they never abort the batch.
type CSVImportResponse struct {
	Importados []ContactoResponse `json:"importados"`
	Omitidas   int                `json:"omitidas"`
	Errores    []string           `json:"errores"`
}
