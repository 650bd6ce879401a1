package service

import (
	"fmt"
	"strings"
	"unicode"

	"ventadiaria/internal/model"
	"ventadiaria/internal/phone"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Header cells are matched against these synonym sets after lowercasing and
// diacritic stripping, so "Teléfono", "TELEFONO" and "telefono " all hit.
var (
	columnasNombre   = map[string]bool{"nombre": true, "nombres": true, "cliente": true, "contacto": true}
	columnasTelefono = map[string]bool{"telefono": true, "telefono1": true, "celular": true, "cel": true, "whatsapp": true, "numero": true, "phone": true}
)

// parseContactosCSV turns an uploaded delimited text file into directory
// entries. The delimiter is sniffed (";" anywhere in the file wins over ",").
// Rows are split by index: the source format carries no quoting, so
// encoding/csv's quote handling would change row semantics.
//
// A structural failure (no data rows, unrecognized header) aborts the whole
// import. Rows with a blank or undialable name/phone are skipped and reported
// as reasons, last row wins when one phone repeats.
func parseContactosCSV(texto string) ([]model.Contacto, []string, error) {
	separador := ","
	if strings.Contains(texto, ";") {
		separador = ";"
	}

	lineas := dividirLineas(strings.TrimSpace(texto))
	if len(lineas) < 2 {
		return nil, nil, ErrCSVSinDatos
	}

	idxNombre, idxTelefono := -1, -1
	for i, celda := range strings.Split(lineas[0], separador) {
		c := normalizarCelda(celda)
		if idxNombre == -1 && columnasNombre[c] {
			idxNombre = i
		}
		if idxTelefono == -1 && columnasTelefono[c] {
			idxTelefono = i
		}
	}
	switch {
	case idxNombre == -1 && idxTelefono == -1:
		return nil, nil, fmt.Errorf("%w: nombre y teléfono", ErrColumnasFaltantes)
	case idxNombre == -1:
		return nil, nil, fmt.Errorf("%w: nombre", ErrColumnasFaltantes)
	case idxTelefono == -1:
		return nil, nil, fmt.Errorf("%w: teléfono", ErrColumnasFaltantes)
	}

	var (
		contactos []model.Contacto
		errores   []string
		porTel    = map[string]int{}
	)
	for i, linea := range lineas[1:] {
		if strings.TrimSpace(linea) == "" {
			continue
		}
		cols := strings.Split(linea, separador)

		nombre := strings.TrimSpace(celdaEn(cols, idxNombre))
		telRaw := strings.TrimSpace(celdaEn(cols, idxTelefono))
		if nombre == "" || telRaw == "" {
			errores = append(errores, fmt.Sprintf("fila %d: nombre o teléfono vacío", i+2))
			continue
		}

		tel := phone.Normalize(telRaw)
		if tel == "" {
			// No digits at all, cannot serve as the directory key.
			errores = append(errores, fmt.Sprintf("fila %d: teléfono sin dígitos", i+2))
			continue
		}

		// Last row wins per canonical phone, position of the first kept.
		if j, ok := porTel[tel]; ok {
			contactos[j].Nombre = nombre
			continue
		}
		porTel[tel] = len(contactos)
		contactos = append(contactos, model.Contacto{Nombre: nombre, Telefono: tel})
	}

	return contactos, errores, nil
}

// dividirLineas splits on \n, \r\n or lone \r.
func dividirLineas(texto string) []string {
	texto = strings.ReplaceAll(texto, "\r\n", "\n")
	texto = strings.ReplaceAll(texto, "\r", "\n")
	return strings.Split(texto, "\n")
}

func celdaEn(cols []string, idx int) string {
	if idx >= len(cols) {
		return ""
	}
	return cols[idx]
}

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizarCelda(celda string) string {
	limpia, _, err := transform.String(quitarDiacriticos, strings.ToLower(strings.TrimSpace(celda)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(celda))
	}
	return limpia
}
