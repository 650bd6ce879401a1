package infra

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const plantillaSaludo = "Hola %s, 👋\n\nTe confirmo tu pedido de %d %s para el día %s.\n\n¡Gracias por tu compra! 🙌"

// WhatsAppLink builds a wa.me deep link with a pre-filled greeting for one
// order. tel must already be in canonical digit form; fecha is ISO (YYYY-MM-DD)
// and is shown as DD/MM/YYYY in the message.
func WhatsAppLink(tel, nombre string, cantidad int, producto, fecha string) string {
	mensaje := fmt.Sprintf(plantillaSaludo, nombre, cantidad, producto, formatearFecha(fecha))

	// QueryEscape encodes spaces as "+", which WhatsApp renders literally.
	codificado := strings.ReplaceAll(url.QueryEscape(mensaje), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", tel, codificado)
}

func formatearFecha(fecha string) string {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return fecha
	}
	return t.Format("02/01/2006")
}
