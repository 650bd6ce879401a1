package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"trunk cero de 10 digitos", "0961079919", "593961079919"},
		{"nueve digitos sin prefijo", "961079919", "593961079919"},
		{"ya canonico", "593961079919", "593961079919"},
		{"con prefijo internacional", "+593961079919", "593961079919"},
		{"con espacios y guiones", "096-107 99 19", "593961079919"},
		{"vacio", "", ""},
		{"solo basura", "abc - ()", ""},
		{"forma no reconocida pasa igual", "12345", "12345"},
		{"trunk cero pero 11 digitos", "09610799190", "09610799190"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw))
		})
	}
}

// Every branch of Normalize must be a fixed point on re-application.
func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"0961079919", "961079919", "593961079919", "+593 96 107 9919",
		"", "12345", "tel: 0961079919", "09610799190",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "raw=%q", raw)
	}
}
