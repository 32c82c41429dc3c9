package clientes

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// plegador descompone, elimina marcas diacríticas y recompone: "Bodegón" → "Bodegon".
var plegador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// plegar normaliza un texto para comparación: sin acentos y en minúsculas.
func plegar(s string) string {
	out, _, err := transform.String(plegador, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
