// Package normalizar pliega tildes y mayúsculas para comparaciones de texto.
// El dominio es en español: "Bodega Técnica" debe encontrarse buscando "tecnica".
package normalizar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Plegar devuelve el texto en minúsculas y sin marcas diacríticas.
func Plegar(s string) string {
	out, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		// transform solo falla con transformadores destructivos; caemos al original
		out = s
	}
	return strings.ToLower(out)
}

// Contiene reporta si pajar contiene aguja ignorando tildes y mayúsculas.
func Contiene(pajar, aguja string) bool {
	if aguja == "" {
		return true
	}
	return strings.Contains(Plegar(pajar), Plegar(aguja))
}
