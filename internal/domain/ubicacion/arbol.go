// Package ubicacion contiene la lógica pura del árbol de ubicaciones
// (puntero al padre). La base de datos no impone la ausencia de ciclos,
// así que se verifica aquí antes de cada create/reparent.
package ubicacion

// CreaCiclo reporta si colgar nodo debajo de nuevoPadre formaría un ciclo.
// padres mapea id -> id del padre ("" o ausente = raíz). Un nodo tampoco
// puede ser su propio padre.
func CreaCiclo(padres map[string]string, nodo, nuevoPadre string) bool {
	if nuevoPadre == "" {
		return false
	}
	if nodo == nuevoPadre {
		return true
	}
	// Subir por la cadena de padres desde nuevoPadre; si aparece nodo, hay ciclo.
	// visitados corta cadenas ya corruptas en datos existentes.
	visitados := map[string]bool{}
	for actual := nuevoPadre; actual != ""; actual = padres[actual] {
		if actual == nodo {
			return true
		}
		if visitados[actual] {
			return false
		}
		visitados[actual] = true
	}
	return false
}

// RutaHastaRaiz devuelve los ids desde nodo hasta la raíz, inclusive.
// Se detiene si encuentra un ciclo en datos corruptos.
func RutaHastaRaiz(padres map[string]string, nodo string) []string {
	var ruta []string
	visitados := map[string]bool{}
	for actual := nodo; actual != "" && !visitados[actual]; actual = padres[actual] {
		visitados[actual] = true
		ruta = append(ruta, actual)
	}
	return ruta
}
