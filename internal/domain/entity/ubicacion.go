package entity

// Ubicacion representa un lugar físico donde viven activos.
// ParentUbicacionID arma un árbol (sede > piso > sala); nil en la raíz.
type Ubicacion struct {
	ID                string
	Nombre            string // único
	Descripcion       string
	ParentUbicacionID *string
}
