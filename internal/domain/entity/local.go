package entity

// Local representa un cliente/negocio registrado en la ruta del vendedor,
// con su ubicación GPS. Inmutable después del registro (salvo eliminación).
type Local struct {
	ID             int64
	CIRif          string // cédula o RIF, único
	TipoLocal      string
	NombreLocal    string
	UbicacionTexto string
	Lat            float64
	Lon            float64
}
