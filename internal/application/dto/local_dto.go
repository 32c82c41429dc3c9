package dto

// RegistrarLocalRequest petición para registrar un local (cliente/negocio).
type RegistrarLocalRequest struct {
	CIRif          string  `json:"ci_rif"`
	TipoLocal      string  `json:"tipo_local"`
	NombreLocal    string  `json:"nombre_local"`
	UbicacionTexto string  `json:"ubicacion_texto"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// LocalResponse local en respuestas de lectura.
type LocalResponse struct {
	ID             int64   `json:"id"`
	CIRif          string  `json:"ci_rif"`
	TipoLocal      string  `json:"tipo_local"`
	NombreLocal    string  `json:"nombre_local"`
	UbicacionTexto string  `json:"ubicacion_texto"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}
