package dto

// ReceiptResponse comprobante de pago en respuestas.
type ReceiptResponse struct {
	ID           string `json:"id"`
	FilePath     string `json:"archivo_ruta"`
	OriginalName string `json:"archivo_nombre,omitempty"`
	Tipo         string `json:"tipo,omitempty"`
	CreatedAt    string `json:"creado_en"`
}
