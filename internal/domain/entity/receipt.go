package entity

import "time"

// Tipos de comprobante de pago aceptados.
const (
	ReceiptTipoYape          = "YAPE"
	ReceiptTipoDeposito      = "DEPOSITO"
	ReceiptTipoTransferencia = "TRANSFERENCIA"
)

// Receipt representa los metadatos de un comprobante de pago subido
// (imagen o PDF). El archivo físico vive fuera de la base de datos.
type Receipt struct {
	ID           string
	FilePath     string // ruta pública del archivo, ej. /uploads/comprobantes/...
	OriginalName string
	Tipo         string // YAPE | DEPOSITO | TRANSFERENCIA
	CreatedAt    time.Time
}
