package entity

import "time"

// Estados del ciclo de vida de un cliente.
// PROSPECTO es el estado inicial de toda solicitud recibida desde el portal público.
const (
	ClientStatusProspecto  = "PROSPECTO"
	ClientStatusActivo     = "ACTIVO"
	ClientStatusSuspendido = "SUSPENDIDO"
	ClientStatusBaja       = "BAJA" // terminal
)

// Client representa un abonado (o prospecto) del servicio de internet.
type Client struct {
	ID        string
	DNI       string // documento de identidad, único
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	Status    string // PROSPECTO | ACTIVO | SUSPENDIDO | BAJA
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName devuelve "nombres apellidos" tal como lo muestran los listados del panel.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
