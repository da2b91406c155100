package billing

import (
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

// Tablas de transición de estados. El esquema legado permitía sobreescribir
// cualquier estado con cualquier otro; aquí cada cambio pasa por estas tablas.
// Repetir el estado actual es un no-op válido (idempotencia para el panel).
// Los estados terminales (PAGADA, CANCELADO, BAJA) no admiten más transiciones.

var invoiceTransitions = map[string][]string{
	entity.InvoiceStatusPendiente: {entity.InvoiceStatusPagada, entity.InvoiceStatusVencida},
	entity.InvoiceStatusVencida:   {entity.InvoiceStatusPagada},
	entity.InvoiceStatusPagada:    {},
}

var contractTransitions = map[string][]string{
	entity.ContractStatusPendiente:  {entity.ContractStatusActivo, entity.ContractStatusCancelado},
	entity.ContractStatusActivo:     {entity.ContractStatusSuspendido, entity.ContractStatusCancelado},
	entity.ContractStatusSuspendido: {entity.ContractStatusActivo, entity.ContractStatusCancelado},
	entity.ContractStatusCancelado:  {},
}

var clientTransitions = map[string][]string{
	entity.ClientStatusProspecto:  {entity.ClientStatusActivo, entity.ClientStatusBaja},
	entity.ClientStatusActivo:     {entity.ClientStatusSuspendido, entity.ClientStatusBaja},
	entity.ClientStatusSuspendido: {entity.ClientStatusActivo, entity.ClientStatusBaja},
	entity.ClientStatusBaja:       {},
}

// ValidateInvoiceTransition valida un cambio de estado de factura.
func ValidateInvoiceTransition(from, to string) error {
	return validate(invoiceTransitions, from, to)
}

// ValidateContractTransition valida un cambio de estado de contrato.
func ValidateContractTransition(from, to string) error {
	return validate(contractTransitions, from, to)
}

// ValidateClientTransition valida un cambio de estado de cliente.
func ValidateClientTransition(from, to string) error {
	return validate(clientTransitions, from, to)
}

func validate(table map[string][]string, from, to string) error {
	allowed, ok := table[from]
	if !ok {
		return domain.ErrInvalidInput // estado origen desconocido
	}
	if from == to {
		return nil
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	if _, known := table[to]; !known {
		return domain.ErrInvalidInput // estado destino desconocido
	}
	return domain.ErrInvalidTransition
}
