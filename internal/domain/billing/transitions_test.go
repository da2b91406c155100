package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

func TestValidateInvoiceTransition(t *testing.T) {
	// Permitidas
	assert.NoError(t, billing.ValidateInvoiceTransition(entity.InvoiceStatusPendiente, entity.InvoiceStatusPagada))
	assert.NoError(t, billing.ValidateInvoiceTransition(entity.InvoiceStatusPendiente, entity.InvoiceStatusVencida))
	assert.NoError(t, billing.ValidateInvoiceTransition(entity.InvoiceStatusVencida, entity.InvoiceStatusPagada))

	// Repetir el estado actual es no-op, incluso en estado terminal (PAGADA → PAGADA).
	assert.NoError(t, billing.ValidateInvoiceTransition(entity.InvoiceStatusPagada, entity.InvoiceStatusPagada))

	// PAGADA es terminal: no se puede "despagar".
	err := billing.ValidateInvoiceTransition(entity.InvoiceStatusPagada, entity.InvoiceStatusPendiente)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// VENCIDA no vuelve a PENDIENTE.
	err = billing.ValidateInvoiceTransition(entity.InvoiceStatusVencida, entity.InvoiceStatusPendiente)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Estados desconocidos se rechazan como entrada inválida, no como transición.
	assert.ErrorIs(t, billing.ValidateInvoiceTransition("PENDIENTE", "ANULADA"), domain.ErrInvalidInput)
	assert.ErrorIs(t, billing.ValidateInvoiceTransition("XX", "PAGADA"), domain.ErrInvalidInput)
}

func TestValidateContractTransition(t *testing.T) {
	assert.NoError(t, billing.ValidateContractTransition(entity.ContractStatusPendiente, entity.ContractStatusActivo))
	assert.NoError(t, billing.ValidateContractTransition(entity.ContractStatusActivo, entity.ContractStatusSuspendido))
	assert.NoError(t, billing.ValidateContractTransition(entity.ContractStatusSuspendido, entity.ContractStatusActivo))
	assert.NoError(t, billing.ValidateContractTransition(entity.ContractStatusSuspendido, entity.ContractStatusCancelado))

	// PENDIENTE no puede suspenderse sin activarse primero.
	assert.ErrorIs(t,
		billing.ValidateContractTransition(entity.ContractStatusPendiente, entity.ContractStatusSuspendido),
		domain.ErrInvalidTransition)

	// CANCELADO es terminal.
	assert.ErrorIs(t,
		billing.ValidateContractTransition(entity.ContractStatusCancelado, entity.ContractStatusActivo),
		domain.ErrInvalidTransition)
}

func TestValidateClientTransition(t *testing.T) {
	assert.NoError(t, billing.ValidateClientTransition(entity.ClientStatusProspecto, entity.ClientStatusActivo))
	assert.NoError(t, billing.ValidateClientTransition(entity.ClientStatusActivo, entity.ClientStatusSuspendido))
	assert.NoError(t, billing.ValidateClientTransition(entity.ClientStatusSuspendido, entity.ClientStatusActivo))
	assert.NoError(t, billing.ValidateClientTransition(entity.ClientStatusActivo, entity.ClientStatusBaja))

	// Un prospecto no puede suspenderse: primero se activa.
	assert.ErrorIs(t,
		billing.ValidateClientTransition(entity.ClientStatusProspecto, entity.ClientStatusSuspendido),
		domain.ErrInvalidTransition)

	// BAJA es terminal.
	assert.ErrorIs(t,
		billing.ValidateClientTransition(entity.ClientStatusBaja, entity.ClientStatusActivo),
		domain.ErrInvalidTransition)
}
