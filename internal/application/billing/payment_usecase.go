package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// PaymentUseCase casos de uso de pagos. El registro de un pago y el saldado de
// su factura ocurren en una única transacción: cuando los pagos acumulados
// alcanzan el monto, la factura pasa a PAGADA automáticamente.
// Eliminar o editar un pago nunca "despaga" una factura: PAGADA es terminal y
// revertirla exige intervención administrativa directa.
type PaymentUseCase struct {
	tx          TxRunner
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
	receiptRepo repository.ReceiptRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(tx TxRunner, paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository, receiptRepo repository.ReceiptRepository) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, paymentRepo: paymentRepo, invoiceRepo: invoiceRepo, receiptRepo: receiptRepo}
}

// Create registra un pago contra una factura.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.InvoiceID == "" || in.ClientID == "" || in.PaidAt == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	paidAt, err := dto.ParseDate(in.PaidAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var receiptID *string
	if in.ReceiptID != "" {
		receipt, err := uc.receiptRepo.GetByID(in.ReceiptID)
		if err != nil {
			return nil, err
		}
		if receipt == nil {
			return nil, domain.ErrNotFound
		}
		receiptID = &in.ReceiptID
	}

	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: in.InvoiceID,
		ClientID:  in.ClientID,
		PaidAt:    paidAt,
		Amount:    in.Amount,
		Method:    in.Method,
		Reference: in.Reference,
		ReceiptID: receiptID,
		CreatedAt: time.Now(),
	}

	settled := false
	err = uc.tx.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		invoice, err := invoiceRepo.GetByID(in.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if invoice.ClientID != in.ClientID {
			return domain.ErrConflict
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		total, err := paymentRepo.TotalForInvoice(in.InvoiceID)
		if err != nil {
			return err
		}
		if invoice.Status != entity.InvoiceStatusPagada && domainbilling.Settles(total, invoice.Amount) {
			if err := domainbilling.ValidateInvoiceTransition(invoice.Status, entity.InvoiceStatusPagada); err != nil {
				return err
			}
			if err := invoiceRepo.UpdateStatus(invoice.ID, entity.InvoiceStatusPagada); err != nil {
				return err
			}
			settled = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toPaymentResponse(payment)
	resp.InvoiceSettled = settled
	return resp, nil
}

// GetByID obtiene un pago con datos del cliente y del comprobante adjunto.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(payment), nil
}

// List lista todos los pagos (fecha de pago DESC, id DESC).
func (uc *PaymentUseCase) List() ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListByClient lista los pagos de un cliente.
func (uc *PaymentUseCase) ListByClient(clientID string) ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListByInvoice lista los pagos de una factura.
func (uc *PaymentUseCase) ListByInvoice(invoiceID string) ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// Update corrige los datos de un pago (fecha, monto, método, referencia,
// comprobante). No recalcula el estado de la factura: la corrección contable
// del estado es una decisión del operador vía PATCH /facturas/:id/estado.
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.PaidAt == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	paidAt, err := dto.ParseDate(in.PaidAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	var receiptID *string
	if in.ReceiptID != "" {
		receipt, err := uc.receiptRepo.GetByID(in.ReceiptID)
		if err != nil {
			return nil, err
		}
		if receipt == nil {
			return nil, domain.ErrNotFound
		}
		receiptID = &in.ReceiptID
	}
	payment.PaidAt = paidAt
	payment.Amount = in.Amount
	payment.Method = in.Method
	payment.Reference = in.Reference
	payment.ReceiptID = receiptID
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un pago. La factura conserva su estado actual.
func (uc *PaymentUseCase) Delete(id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.paymentRepo.Delete(id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		ClientID:    p.ClientID,
		ClientDNI:   p.ClientDNI,
		ClientName:  p.ClientName,
		PaidAt:      dto.FormatDate(p.PaidAt),
		Amount:      p.Amount,
		Method:      p.Method,
		Reference:   p.Reference,
		ReceiptPath: p.ReceiptPath,
		ReceiptTipo: p.ReceiptTipo,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.ReceiptID != nil {
		resp.ReceiptID = *p.ReceiptID
	}
	return resp
}

func toPaymentResponses(payments []*entity.Payment) []*dto.PaymentResponse {
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}
