package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jvaldiviae/cyberlink-api/internal/application/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (rollback = restaurar snapshot)
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(i *entity.Invoice) error {
	cp := *i
	r.invoices[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	i, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) { return r.all(), nil }

func (r *fakeInvoiceRepo) ListByClient(clientID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.all() {
		if i.ClientID == clientID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByContract(contractID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.all() {
		if i.ContractID == contractID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(i *entity.Invoice) error {
	cp := *i
	r.invoices[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	i, ok := r.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Status = status
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) all() []*entity.Invoice {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		cp := *i
		out = append(out, &cp)
	}
	return out
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) List() ([]*entity.Payment, error) { return r.filter(func(*entity.Payment) bool { return true }), nil }

func (r *fakePaymentRepo) ListByClient(clientID string) ([]*entity.Payment, error) {
	return r.filter(func(p *entity.Payment) bool { return p.ClientID == clientID }), nil
}

func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	return r.filter(func(p *entity.Payment) bool { return p.InvoiceID == invoiceID }), nil
}

func (r *fakePaymentRepo) TotalForInvoice(invoiceID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) Update(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) filter(keep func(*entity.Payment) bool) []*entity.Payment {
	var out []*entity.Payment
	for _, p := range r.payments {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

type fakeReceiptRepo struct {
	receipts map[string]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: map[string]*entity.Receipt{}}
}

func (r *fakeReceiptRepo) Create(rc *entity.Receipt) error {
	r.receipts[rc.ID] = rc
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) { return r.receipts[id], nil }

func (r *fakeReceiptRepo) List() ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, rc := range r.receipts {
		out = append(out, rc)
	}
	return out, nil
}

func (r *fakeReceiptRepo) Delete(id string) error {
	delete(r.receipts, id)
	return nil
}

// fakeTxRunner ejecuta el callback sobre los repos compartidos y, si falla,
// restaura el estado previo (simula el rollback de la transacción real).
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	paymentRepo *fakePaymentRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.InvoiceRepository, repository.PaymentRepository) error) error {
	invSnap := map[string]*entity.Invoice{}
	for k, v := range t.invoiceRepo.invoices {
		cp := *v
		invSnap[k] = &cp
	}
	paySnap := map[string]*entity.Payment{}
	for k, v := range t.paymentRepo.payments {
		cp := *v
		paySnap[k] = &cp
	}
	if err := fn(t.invoiceRepo, t.paymentRepo); err != nil {
		t.invoiceRepo.invoices = invSnap
		t.paymentRepo.payments = paySnap
		return err
	}
	return nil
}

type billingFixture struct {
	invoiceRepo *fakeInvoiceRepo
	paymentRepo *fakePaymentRepo
	receiptRepo *fakeReceiptRepo
	uc          *appbilling.PaymentUseCase
}

func newBillingFixture() *billingFixture {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	receiptRepo := newFakeReceiptRepo()
	tx := &fakeTxRunner{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	return &billingFixture{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		uc:          appbilling.NewPaymentUseCase(tx, paymentRepo, invoiceRepo, receiptRepo),
	}
}

func (f *billingFixture) seedInvoice(id, clientID, amount, status string) {
	_ = f.invoiceRepo.Create(&entity.Invoice{
		ID:       id,
		ClientID: clientID,
		Amount:   dec(amount),
		Status:   status,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de saldado automático (política elegida: el pago que completa el monto
// deja la factura en PAGADA dentro de la misma transacción)
// ──────────────────────────────────────────────────────────────────────────────

// Pago por el monto exacto: la factura queda PAGADA y el response lo indica.
func TestCreatePayment_PagoExactoSaldaFactura(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "50", entity.InvoiceStatusPendiente)

	resp, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("50"),
	})
	require.NoError(t, err)
	assert.True(t, resp.InvoiceSettled, "el pago completo debe saldar la factura")

	inv, _ := f.invoiceRepo.GetByID("f1")
	assert.Equal(t, entity.InvoiceStatusPagada, inv.Status)
}

// Pago parcial: se registra pero la factura sigue PENDIENTE.
func TestCreatePayment_PagoParcialNoSalda(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "100", entity.InvoiceStatusPendiente)

	resp, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("40"),
	})
	require.NoError(t, err)
	assert.False(t, resp.InvoiceSettled)

	inv, _ := f.invoiceRepo.GetByID("f1")
	assert.Equal(t, entity.InvoiceStatusPendiente, inv.Status)
}

// El segundo pago parcial completa el monto acumulado y salda.
func TestCreatePayment_AcumuladoSalda(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "100", entity.InvoiceStatusPendiente)

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("40"),
	})
	require.NoError(t, err)

	resp, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-15", Amount: dec("60"),
	})
	require.NoError(t, err)
	assert.True(t, resp.InvoiceSettled)

	inv, _ := f.invoiceRepo.GetByID("f1")
	assert.Equal(t, entity.InvoiceStatusPagada, inv.Status)
}

// Una factura VENCIDA también puede saldarse con un pago.
func TestCreatePayment_SaldaFacturaVencida(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "80", entity.InvoiceStatusVencida)

	resp, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-04-01", Amount: dec("80"),
	})
	require.NoError(t, err)
	assert.True(t, resp.InvoiceSettled)

	inv, _ := f.invoiceRepo.GetByID("f1")
	assert.Equal(t, entity.InvoiceStatusPagada, inv.Status)
}

// Factura inexistente: el pago no queda persistido (rollback).
func TestCreatePayment_FacturaInexistente(t *testing.T) {
	f := newBillingFixture()

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "no-existe", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("50"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.paymentRepo.payments, "el rollback no debe dejar el pago")
}

// El cliente del pago debe coincidir con el de la factura (denormalización coherente).
func TestCreatePayment_ClienteNoCoincide(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "50", entity.InvoiceStatusPendiente)

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c2", PaidAt: "2025-03-01", Amount: dec("50"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, f.paymentRepo.payments)
}

// Montos cero o negativos se rechazan antes de tocar la DB.
func TestCreatePayment_MontoInvalido(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "50", entity.InvoiceStatusPendiente)

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("-10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// Comprobante adjunto inexistente → not found, sin pago registrado.
func TestCreatePayment_ComprobanteInexistente(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "50", entity.InvoiceStatusPendiente)

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("50"),
		ReceiptID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.paymentRepo.payments)
}

// Eliminar un pago no "despaga" la factura: PAGADA se mantiene.
func TestDeletePayment_NoDespagaFactura(t *testing.T) {
	f := newBillingFixture()
	f.seedInvoice("f1", "c1", "50", entity.InvoiceStatusPendiente)

	resp, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-01", Amount: dec("50"),
	})
	require.NoError(t, err)
	require.True(t, resp.InvoiceSettled)

	require.NoError(t, f.uc.Delete(resp.ID))

	inv, _ := f.invoiceRepo.GetByID("f1")
	assert.Equal(t, entity.InvoiceStatusPagada, inv.Status)
}
