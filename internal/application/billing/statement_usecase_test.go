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
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }

func (r *fakeClientRepo) GetByDNI(dni string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

// fakeBillingRepo deriva deuda y totales de los repos fake, con la misma
// semántica que los agregados SQL reales.
type fakeBillingRepo struct {
	invoiceRepo *fakeInvoiceRepo
	paymentRepo *fakePaymentRepo
}

func (r *fakeBillingRepo) Debt(ctx context.Context, clientID string) (decimal.Decimal, error) {
	invoices, _ := r.invoiceRepo.ListByClient(clientID)
	return domainbilling.DebtOf(invoices), nil
}

func (r *fakeBillingRepo) DebtByClient(ctx context.Context) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, i := range r.invoiceRepo.invoices {
		if i.Status != entity.InvoiceStatusPagada {
			out[i.ClientID] = out[i.ClientID].Add(i.Amount)
		}
	}
	return out, nil
}

func (r *fakeBillingRepo) Totals(ctx context.Context, clientID string) (*repository.ClientTotals, error) {
	t := &repository.ClientTotals{Invoiced: decimal.Zero, Paid: decimal.Zero}
	for _, i := range r.invoiceRepo.invoices {
		if i.ClientID == clientID {
			t.Invoiced = t.Invoiced.Add(i.Amount)
		}
	}
	for _, p := range r.paymentRepo.payments {
		if p.ClientID == clientID {
			t.Paid = t.Paid.Add(p.Amount)
		}
	}
	return t, nil
}

type statementFixture struct {
	*billingFixture
	clientRepo *fakeClientRepo
	statement  *appbilling.StatementUseCase
}

func newStatementFixture() *statementFixture {
	bf := newBillingFixture()
	clientRepo := newFakeClientRepo()
	billingRepo := &fakeBillingRepo{invoiceRepo: bf.invoiceRepo, paymentRepo: bf.paymentRepo}
	return &statementFixture{
		billingFixture: bf,
		clientRepo:     clientRepo,
		statement:      appbilling.NewStatementUseCase(clientRepo, billingRepo, bf.invoiceRepo, bf.paymentRepo),
	}
}

func (f *statementFixture) seedClient(id, dni string) {
	_ = f.clientRepo.Create(&entity.Client{
		ID: id, DNI: dni, FirstName: "Ana", LastName: "Quispe", Status: entity.ClientStatusActivo,
	})
}

// Flujo completo: facturar genera deuda y estado DEUDOR; pagar el total salda
// la factura y el cliente vuelve a AL_DIA.
func TestSummary_FacturarYPagarCicloCompleto(t *testing.T) {
	f := newStatementFixture()
	f.seedClient("c1", "44556677")
	f.seedInvoice("f1", "c1", "120", entity.InvoiceStatusPendiente)

	sum, err := f.statement.Summary(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, sum.Debt.Equal(dec("120")))
	assert.Equal(t, domainbilling.StatusDeudor, sum.EstadoFacturacion)

	_, err = f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-05", Amount: dec("120"),
	})
	require.NoError(t, err)

	sum, err = f.statement.Summary(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, sum.Debt.IsZero(), "factura saldada no cuenta como deuda")
	assert.Equal(t, domainbilling.StatusAlDia, sum.EstadoFacturacion)
	assert.True(t, sum.Balance.IsZero())
}

// Pago parcial: baja el saldo pero la deuda conserva el monto completo de la
// factura no saldada. La deuda manda para el estado.
func TestSummary_PagoParcialDeudaCompleta(t *testing.T) {
	f := newStatementFixture()
	f.seedClient("c1", "44556677")
	f.seedInvoice("f1", "c1", "100", entity.InvoiceStatusPendiente)

	_, err := f.uc.Create(context.Background(), dto.CreatePaymentRequest{
		InvoiceID: "f1", ClientID: "c1", PaidAt: "2025-03-05", Amount: dec("30"),
	})
	require.NoError(t, err)

	sum, err := f.statement.Summary(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, sum.Debt.Equal(dec("100")))
	assert.True(t, sum.Balance.Equal(dec("70")))
	assert.Equal(t, domainbilling.StatusDeudor, sum.EstadoFacturacion)
}

// Cliente sin facturas: todo en cero y AL_DIA.
func TestSummary_ClienteSinFacturas(t *testing.T) {
	f := newStatementFixture()
	f.seedClient("c1", "44556677")

	sum, err := f.statement.Summary(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, sum.Debt.IsZero())
	assert.Equal(t, domainbilling.StatusAlDia, sum.EstadoFacturacion)
}

func TestSummary_ClienteInexistente(t *testing.T) {
	f := newStatementFixture()
	_, err := f.statement.Summary(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Autoconsulta pública por DNI: devuelve el cliente con su estado derivado
// junto a sus facturas y pagos.
func TestPortalByDNI(t *testing.T) {
	f := newStatementFixture()
	f.seedClient("c1", "44556677")
	f.seedInvoice("f1", "c1", "80", entity.InvoiceStatusVencida)

	resp, err := f.statement.PortalByDNI(context.Background(), "44556677")
	require.NoError(t, err)
	assert.Equal(t, "c1", resp.Client.ID)
	assert.Equal(t, domainbilling.StatusDeudor, resp.Client.EstadoFacturacion)
	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, entity.InvoiceStatusVencida, resp.Invoices[0].Status)

	_, err = f.statement.PortalByDNI(context.Background(), "00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
