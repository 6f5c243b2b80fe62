package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/internal/application/analytics"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// stubDashboardRepo agregados fijos para las tarjetas.
type stubDashboardRepo struct {
	invoices  int64
	customers int64
	paid      int64
	pending   int64

	countErr error
}

func (s *stubDashboardRepo) CountInvoices(_ context.Context) (int64, error) {
	return s.invoices, s.countErr
}

func (s *stubDashboardRepo) CountCustomers(_ context.Context) (int64, error) {
	return s.customers, nil
}

func (s *stubDashboardRepo) SumInvoiceAmountByStatus(_ context.Context, status string) (int64, error) {
	if status == entity.StatusPaid {
		return s.paid, nil
	}
	return s.pending, nil
}

// stubLatestRepo implementa solo lo que LatestInvoices necesita del puerto de
// facturas; el resto no se llama desde este caso de uso.
type stubLatestRepo struct {
	rows      []*repository.InvoiceWithCustomer
	lastLimit int
}

func (s *stubLatestRepo) Create(_ context.Context, _ *entity.Invoice) error      { return nil }
func (s *stubLatestRepo) GetByID(_ context.Context, _ string) (*entity.Invoice, error) {
	return nil, domain.ErrNotFound
}
func (s *stubLatestRepo) Latest(_ context.Context, limit int) ([]*repository.InvoiceWithCustomer, error) {
	s.lastLimit = limit
	return s.rows, nil
}
func (s *stubLatestRepo) ListFiltered(_ context.Context, _ string, _, _ int) ([]*repository.InvoiceWithCustomer, error) {
	return nil, nil
}
func (s *stubLatestRepo) CountFiltered(_ context.Context, _ string) (int64, error) { return 0, nil }
func (s *stubLatestRepo) Update(_ context.Context, _ *entity.Invoice) error        { return nil }
func (s *stubLatestRepo) Delete(_ context.Context, _ string) error                 { return nil }

type stubRevenueRepo struct {
	rows []*entity.Revenue
	err  error
}

func (s *stubRevenueRepo) List(_ context.Context) ([]*entity.Revenue, error) {
	return s.rows, s.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func newUC(dash *stubDashboardRepo, inv *stubLatestRepo, rev *stubRevenueRepo) *analytics.DashboardUseCase {
	if dash == nil {
		dash = &stubDashboardRepo{}
	}
	if inv == nil {
		inv = &stubLatestRepo{}
	}
	if rev == nil {
		rev = &stubRevenueRepo{}
	}
	return analytics.NewDashboardUseCase(dash, inv, rev, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Cards
// ──────────────────────────────────────────────────────────────────────────────

func TestCards_FormateaSumasComoMoneda(t *testing.T) {
	uc := newUC(&stubDashboardRepo{
		invoices:  13,
		customers: 6,
		paid:      123456,
		pending:   98765,
	}, nil, nil)

	cards, err := uc.Cards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), cards.NumberOfInvoices)
	assert.Equal(t, int64(6), cards.NumberOfCustomers)
	assert.Equal(t, "$1,234.56", cards.TotalPaidInvoices)
	assert.Equal(t, "$987.65", cards.TotalPendingInvoices)
}

func TestCards_SinFacturas_SumasEnCero(t *testing.T) {
	// Sin facturas las sumas vuelven en cero, no en error, y se formatean igual.
	uc := newUC(&stubDashboardRepo{}, nil, nil)

	cards, err := uc.Cards(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), cards.NumberOfInvoices)
	assert.Equal(t, "$0.00", cards.TotalPaidInvoices)
	assert.Equal(t, "$0.00", cards.TotalPendingInvoices)
}

func TestCards_FalloDeUnaConsulta(t *testing.T) {
	uc := newUC(&stubDashboardRepo{countErr: errors.New("timeout")}, nil, nil)

	_, err := uc.Cards(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatabase)
}

// ──────────────────────────────────────────────────────────────────────────────
// Revenue y últimas facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenue_DevuelveFilasTalCual(t *testing.T) {
	uc := newUC(nil, nil, &stubRevenueRepo{rows: []*entity.Revenue{
		{Month: 1, Revenue: decimal.NewFromInt(2000)},
		{Month: 2, Revenue: decimal.NewFromInt(1800)},
	}})

	out, err := uc.Revenue(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Month)
	assert.True(t, decimal.NewFromInt(2000).Equal(out[0].Revenue))
}

func TestLatestInvoices_FormateaMontos(t *testing.T) {
	inv := &stubLatestRepo{rows: []*repository.InvoiceWithCustomer{
		{ID: "inv-1", Amount: 15795, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	}}
	uc := newUC(nil, inv, nil)

	out, err := uc.LatestInvoices(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, 3, inv.lastLimit)
	assert.Equal(t, "$157.95", out[0].Amount)
	assert.Equal(t, "Evil Rabbit", out[0].Name)
}

func TestLatestInvoices_LimiteInvalido_UsaDefault(t *testing.T) {
	inv := &stubLatestRepo{}
	uc := newUC(nil, inv, nil)

	_, err := uc.LatestInvoices(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, inv.lastLimit, "limit inválido cae al default de 5")
}
