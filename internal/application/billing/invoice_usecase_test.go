package billing_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/internal/application/billing"
	"github.com/jhoicas/dashboard-api/internal/application/forms"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

// memCache implementa ports.PageCache en memoria, con el mismo contrato que el
// caché real: los valores viajan serializados y la invalidación es por prefijo.
type memCache struct {
	data        map[string][]byte
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Invalidate(_ context.Context, path string) error {
	m.invalidated = append(m.invalidated, path)
	for k := range m.data {
		if strings.HasPrefix(k, path) {
			delete(m.data, k)
		}
	}
	return nil
}

// stubInvoiceRepo implementa repository.InvoiceRepository sobre slices fijos y
// registra los parámetros recibidos.
type stubInvoiceRepo struct {
	rows  []*repository.InvoiceWithCustomer
	count int64
	byID  *entity.Invoice

	listCalls  int
	lastQuery  string
	lastLimit  int
	lastOffset int
	created    *entity.Invoice
	updated    *entity.Invoice
	deletedID  string

	createErr error
	updateErr error
	deleteErr error
	getErr    error
}

func (s *stubInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	s.created = inv
	return s.createErr
}

func (s *stubInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
}

func (s *stubInvoiceRepo) Latest(_ context.Context, limit int) ([]*repository.InvoiceWithCustomer, error) {
	s.lastLimit = limit
	return s.rows, nil
}

func (s *stubInvoiceRepo) ListFiltered(_ context.Context, query string, limit, offset int) ([]*repository.InvoiceWithCustomer, error) {
	s.listCalls++
	s.lastQuery = query
	s.lastLimit = limit
	s.lastOffset = offset
	return s.rows, nil
}

func (s *stubInvoiceRepo) CountFiltered(_ context.Context, query string) (int64, error) {
	s.lastQuery = query
	return s.count, nil
}

func (s *stubInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	s.updated = inv
	return s.updateErr
}

func (s *stubInvoiceRepo) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas filtradas y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceFiltered_MapeaFilasYPagina(t *testing.T) {
	repo := &stubInvoiceRepo{
		rows: []*repository.InvoiceWithCustomer{
			{
				ID:       "inv-1",
				Amount:   15795,
				Status:   entity.StatusPending,
				Date:     time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC),
				Name:     "Evil Rabbit",
				Email:    "evil@rabbit.com",
				ImageURL: "/customers/evil-rabbit.png",
			},
		},
	}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	out, err := uc.Filtered(context.Background(), "rabbit", 2)
	require.NoError(t, err)
	require.Len(t, out, 1)

	// Página 2 → offset 6, límite fijo 6.
	assert.Equal(t, 6, repo.lastLimit)
	assert.Equal(t, 6, repo.lastOffset)
	assert.Equal(t, "rabbit", repo.lastQuery)

	// El monto queda en centavos; la fecha sale como YYYY-MM-DD.
	assert.Equal(t, int64(15795), out[0].Amount)
	assert.Equal(t, "2022-12-06", out[0].Date)
	assert.Equal(t, "Evil Rabbit", out[0].Name)
	assert.Equal(t, "/customers/evil-rabbit.png", out[0].ImageURL)
}

func TestInvoiceFiltered_SegundaLlamadaSaleDelCache(t *testing.T) {
	repo := &stubInvoiceRepo{
		rows: []*repository.InvoiceWithCustomer{
			{ID: "inv-1", Amount: 500, Status: entity.StatusPaid, Date: time.Now()},
		},
	}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	_, err := uc.Filtered(context.Background(), "q", 1)
	require.NoError(t, err)
	out, err := uc.Filtered(context.Background(), "q", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls, "la segunda llamada debe resolverse del caché")
	assert.Len(t, out, 1)
}

func TestInvoicePages_RedondeaHaciaArriba(t *testing.T) {
	repo := &stubInvoiceRepo{count: 13}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	total, err := uc.Pages(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, total, "13 filas con páginas de 6 son 3 páginas")
}

func TestInvoicePages_SinFilas(t *testing.T) {
	repo := &stubInvoiceRepo{count: 0}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	total, err := uc.Pages(context.Background(), "nomatch")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestPageOffset_PaginasInvalidas(t *testing.T) {
	assert.Equal(t, 0, billing.PageOffset(0), "página 0 se trata como la primera")
	assert.Equal(t, 0, billing.PageOffset(-3))
	assert.Equal(t, 0, billing.PageOffset(1))
	assert.Equal(t, 18, billing.PageOffset(4))
}

// ──────────────────────────────────────────────────────────────────────────────
// ByID
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceByID_ConvierteADolares(t *testing.T) {
	repo := &stubInvoiceRepo{byID: &entity.Invoice{
		ID:         "inv-1",
		CustomerID: "cust-1",
		Amount:     15795,
		Status:     entity.StatusPending,
		Date:       time.Date(2023, 6, 17, 0, 0, 0, 0, time.UTC),
	}}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	out, err := uc.ByID(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(157.95).Equal(out.Amount),
		"15795 centavos son $157.95, no %s", out.Amount)
}

func TestInvoiceByID_NoExiste(t *testing.T) {
	repo := &stubInvoiceRepo{getErr: domain.ErrNotFound}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	_, err := uc.ByID(context.Background(), "no-such")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_FormularioInvalido_NoPersiste(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newMemCache()
	uc := billing.NewInvoiceUseCase(repo, cache, testLogger())

	state := uc.Create(context.Background(), forms.InvoiceForm{})
	require.NotNil(t, state)

	assert.Contains(t, state.Errors, "customerId")
	assert.Contains(t, state.Errors, "amount")
	assert.Contains(t, state.Errors, "status")
	assert.Nil(t, repo.created, "con validación fallida no debe tocarse el repo")
	assert.Empty(t, cache.invalidated, "con validación fallida no se invalida el caché")
}

func TestInvoiceCreate_Exitoso(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newMemCache()
	uc := billing.NewInvoiceUseCase(repo, cache, testLogger())

	state := uc.Create(context.Background(), forms.InvoiceForm{
		CustomerID: "cust-1",
		Amount:     "157.95",
		Status:     entity.StatusPending,
	})
	require.Nil(t, state)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, repo.created.ID, "el servidor asigna el id")
	assert.Equal(t, int64(15795), repo.created.Amount, "el monto se guarda en centavos")
	assert.Equal(t, entity.StatusPending, repo.created.Status)
	assert.False(t, repo.created.Date.IsZero(), "el servidor asigna la fecha")
	assert.Contains(t, cache.invalidated, billing.InvoicesPath)
}

func TestInvoiceCreate_FalloDePersistencia(t *testing.T) {
	repo := &stubInvoiceRepo{createErr: errors.New("conexión perdida")}
	uc := billing.NewInvoiceUseCase(repo, newMemCache(), testLogger())

	state := uc.Create(context.Background(), forms.InvoiceForm{
		CustomerID: "cust-1",
		Amount:     "10.00",
		Status:     entity.StatusPaid,
	})
	require.NotNil(t, state)

	assert.Nil(t, state.Errors, "un fallo de persistencia no trae errores por campo")
	assert.Contains(t, state.Message, "Error de base de datos")
	assert.NotContains(t, state.Message, "conexión perdida",
		"la causa concreta no se expone al cliente")
}

func TestInvoiceUpdate_Exitoso_InvalidaCache(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newMemCache()
	uc := billing.NewInvoiceUseCase(repo, cache, testLogger())

	state := uc.Update(context.Background(), "inv-1", forms.InvoiceForm{
		CustomerID: "cust-2",
		Amount:     "88.88",
		Status:     entity.StatusPaid,
	})
	require.Nil(t, state)
	require.NotNil(t, repo.updated)

	assert.Equal(t, "inv-1", repo.updated.ID)
	assert.Equal(t, int64(8888), repo.updated.Amount)
	assert.Contains(t, cache.invalidated, billing.InvoicesPath)
}

func TestInvoiceDelete_IdInexistente_ReportaFallo(t *testing.T) {
	// El repo responde ErrNotFound cuando el DELETE no afectó filas; el caso de
	// uso lo colapsa en el mismo mensaje genérico que cualquier otro fallo.
	repo := &stubInvoiceRepo{deleteErr: domain.ErrNotFound}
	cache := newMemCache()
	uc := billing.NewInvoiceUseCase(repo, cache, testLogger())

	state := uc.Delete(context.Background(), "no-such")
	require.NotNil(t, state)

	assert.Contains(t, state.Message, "Error de base de datos")
	assert.Empty(t, cache.invalidated)
}

func TestInvoiceDelete_Exitoso(t *testing.T) {
	repo := &stubInvoiceRepo{}
	cache := newMemCache()
	uc := billing.NewInvoiceUseCase(repo, cache, testLogger())

	state := uc.Delete(context.Background(), "inv-1")
	require.Nil(t, state)

	assert.Equal(t, "inv-1", repo.deletedID)
	assert.Contains(t, cache.invalidated, billing.InvoicesPath)
}
