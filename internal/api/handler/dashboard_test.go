package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/home-services-api/internal/domain"
)

// stubDashboarder devolve respostas fixas para testar o handler sem banco
type stubDashboarder struct {
	dashboard *domain.ExtendedDashboard
	err       error
	filters   *domain.DashboardFilters
}

func (s *stubDashboarder) GetExtendedDashboard(filters *domain.DashboardFilters) (*domain.ExtendedDashboard, error) {
	s.filters = filters
	return s.dashboard, s.err
}

func TestGetExtendedDashboardHandler(t *testing.T) {
	t.Run("Resposta de sucesso com a matriz mensal", func(t *testing.T) {
		stub := &stubDashboarder{
			dashboard: &domain.ExtendedDashboard{
				TotalCustomers: 3,
				TotalBookings:  8,
				TotalRevenue:   1500.50,
				GraphData:      []domain.DailyRevenuePoint{},
				Monthly: domain.MonthlyRevenueMatrix{
					Months: []string{"2025-01", "2025-02"},
					Series: []domain.CategorySeries{
						{Category: "Cleaning", Data: []float64{100, 50}},
						{Category: "Painting", Data: []float64{80, 0}},
					},
				},
				CityDistribution: []domain.CityDistributionItem{},
				CustomersList:    []domain.CustomerSummary{},
				VendorsList:      []domain.VendorSummary{},
				PaymentsList:     []domain.PaymentRecord{},
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/extended?from=2025-01-01&to=2025-02-28", nil)
		rec := httptest.NewRecorder()

		GetExtendedDashboard(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalCustomers":3`)
		assert.Contains(t, rec.Body.String(), `"months":["2025-01","2025-02"]`)

		require.NotNil(t, stub.filters)
		assert.True(t, stub.filters.HasDateWindow())
	})

	t.Run("Data malformada devolve 400 antes de consultar o serviço", func(t *testing.T) {
		stub := &stubDashboarder{}

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/extended?from=01-01-2025", nil)
		rec := httptest.NewRecorder()

		GetExtendedDashboard(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Nil(t, stub.filters)
	})

	t.Run("Apenas um limite informado descarta a janela de datas", func(t *testing.T) {
		stub := &stubDashboarder{dashboard: &domain.ExtendedDashboard{}}

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/extended?from=2025-01-01", nil)
		rec := httptest.NewRecorder()

		GetExtendedDashboard(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, stub.filters)
		assert.False(t, stub.filters.HasDateWindow())
	})

	t.Run("Falha no serviço devolve 500 com envelope de erro", func(t *testing.T) {
		stub := &stubDashboarder{err: errors.New("receita total: conexão recusada")}

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/extended", nil)
		rec := httptest.NewRecorder()

		GetExtendedDashboard(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Body.String(), "conexão recusada")
	})
}
