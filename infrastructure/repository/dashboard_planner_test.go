package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/home-services-api/internal/domain"
)

func dateWindow(t *testing.T) *domain.DashboardFilters {
	t.Helper()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	return &domain.DashboardFilters{From: &from, To: &to}
}

func TestCustomerCountQuery(t *testing.T) {
	sql, args, err := customerCountQuery().ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM customers c", sql)
	assert.Empty(t, args)
}

func TestBookingCountQuery(t *testing.T) {
	t.Run("Sem janela de datas não aplica filtro", func(t *testing.T) {
		sql, args, err := bookingCountQuery(&domain.DashboardFilters{}).ToSql()

		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM bookings b", sql)
		assert.Empty(t, args)
	})

	t.Run("Janela completa filtra booked_at de forma inclusiva", func(t *testing.T) {
		sql, args, err := bookingCountQuery(dateWindow(t)).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "b.booked_at::date >= $1")
		assert.Contains(t, sql, "b.booked_at::date <= $2")
		assert.Equal(t, []any{"2025-01-01", "2025-01-31"}, args)
	})

	t.Run("Apenas um limite informado ignora a janela", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		sql, args, err := bookingCountQuery(&domain.DashboardFilters{From: &from}).ToSql()

		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM bookings b", sql)
		assert.Empty(t, args)
	})
}

func TestTotalRevenueQuery(t *testing.T) {
	t.Run("Considera apenas pagamentos completed", func(t *testing.T) {
		sql, args, err := totalRevenueQuery(&domain.DashboardFilters{}).ToSql()

		require.NoError(t, err)
		assert.Equal(t, "SELECT COALESCE(SUM(p.amount), 0) FROM payments p WHERE p.status = $1", sql)
		assert.Equal(t, []any{"completed"}, args)
	})

	t.Run("Janela de datas entra como predicado adicional", func(t *testing.T) {
		sql, args, err := totalRevenueQuery(dateWindow(t)).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "p.status = $1")
		assert.Contains(t, sql, "p.created_at::date >= $2")
		assert.Contains(t, sql, "p.created_at::date <= $3")
		assert.Equal(t, []any{"completed", "2025-01-01", "2025-01-31"}, args)
	})
}

func TestDailyRevenueTrendQuery(t *testing.T) {
	sql, args, err := dailyRevenueTrendQuery(&domain.DashboardFilters{}).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, "TO_CHAR(p.created_at, 'YYYY-MM-DD') AS day")
	assert.Contains(t, sql, "GROUP BY TO_CHAR(p.created_at, 'YYYY-MM-DD')")
	assert.Contains(t, sql, "ORDER BY day ASC")
	assert.Equal(t, []any{"completed"}, args)
}

func TestCategoryMonthlyRevenueQuery(t *testing.T) {
	t.Run("Serviço sem categoria cai no rótulo Uncategorized", func(t *testing.T) {
		sql, args, err := categoryMonthlyRevenueQuery(&domain.DashboardFilters{}).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "COALESCE(NULLIF(s.category, ''), 'Uncategorized') AS category")
		assert.Contains(t, sql, "TO_CHAR(p.created_at, 'YYYY-MM') AS month")
		assert.Contains(t, sql, "JOIN bookings b ON b.id = p.booking_id")
		assert.Contains(t, sql, "JOIN services s ON s.id = b.service_id")
		assert.Contains(t, sql, "GROUP BY 1, 2")
		assert.Equal(t, []any{"completed"}, args)
	})

	t.Run("Filtro de categoria restringe o agregado", func(t *testing.T) {
		sql, args, err := categoryMonthlyRevenueQuery(&domain.DashboardFilters{Category: "Cleaning"}).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "s.category = $2")
		assert.Equal(t, []any{"completed", "Cleaning"}, args)
	})
}

func TestCityDistributionQuery(t *testing.T) {
	t.Run("Predicados de receita ficam na condição do LEFT JOIN", func(t *testing.T) {
		sql, args, err := cityDistributionQuery(&domain.DashboardFilters{}).ToSql()

		require.NoError(t, err)
		// Cidades sem pagamento completed continuam aparecendo na contagem
		assert.Contains(t, sql, "LEFT JOIN payments p ON p.booking_id = b.id AND (p.status = $1)")
		assert.Contains(t, sql, "c.address->>'city' AS city")
		assert.Contains(t, sql, "COUNT(DISTINCT b.id) AS bookings")
		assert.NotContains(t, sql, "WHERE")
		assert.Equal(t, []any{"completed"}, args)
	})

	t.Run("Filtro de cidade vira predicado sobre o endereço JSONB", func(t *testing.T) {
		sql, args, err := cityDistributionQuery(&domain.DashboardFilters{City: "São Paulo"}).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "c.address->>'city' = $2")
		assert.Equal(t, []any{"completed", "São Paulo"}, args)
	})

	t.Run("Janela de datas entra junto com o status no JOIN", func(t *testing.T) {
		sql, args, err := cityDistributionQuery(dateWindow(t)).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "p.status = $1 AND p.created_at::date >= $2 AND p.created_at::date <= $3")
		assert.Equal(t, []any{"completed", "2025-01-01", "2025-01-31"}, args)
	})
}

func TestCustomerSummariesQuery(t *testing.T) {
	sql, args, err := customerSummariesQuery(50).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, "COUNT(b.id) FILTER (WHERE b.status = 'completed') AS completed_bookings")
	assert.Contains(t, sql, "LEFT JOIN bookings b ON b.customer_id = c.id")
	assert.Contains(t, sql, "LIMIT 50")
	assert.Empty(t, args)
}

func TestVendorSummariesQuery(t *testing.T) {
	sql, args, err := vendorSummariesQuery(50).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sql, "LEFT JOIN bookings b ON b.vendor_id = v.id")
	assert.Contains(t, sql, "ORDER BY v.total_jobs DESC, v.id ASC")
	assert.Contains(t, sql, "LIMIT 50")
	assert.Empty(t, args)
}

func TestRecentPaymentsQuery(t *testing.T) {
	t.Run("Lista todos os status, não apenas completed", func(t *testing.T) {
		sql, args, err := recentPaymentsQuery(&domain.DashboardFilters{}, 20).ToSql()

		require.NoError(t, err)
		assert.NotContains(t, sql, "p.status =")
		assert.Contains(t, sql, "ORDER BY p.created_at DESC")
		assert.Contains(t, sql, "LIMIT 20")
		assert.Empty(t, args)
	})

	t.Run("Janela de datas restringe a listagem", func(t *testing.T) {
		sql, args, err := recentPaymentsQuery(dateWindow(t), 20).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sql, "p.created_at::date >= $1")
		assert.Contains(t, sql, "p.created_at::date <= $2")
		assert.Equal(t, []any{"2025-01-01", "2025-01-31"}, args)
	})
}
