package repository

import (
	"fmt"

	"github.com/vfg2006/home-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/home-services-api/internal/domain"
)

// DashboardRepository executa os agregados do dashboard administrativo.
// Cada consulta é independente: não há transação nem snapshot compartilhado
// entre elas, então um pagamento inserido no meio da requisição pode aparecer
// em um agregado e não em outro.
type DashboardRepository interface {
	CountCustomers(filters *domain.DashboardFilters) (int, error)
	CountBookings(filters *domain.DashboardFilters) (int, error)
	TotalRevenue(filters *domain.DashboardFilters) (float64, error)
	DailyRevenueTrend(filters *domain.DashboardFilters) ([]domain.DailyRevenuePoint, error)
	CategoryMonthlyRevenue(filters *domain.DashboardFilters) ([]domain.CategoryMonthRow, error)
	CityDistribution(filters *domain.DashboardFilters) ([]domain.CityDistributionItem, error)
	ListCustomerSummaries(limit int) ([]domain.CustomerSummary, error)
	ListVendorSummaries(limit int) ([]domain.VendorSummary, error)
	ListRecentPayments(filters *domain.DashboardFilters, limit int) ([]domain.PaymentRecord, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) CountCustomers(_ *domain.DashboardFilters) (int, error) {
	query, args, err := customerCountQuery().ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return total, nil
}

func (r *dashboardRepository) CountBookings(filters *domain.DashboardFilters) (int, error) {
	query, args, err := bookingCountQuery(filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos: %w", err)
	}

	return total, nil
}

func (r *dashboardRepository) TotalRevenue(filters *domain.DashboardFilters) (float64, error) {
	query, args, err := totalRevenueQuery(filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar receita: %w", err)
	}

	return total, nil
}

func (r *dashboardRepository) DailyRevenueTrend(filters *domain.DashboardFilters) ([]domain.DailyRevenuePoint, error) {
	query, args, err := dailyRevenueTrendQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.DailyRevenuePoint, 0)
	for rows.Next() {
		var point domain.DailyRevenuePoint
		if err := rows.Scan(&point.Day, &point.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear ponto da série diária: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *dashboardRepository) CategoryMonthlyRevenue(filters *domain.DashboardFilters) ([]domain.CategoryMonthRow, error) {
	query, args, err := categoryMonthlyRevenueQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CategoryMonthRow, 0)
	for rows.Next() {
		var row domain.CategoryMonthRow
		if err := rows.Scan(&row.Category, &row.Month, &row.Revenue, &row.PaymentCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha categoria/mês: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *dashboardRepository) CityDistribution(filters *domain.DashboardFilters) ([]domain.CityDistributionItem, error) {
	query, args, err := cityDistributionQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CityDistributionItem, 0)
	for rows.Next() {
		var item domain.CityDistributionItem
		if err := rows.Scan(&item.City, &item.Bookings, &item.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear distribuição por cidade: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *dashboardRepository) ListCustomerSummaries(limit int) ([]domain.CustomerSummary, error) {
	query, args, err := customerSummariesQuery(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.CustomerSummary, 0)
	for rows.Next() {
		var s domain.CustomerSummary
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.City,
			&s.TotalBookings,
			&s.RequestedBookings,
			&s.PendingBookings,
			&s.ConfirmedBookings,
			&s.CompletedBookings,
			&s.CancelledBookings,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de cliente: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dashboardRepository) ListVendorSummaries(limit int) ([]domain.VendorSummary, error) {
	query, args, err := vendorSummariesQuery(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.VendorSummary, 0)
	for rows.Next() {
		var s domain.VendorSummary
		if err := rows.Scan(
			&s.ID,
			&s.CompanyName,
			&s.Phone,
			&s.Email,
			&s.TotalJobs,
			&s.AssignedBookings,
			&s.CompletedBookings,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de fornecedor: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dashboardRepository) ListRecentPayments(filters *domain.DashboardFilters, limit int) ([]domain.PaymentRecord, error) {
	query, args, err := recentPaymentsQuery(filters, uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.PaymentRecord, 0)
	for rows.Next() {
		var p domain.PaymentRecord
		if err := rows.Scan(
			&p.ID,
			&p.Amount,
			&p.Currency,
			&p.Status,
			&p.BookingID,
			&p.PayerID,
			&p.PayeeID,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}
