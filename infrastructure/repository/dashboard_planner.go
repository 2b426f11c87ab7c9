// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/home-services-api/internal/domain"
)

const (
	customersTable = "customers c"
	vendorsTable   = "vendors v"
	bookingsTable  = "bookings b"
	paymentsTable  = "payments p"
	servicesTable  = "services s"

	// Expressão que mapeia serviços sem categoria para o rótulo fixo do gráfico
	categoryExpr = "COALESCE(NULLIF(s.category, ''), '" + domain.UncategorizedLabel + "') AS category"
)

// As funções deste arquivo são o planejador de consultas do dashboard: funções
// puras que montam os builders parametrizados de cada agregado. Nenhuma toca o
// banco, o que permite testá-las sem uma conexão ativa.

// completedPaymentConds retorna os predicados de elegibilidade de receita:
// somente pagamentos "completed" e, quando ambos os limites foram informados,
// a janela de datas inclusiva. Um limite sozinho não aplica filtro algum
// (comportamento observado do sistema original).
func completedPaymentConds(filters *domain.DashboardFilters) []squirrel.Sqlizer {
	conds := []squirrel.Sqlizer{
		squirrel.Eq{"p.status": string(domain.PaymentStatusCompleted)},
	}

	return append(conds, paymentWindowConds(filters)...)
}

// paymentWindowConds retorna apenas a janela de datas sobre payments.created_at
func paymentWindowConds(filters *domain.DashboardFilters) []squirrel.Sqlizer {
	if !filters.HasDateWindow() {
		return nil
	}

	return []squirrel.Sqlizer{
		squirrel.GtOrEq{"p.created_at::date": filters.From.Format(time.DateOnly)},
		squirrel.LtOrEq{"p.created_at::date": filters.To.Format(time.DateOnly)},
	}
}

func customerCountQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)
}

func bookingCountQuery(filters *domain.DashboardFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select("COUNT(*)").
		From(bookingsTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters.HasDateWindow() {
		query = query.
			Where(squirrel.GtOrEq{"b.booked_at::date": filters.From.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"b.booked_at::date": filters.To.Format(time.DateOnly)})
	}

	return query
}

func totalRevenueQuery(filters *domain.DashboardFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select("COALESCE(SUM(p.amount), 0)").
		From(paymentsTable).
		PlaceholderFormat(squirrel.Dollar)

	for _, cond := range completedPaymentConds(filters) {
		query = query.Where(cond)
	}

	return query
}

func dailyRevenueTrendQuery(filters *domain.DashboardFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"TO_CHAR(p.created_at, 'YYYY-MM-DD') AS day",
			"SUM(p.amount) AS revenue",
		).
		From(paymentsTable).
		GroupBy("TO_CHAR(p.created_at, 'YYYY-MM-DD')").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar)

	for _, cond := range completedPaymentConds(filters) {
		query = query.Where(cond)
	}

	return query
}

// categoryMonthlyRevenueQuery monta o agregado categoria × mês que alimenta a
// matriz do gráfico de barras empilhadas
func categoryMonthlyRevenueQuery(filters *domain.DashboardFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			categoryExpr,
			"TO_CHAR(p.created_at, 'YYYY-MM') AS month",
			"SUM(p.amount) AS revenue",
			"COUNT(p.id) AS payment_count",
		).
		From(paymentsTable).
		Join("bookings b ON b.id = p.booking_id").
		Join("services s ON s.id = b.service_id").
		GroupBy("1", "2").
		PlaceholderFormat(squirrel.Dollar)

	for _, cond := range completedPaymentConds(filters) {
		query = query.Where(cond)
	}

	if filters != nil && filters.Category != "" {
		query = query.Where(squirrel.Eq{"s.category": filters.Category})
	}

	return query
}

func cityDistributionQuery(filters *domain.DashboardFilters) squirrel.SelectBuilder {
	// O join com payments carrega os predicados de receita para que agendamentos
	// sem pagamento completed ainda apareçam na contagem da cidade
	joinConds := squirrel.And(completedPaymentConds(filters))
	joinSQL, joinArgs, _ := joinConds.ToSql()

	query := squirrel.
		Select(
			"c.address->>'city' AS city",
			"COUNT(DISTINCT b.id) AS bookings",
			"COALESCE(SUM(p.amount), 0) AS revenue",
		).
		From(bookingsTable).
		Join("customers c ON c.id = b.customer_id").
		LeftJoin("payments p ON p.booking_id = b.id AND "+joinSQL, joinArgs...).
		GroupBy("c.address->>'city'").
		OrderBy("revenue DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil && filters.City != "" {
		query = query.Where(squirrel.Eq{"c.address->>'city'": filters.City})
	}

	return query
}

func customerSummariesQuery(limit uint64) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.name",
			"c.email",
			"c.phone",
			"COALESCE(c.address->>'city', '') AS city",
			"COUNT(b.id) AS total_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'requested') AS requested_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'pending') AS pending_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'confirmed') AS confirmed_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'completed') AS completed_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'cancelled') AS cancelled_bookings",
		).
		From(customersTable).
		LeftJoin("bookings b ON b.customer_id = c.id").
		GroupBy("c.id").
		OrderBy("c.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
}

func vendorSummariesQuery(limit uint64) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"v.id",
			"v.company_name",
			"v.phone",
			"v.email",
			"v.total_jobs",
			"COUNT(b.id) AS assigned_bookings",
			"COUNT(b.id) FILTER (WHERE b.status = 'completed') AS completed_bookings",
		).
		From(vendorsTable).
		LeftJoin("bookings b ON b.vendor_id = v.id").
		GroupBy("v.id").
		OrderBy("v.total_jobs DESC", "v.id ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
}

// recentPaymentsQuery lista os pagamentos mais recentes (todos os status),
// respeitando a janela de datas quando presente
func recentPaymentsQuery(filters *domain.DashboardFilters, limit uint64) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"p.id",
			"p.amount",
			"p.currency",
			"p.status",
			"p.booking_id",
			"p.payer_id",
			"p.payee_id",
			"p.created_at",
		).
		From(paymentsTable).
		OrderBy("p.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	for _, cond := range paymentWindowConds(filters) {
		query = query.Where(cond)
	}

	return query
}
