package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel é o rótulo usado para serviços sem categoria na matriz mensal
const UncategorizedLabel = "Uncategorized"

// DashboardFilters é a janela de filtro opcional do dashboard (from, to, city, category)
type DashboardFilters struct {
	From     *time.Time
	To       *time.Time
	City     string
	Category string
}

// HasDateWindow indica se a janela de datas deve ser aplicada.
// Comportamento observado do sistema original: com apenas um dos limites
// informado, nenhum filtro de data é aplicado.
func (f *DashboardFilters) HasDateWindow() bool {
	if f == nil || f.From == nil || f.To == nil {
		return false
	}
	return !f.From.IsZero() && !f.To.IsZero()
}

// DailyRevenuePoint é um ponto da série diária de receita (pagamentos completed)
type DailyRevenuePoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// CategoryMonthRow é uma linha bruta do agregado categoria × mês
type CategoryMonthRow struct {
	Category     string
	Month        string // formato YYYY-MM
	Revenue      float64
	PaymentCount int
}

// CategorySeries é uma série de receita de uma categoria, alinhada à lista de meses
type CategorySeries struct {
	Category string    `json:"category"`
	Data     []float64 `json:"data"`
}

// MonthlyRevenueMatrix é a matriz retangular meses × categorias usada no
// gráfico de barras empilhadas. Toda série tem exatamente len(Months) valores.
type MonthlyRevenueMatrix struct {
	Months []string         `json:"months"`
	Series []CategorySeries `json:"series"`
}

type CityDistributionItem struct {
	City     string  `json:"city"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// CustomerSummary é a linha de cliente do dashboard com contagem de
// agendamentos por status
type CustomerSummary struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	TotalBookings     int    `json:"total_bookings"`
	RequestedBookings int    `json:"requested_bookings"`
	PendingBookings   int    `json:"pending_bookings"`
	ConfirmedBookings int    `json:"confirmed_bookings"`
	CompletedBookings int    `json:"completed_bookings"`
	CancelledBookings int    `json:"cancelled_bookings"`
}

// VendorSummary é a linha de fornecedor do dashboard com contagem de trabalhos
type VendorSummary struct {
	ID                int    `json:"id"`
	CompanyName       string `json:"company_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	TotalJobs         int    `json:"total_jobs"`
	AssignedBookings  int    `json:"assigned_bookings"`
	CompletedBookings int    `json:"completed_bookings"`
}

// PaymentRecord é um registro de pagamento recente listado no dashboard
type PaymentRecord struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    PaymentStatus   `json:"status"`
	BookingID int             `json:"related_booking"`
	PayerID   *int            `json:"payer_id"`
	PayeeID   *int            `json:"payee_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExtendedDashboard é a resposta completa de GET /v1/dashboard/extended
type ExtendedDashboard struct {
	TotalCustomers   int                    `json:"totalCustomers"`
	TotalBookings    int                    `json:"totalBookings"`
	TotalRevenue     float64                `json:"totalRevenue"`
	GraphData        []DailyRevenuePoint    `json:"graphData"`
	Monthly          MonthlyRevenueMatrix   `json:"monthly"`
	CityDistribution []CityDistributionItem `json:"cityDistribution"`
	CustomersList    []CustomerSummary      `json:"customersList"`
	VendorsList      []VendorSummary        `json:"vendorsList"`
	PaymentsList     []PaymentRecord        `json:"paymentsList"`
}
