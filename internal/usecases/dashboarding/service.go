package dashboarding

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/config"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/utils"
)

// Service monta o dashboard estendido a partir dos agregados do repositório.
//
// Os agregados são disparados em paralelo porque não há dependência de dados
// entre eles; a única ordenação garantida é que o reshape da matriz mensal
// acontece depois que a consulta categoria × mês resolve. Não existe snapshot
// entre as consultas: cada uma enxerga o estado commitado no momento em que
// roda. Qualquer falha aborta a resposta inteira, nunca há resultado parcial.
type Service struct {
	cfg           *config.Config
	dashboardRepo repository.DashboardRepository
}

func NewService(cfg *config.Config, dashboardRepo repository.DashboardRepository) Dashboarder {
	return &Service{
		cfg:           cfg,
		dashboardRepo: dashboardRepo,
	}
}

func (s *Service) GetExtendedDashboard(filters *domain.DashboardFilters) (*domain.ExtendedDashboard, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{}
	}

	listingLimit := s.cfg.Dashboard.ListingLimit
	paymentsLimit := s.cfg.Dashboard.RecentPaymentsLimit

	var (
		totalCustomers int
		totalBookings  int
		totalRevenue   float64
		graphData      []domain.DailyRevenuePoint
		matrixRows     []domain.CategoryMonthRow
		cities         []domain.CityDistributionItem
		customers      []domain.CustomerSummary
		vendors        []domain.VendorSummary
		payments       []domain.PaymentRecord
	)

	queryErrors := make([]error, 9)

	wg := sync.WaitGroup{}
	wg.Add(9)

	go func() {
		defer wg.Done()
		var err error
		totalCustomers, err = s.dashboardRepo.CountCustomers(filters)
		queryErrors[0] = errors.Wrap(err, "contagem de clientes")
	}()

	go func() {
		defer wg.Done()
		var err error
		totalBookings, err = s.dashboardRepo.CountBookings(filters)
		queryErrors[1] = errors.Wrap(err, "contagem de agendamentos")
	}()

	go func() {
		defer wg.Done()
		var err error
		totalRevenue, err = s.dashboardRepo.TotalRevenue(filters)
		queryErrors[2] = errors.Wrap(err, "receita total")
	}()

	go func() {
		defer wg.Done()
		var err error
		graphData, err = s.dashboardRepo.DailyRevenueTrend(filters)
		queryErrors[3] = errors.Wrap(err, "série diária de receita")
	}()

	go func() {
		defer wg.Done()
		var err error
		matrixRows, err = s.dashboardRepo.CategoryMonthlyRevenue(filters)
		queryErrors[4] = errors.Wrap(err, "agregado categoria/mês")
	}()

	go func() {
		defer wg.Done()
		var err error
		cities, err = s.dashboardRepo.CityDistribution(filters)
		queryErrors[5] = errors.Wrap(err, "distribuição por cidade")
	}()

	go func() {
		defer wg.Done()
		var err error
		customers, err = s.dashboardRepo.ListCustomerSummaries(listingLimit)
		queryErrors[6] = errors.Wrap(err, "listagem de clientes")
	}()

	go func() {
		defer wg.Done()
		var err error
		vendors, err = s.dashboardRepo.ListVendorSummaries(listingLimit)
		queryErrors[7] = errors.Wrap(err, "listagem de fornecedores")
	}()

	go func() {
		defer wg.Done()
		var err error
		payments, err = s.dashboardRepo.ListRecentPayments(filters, paymentsLimit)
		queryErrors[8] = errors.Wrap(err, "listagem de pagamentos")
	}()

	wg.Wait()

	for _, err := range queryErrors {
		if err != nil {
			logrus.WithError(err).Error("Erro em consulta agregada do dashboard")
			return nil, err
		}
	}

	for i := range graphData {
		graphData[i].Revenue = utils.RoundWithTwoDecimalPlace(graphData[i].Revenue)
	}

	return &domain.ExtendedDashboard{
		TotalCustomers:   totalCustomers,
		TotalBookings:    totalBookings,
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(totalRevenue),
		GraphData:        graphData,
		Monthly:          BuildMonthlyMatrix(matrixRows),
		CityDistribution: cities,
		CustomersList:    customers,
		VendorsList:      vendors,
		PaymentsList:     payments,
	}, nil
}
