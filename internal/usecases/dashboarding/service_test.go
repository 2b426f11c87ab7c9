package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/home-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/home-services-api/internal/config"
	"github.com/vfg2006/home-services-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			ListingLimit:        50,
			RecentPaymentsLimit: 20,
		},
	}
}

func TestGetExtendedDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepository(ctrl)
	service := NewService(testConfig(), mockRepo)

	filters := &domain.DashboardFilters{}

	mockRepo.EXPECT().CountCustomers(filters).Return(12, nil)
	mockRepo.EXPECT().CountBookings(filters).Return(34, nil)
	mockRepo.EXPECT().TotalRevenue(filters).Return(1234.567, nil)
	mockRepo.EXPECT().DailyRevenueTrend(filters).Return([]domain.DailyRevenuePoint{
		{Day: "2025-01-10", Revenue: 100.005},
	}, nil)
	mockRepo.EXPECT().CategoryMonthlyRevenue(filters).Return([]domain.CategoryMonthRow{
		{Category: "Cleaning", Month: "2025-01", Revenue: 100},
	}, nil)
	mockRepo.EXPECT().CityDistribution(filters).Return([]domain.CityDistributionItem{
		{City: "São Paulo", Bookings: 5, Revenue: 900},
	}, nil)
	mockRepo.EXPECT().ListCustomerSummaries(50).Return([]domain.CustomerSummary{}, nil)
	mockRepo.EXPECT().ListVendorSummaries(50).Return([]domain.VendorSummary{}, nil)
	mockRepo.EXPECT().ListRecentPayments(filters, 20).Return([]domain.PaymentRecord{}, nil)

	dashboard, err := service.GetExtendedDashboard(filters)

	assert.NoError(t, err)
	assert.Equal(t, 12, dashboard.TotalCustomers)
	assert.Equal(t, 34, dashboard.TotalBookings)
	assert.Equal(t, 1234.57, dashboard.TotalRevenue)
	assert.Equal(t, 100.01, dashboard.GraphData[0].Revenue)
	assert.Equal(t, []string{"2025-01"}, dashboard.Monthly.Months)
	assert.Len(t, dashboard.CityDistribution, 1)
}

func TestGetExtendedDashboard_NilFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepository(ctrl)
	service := NewService(testConfig(), mockRepo)

	mockRepo.EXPECT().CountCustomers(gomock.Any()).Return(0, nil)
	mockRepo.EXPECT().CountBookings(gomock.Any()).Return(0, nil)
	mockRepo.EXPECT().TotalRevenue(gomock.Any()).Return(0.0, nil)
	mockRepo.EXPECT().DailyRevenueTrend(gomock.Any()).Return([]domain.DailyRevenuePoint{}, nil)
	mockRepo.EXPECT().CategoryMonthlyRevenue(gomock.Any()).Return([]domain.CategoryMonthRow{}, nil)
	mockRepo.EXPECT().CityDistribution(gomock.Any()).Return([]domain.CityDistributionItem{}, nil)
	mockRepo.EXPECT().ListCustomerSummaries(gomock.Any()).Return([]domain.CustomerSummary{}, nil)
	mockRepo.EXPECT().ListVendorSummaries(gomock.Any()).Return([]domain.VendorSummary{}, nil)
	mockRepo.EXPECT().ListRecentPayments(gomock.Any(), gomock.Any()).Return([]domain.PaymentRecord{}, nil)

	dashboard, err := service.GetExtendedDashboard(nil)

	assert.NoError(t, err)
	assert.NotNil(t, dashboard)
	assert.Empty(t, dashboard.Monthly.Months)
}

func TestGetExtendedDashboard_QueryFailureAbortsResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepository(ctrl)
	service := NewService(testConfig(), mockRepo)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	filters := &domain.DashboardFilters{From: &from, To: &to}

	queryErr := errors.New("conexão recusada")

	// Todas as consultas disparam em paralelo, então todas precisam de expectativa
	mockRepo.EXPECT().CountCustomers(filters).Return(10, nil)
	mockRepo.EXPECT().CountBookings(filters).Return(20, nil)
	mockRepo.EXPECT().TotalRevenue(filters).Return(0.0, queryErr)
	mockRepo.EXPECT().DailyRevenueTrend(filters).Return([]domain.DailyRevenuePoint{}, nil)
	mockRepo.EXPECT().CategoryMonthlyRevenue(filters).Return([]domain.CategoryMonthRow{}, nil)
	mockRepo.EXPECT().CityDistribution(filters).Return([]domain.CityDistributionItem{}, nil)
	mockRepo.EXPECT().ListCustomerSummaries(50).Return([]domain.CustomerSummary{}, nil)
	mockRepo.EXPECT().ListVendorSummaries(50).Return([]domain.VendorSummary{}, nil)
	mockRepo.EXPECT().ListRecentPayments(filters, 20).Return([]domain.PaymentRecord{}, nil)

	dashboard, err := service.GetExtendedDashboard(filters)

	// Falha em qualquer agregado descarta a resposta inteira
	assert.Error(t, err)
	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, queryErr)
	assert.Contains(t, err.Error(), "receita total")
}
