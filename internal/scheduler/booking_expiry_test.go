package scheduler

import (
	"errors"
	"testing"

	"github.com/vfg2006/home-services-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestBookingExpiryService_expireStaleBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)

	service := &BookingExpiryService{
		config: BookingExpiryConfig{
			MaxAgeDays: 14,
			Enabled:    true,
		},
		bookingRepo: mockBookingRepo,
	}

	t.Run("Cancela agendamentos requested mais antigos que o limite", func(t *testing.T) {
		mockBookingRepo.EXPECT().CancelStaleRequested(14).Return(int64(3), nil)

		service.expireStaleBookings()

		if service.lastRunFinishedAt.IsZero() {
			t.Error("execução bem sucedida deveria registrar o horário de término")
		}
	})

	t.Run("Erro do repositório não registra término", func(t *testing.T) {
		previousFinish := service.lastRunFinishedAt

		mockBookingRepo.EXPECT().CancelStaleRequested(14).Return(int64(0), errors.New("banco indisponível"))

		service.expireStaleBookings()

		if !service.lastRunFinishedAt.Equal(previousFinish) {
			t.Error("execução com erro não deveria atualizar o horário de término")
		}
	})
}

func TestVendorStatsSyncService_recomputeVendorStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendorRepo := mocks.NewMockVendorRepository(ctrl)

	service := &VendorStatsSyncService{
		config: VendorStatsSyncConfig{
			Enabled: true,
		},
		vendorRepo: mockVendorRepo,
	}

	mockVendorRepo.EXPECT().RecomputeTotalJobs().Return(int64(5), nil)

	service.recomputeVendorStats()

	if service.lastRunFinishedAt.IsZero() {
		t.Error("execução bem sucedida deveria registrar o horário de término")
	}
}
