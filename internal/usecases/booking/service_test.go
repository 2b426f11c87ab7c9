package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/home-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/home-services-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockBookingRepo, mockServiceRepo)

	t.Run("Usa o preço do catálogo quando nenhum valor foi negociado", func(t *testing.T) {
		mockServiceRepo.EXPECT().GetServiceByID(7).Return(&domain.Service{
			ID:    7,
			Name:  "Limpeza residencial completa",
			Price: decimal.NewFromFloat(300),
		}, nil)

		mockBookingRepo.EXPECT().
			CreateBooking(gomock.Any()).
			DoAndReturn(func(b *domain.Booking) (*domain.Booking, error) {
				assert.Equal(t, domain.BookingStatusRequested, b.Status)
				assert.True(t, decimal.NewFromFloat(300).Equal(b.Price))
				assert.NotEmpty(t, b.Reference)
				assert.False(t, b.BookedAt.IsZero())
				b.ID = 1
				return b, nil
			})

		created, err := service.CreateBooking(&domain.Booking{
			CustomerID: 3,
			ServiceID:  7,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Mantém o preço negociado quando informado", func(t *testing.T) {
		mockServiceRepo.EXPECT().GetServiceByID(7).Return(&domain.Service{
			ID:    7,
			Price: decimal.NewFromFloat(300),
		}, nil)

		mockBookingRepo.EXPECT().
			CreateBooking(gomock.Any()).
			DoAndReturn(func(b *domain.Booking) (*domain.Booking, error) {
				assert.True(t, decimal.NewFromFloat(250).Equal(b.Price))
				return b, nil
			})

		_, err := service.CreateBooking(&domain.Booking{
			CustomerID: 3,
			ServiceID:  7,
			Price:      decimal.NewFromFloat(250),
		})

		assert.NoError(t, err)
	})

	t.Run("Sem cliente ou serviço a criação é recusada", func(t *testing.T) {
		_, err := service.CreateBooking(&domain.Booking{ServiceID: 7})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.CreateBooking(&domain.Booking{CustomerID: 3})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Serviço inexistente no catálogo impede a criação", func(t *testing.T) {
		mockServiceRepo.EXPECT().GetServiceByID(99).Return(nil, nil)

		_, err := service.CreateBooking(&domain.Booking{CustomerID: 3, ServiceID: 99})
		assert.Error(t, err)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockBookingRepo, mockServiceRepo)

	booking := func(status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{
			ID:       10,
			Status:   status,
			BookedAt: time.Now(),
		}
	}

	t.Run("Transições permitidas pela máquina de estados", func(t *testing.T) {
		allowed := []struct {
			from domain.BookingStatus
			to   domain.BookingStatus
		}{
			{domain.BookingStatusRequested, domain.BookingStatusPending},
			{domain.BookingStatusRequested, domain.BookingStatusCancelled},
			{domain.BookingStatusPending, domain.BookingStatusConfirmed},
			{domain.BookingStatusPending, domain.BookingStatusCancelled},
			{domain.BookingStatusConfirmed, domain.BookingStatusCompleted},
			{domain.BookingStatusConfirmed, domain.BookingStatusCancelled},
		}

		for _, tc := range allowed {
			mockBookingRepo.EXPECT().GetBookingByID(10).Return(booking(tc.from), nil)
			mockBookingRepo.EXPECT().UpdateBookingStatus(10, tc.to).Return(nil)

			updated, err := service.UpdateBookingStatus(10, tc.to)

			assert.NoError(t, err, "transição %s -> %s deveria ser aceita", tc.from, tc.to)
			assert.Equal(t, tc.to, updated.Status)
		}
	})

	t.Run("Transições fora da lista são recusadas", func(t *testing.T) {
		denied := []struct {
			from domain.BookingStatus
			to   domain.BookingStatus
		}{
			{domain.BookingStatusRequested, domain.BookingStatusConfirmed},
			{domain.BookingStatusRequested, domain.BookingStatusCompleted},
			{domain.BookingStatusPending, domain.BookingStatusCompleted},
			{domain.BookingStatusCompleted, domain.BookingStatusCancelled},
			{domain.BookingStatusCancelled, domain.BookingStatusRequested},
		}

		for _, tc := range denied {
			mockBookingRepo.EXPECT().GetBookingByID(10).Return(booking(tc.from), nil)

			_, err := service.UpdateBookingStatus(10, tc.to)

			assert.ErrorIs(t, err, ErrInvalidTransition, "transição %s -> %s deveria ser recusada", tc.from, tc.to)
		}
	})

	t.Run("Status desconhecido é recusado antes de consultar o banco", func(t *testing.T) {
		_, err := service.UpdateBookingStatus(10, domain.BookingStatus("archived"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Agendamento inexistente retorna erro próprio", func(t *testing.T) {
		mockBookingRepo.EXPECT().GetBookingByID(10).Return(nil, nil)

		_, err := service.UpdateBookingStatus(10, domain.BookingStatusPending)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
