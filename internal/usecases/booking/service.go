package booking

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/utils"
)

// allowedTransitions é a lista estática de transições de status válidas.
// Estados terminais (completed, cancelled) não saem para lugar nenhum.
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusRequested: {domain.BookingStatusPending, domain.BookingStatusCancelled},
	domain.BookingStatusPending:   {domain.BookingStatusConfirmed, domain.BookingStatusCancelled},
	domain.BookingStatusConfirmed: {domain.BookingStatusCompleted, domain.BookingStatusCancelled},
	domain.BookingStatusCompleted: {},
	domain.BookingStatusCancelled: {},
}

type BookingService interface {
	CreateBooking(booking *domain.Booking) (*domain.Booking, error)
	GetBookingByID(bookingID int) (*domain.Booking, error)
	ListBookings(filters *domain.BookingFilters) ([]*domain.Booking, error)
	UpdateBooking(req *domain.UpdateBookingRequest) (*domain.Booking, error)
	UpdateBookingStatus(bookingID int, status domain.BookingStatus) (*domain.Booking, error)
}

type Service struct {
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
}

func NewService(bookingRepo repository.BookingRepository, serviceRepo repository.ServiceRepository) BookingService {
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
	}
}

func (s *Service) CreateBooking(booking *domain.Booking) (*domain.Booking, error) {
	if booking.CustomerID == 0 || booking.ServiceID == 0 {
		return nil, ErrMissingRequiredData
	}

	catalogService, err := s.serviceRepo.GetServiceByID(booking.ServiceID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar serviço do agendamento")
	}

	if catalogService == nil {
		return nil, fmt.Errorf("serviço não encontrado: %d", booking.ServiceID)
	}

	// Preço do catálogo quando o chamador não informou um valor negociado
	if booking.Price.IsZero() {
		booking.Price = catalogService.Price
	}

	reference, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar referência do agendamento")
	}

	booking.Reference = reference
	booking.Status = domain.BookingStatusRequested
	if booking.BookedAt.IsZero() {
		booking.BookedAt = time.Now()
	}

	created, err := s.bookingRepo.CreateBooking(booking)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": created.ID,
		"reference":  created.Reference,
		"service_id": created.ServiceID,
	}).Info("Agendamento criado")

	return created, nil
}

func (s *Service) GetBookingByID(bookingID int) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return booking, nil
}

func (s *Service) ListBookings(filters *domain.BookingFilters) ([]*domain.Booking, error) {
	return s.bookingRepo.ListBookings(filters)
}

func (s *Service) UpdateBooking(req *domain.UpdateBookingRequest) (*domain.Booking, error) {
	booking, err := s.GetBookingByID(req.ID)
	if err != nil {
		return nil, err
	}

	if req.VendorID != nil {
		booking.VendorID = req.VendorID
	}

	if req.Price != nil {
		booking.Price = *req.Price
	}

	if req.ScheduledAt != nil {
		booking.ScheduledAt = req.ScheduledAt
	}

	if err := s.bookingRepo.UpdateBooking(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateBookingStatus valida a transição contra a lista estática antes de
// gravar o novo status
func (s *Service) UpdateBookingStatus(bookingID int, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(booking.Status, status) {
		logrus.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"from":       booking.Status,
			"to":         status,
		}).Warn("Transição de status recusada")
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateBookingStatus(bookingID, status); err != nil {
		return nil, err
	}

	booking.Status = status
	return booking, nil
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
