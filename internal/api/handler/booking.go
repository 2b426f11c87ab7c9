package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/internal/usecases/booking"
	"github.com/vfg2006/home-services-api/pkg/apiErrors"
)

// CreateBooking registra uma nova solicitação de serviço
func CreateBooking(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req *domain.Booking

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateBooking(req)
		if err != nil {
			writeBookingError(w, err, "Erro ao criar agendamento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetBooking retorna um agendamento por ID
func GetBooking(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		result, err := service.GetBookingByID(id)
		if err != nil {
			writeBookingError(w, err, "Erro ao buscar agendamento")
			return
		}

		writeJSON(w, result)
	}
}

// ListBookings lista agendamentos com filtros opcionais de query string
func ListBookings(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := &domain.BookingFilters{}

		if raw := r.URL.Query().Get("customer_id"); raw != "" {
			customerID, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'customer_id' inválido", nil)
				return
			}
			filters.CustomerID = &customerID
		}

		if raw := r.URL.Query().Get("vendor_id"); raw != "" {
			vendorID, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'vendor_id' inválido", nil)
				return
			}
			filters.VendorID = &vendorID
		}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.BookingStatus(raw)
			if !status.IsValid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'status' inválido", nil)
				return
			}
			filters.Status = &status
		}

		bookings, err := service.ListBookings(filters)
		if err != nil {
			writeBookingError(w, err, "Erro ao listar agendamentos")
			return
		}

		writeJSON(w, bookings)
	}
}

// UpdateBooking altera fornecedor, preço negociado ou data agendada
func UpdateBooking(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req *domain.UpdateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req.ID = id
		updated, err := service.UpdateBooking(req)
		if err != nil {
			writeBookingError(w, err, "Erro ao atualizar agendamento")
			return
		}

		writeJSON(w, updated)
	}
}

// UpdateBookingStatus trata o PATCH de status. A transição é validada pelo
// usecase contra a máquina de estados do agendamento.
func UpdateBookingStatus(service booking.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req struct {
			Status domain.BookingStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateBookingStatus(id, req.Status)
		if err != nil {
			writeBookingError(w, err, "Erro ao atualizar status do agendamento")
			return
		}

		writeJSON(w, updated)
	}
}

// writeBookingError traduz os erros do usecase para os códigos da API
func writeBookingError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Agendamento não encontrado", nil)
	case errors.Is(err, booking.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de agendamento inválido", nil)
	case errors.Is(err, booking.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Transição de status não permitida", nil)
	case errors.Is(err, booking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente e serviço são obrigatórios", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMessage, nil)
	}
}
