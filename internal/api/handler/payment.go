package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/apiErrors"
)

// CreatePayment registra um pagamento vinculado a um agendamento
func CreatePayment(repo repository.PaymentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payment *domain.Payment

		if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if payment.BookingID == 0 || payment.Amount.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Agendamento e valor são obrigatórios", nil)
			return
		}

		if payment.Currency == "" {
			payment.Currency = "BRL"
		}

		if payment.Status == "" {
			payment.Status = domain.PaymentStatusPending
		}

		payment, err := repo.CreatePayment(payment)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pagamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(payment); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetPayment retorna um pagamento por ID
func GetPayment(repo repository.PaymentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		payment, err := repo.GetPaymentByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pagamento", nil)
			return
		}

		if payment == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pagamento não encontrado", nil)
			return
		}

		writeJSON(w, payment)
	}
}

// ListBookingPayments lista os pagamentos de um agendamento
func ListBookingPayments(repo repository.PaymentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := strconv.Atoi(r.URL.Query().Get("booking_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'booking_id' inválido", nil)
			return
		}

		payments, err := repo.ListPaymentsByBooking(bookingID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pagamentos", nil)
			return
		}

		writeJSON(w, payments)
	}
}

// UpdatePaymentStatus altera o status de um pagamento
func UpdatePaymentStatus(repo repository.PaymentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req struct {
			Status domain.PaymentStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if !req.Status.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de pagamento inválido", nil)
			return
		}

		if err := repo.UpdatePaymentStatus(id, req.Status); err != nil {
			if err == sql.ErrNoRows {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Pagamento não encontrado", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do pagamento", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
