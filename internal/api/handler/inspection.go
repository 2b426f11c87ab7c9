package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/apiErrors"
	"github.com/vfg2006/home-services-api/pkg/utils"
)

// CreateInspection agenda uma visita técnica para um agendamento
func CreateInspection(repo repository.InspectionRepository, bookingRepo repository.BookingRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inspection *domain.Inspection

		if err := json.NewDecoder(r.Body).Decode(&inspection); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if inspection.BookingID == 0 || inspection.ScheduledAt.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Agendamento e data da visita são obrigatórios", nil)
			return
		}

		booking, err := bookingRepo.GetBookingByID(inspection.BookingID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar agendamento da visita", nil)
			return
		}

		if booking == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Agendamento não encontrado", nil)
			return
		}

		reference, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar referência da visita", nil)
			return
		}

		inspection.Reference = reference
		if inspection.Status == "" {
			inspection.Status = domain.InspectionStatusScheduled
		}

		inspection, err = repo.CreateInspection(inspection)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar visita técnica", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(inspection); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetInspection retorna uma visita técnica por ID
func GetInspection(repo repository.InspectionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		inspection, err := repo.GetInspectionByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar visita técnica", nil)
			return
		}

		if inspection == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Visita técnica não encontrada", nil)
			return
		}

		writeJSON(w, inspection)
	}
}

// ListBookingInspections lista as visitas técnicas de um agendamento
func ListBookingInspections(repo repository.InspectionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookingID, err := strconv.Atoi(r.URL.Query().Get("booking_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro 'booking_id' inválido", nil)
			return
		}

		inspections, err := repo.ListInspectionsByBooking(bookingID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar visitas técnicas", nil)
			return
		}

		writeJSON(w, inspections)
	}
}

// UpdateInspection atualiza status, responsável ou data de uma visita técnica
func UpdateInspection(repo repository.InspectionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateInspectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Status != nil && !req.Status.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de visita inválido", nil)
			return
		}

		inspection, err := repo.GetInspectionByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar visita técnica", nil)
			return
		}

		if inspection == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Visita técnica não encontrada", nil)
			return
		}

		if req.RMUserID != nil {
			inspection.RMUserID = req.RMUserID
		}
		if req.Status != nil {
			inspection.Status = *req.Status
		}
		if req.ScheduledAt != nil {
			inspection.ScheduledAt = *req.ScheduledAt
		}
		if req.Notes != nil {
			inspection.Notes = *req.Notes
		}

		if err := repo.UpdateInspection(inspection); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar visita técnica", nil)
			return
		}

		writeJSON(w, inspection)
	}
}

// DeleteInspection remove uma visita técnica
func DeleteInspection(repo repository.InspectionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := repo.DeleteInspection(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover visita técnica", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
