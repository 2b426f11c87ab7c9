package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/apiErrors"
)

// CreateService cadastra um serviço no catálogo
func CreateService(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var service *domain.Service

		if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if service.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do serviço é obrigatório", nil)
			return
		}

		service, err := repo.CreateService(service)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar serviço", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(service); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetService retorna um serviço do catálogo por ID
func GetService(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		service, err := repo.GetServiceByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar serviço", nil)
			return
		}

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Serviço não encontrado", nil)
			return
		}

		writeJSON(w, service)
	}
}

// ListServices lista o catálogo, com filtro opcional por categoria
func ListServices(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := repo.ListServices(r.URL.Query().Get("category"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar serviços", nil)
			return
		}

		writeJSON(w, services)
	}
}

// UpdateService atualiza um serviço do catálogo
func UpdateService(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		service, err := repo.GetServiceByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar serviço", nil)
			return
		}

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Serviço não encontrado", nil)
			return
		}

		if req.Category != nil {
			service.Category = *req.Category
		}
		if req.SubCategory != nil {
			service.SubCategory = *req.SubCategory
		}
		if req.Name != nil {
			service.Name = *req.Name
		}
		if req.Description != nil {
			service.Description = *req.Description
		}
		if req.Price != nil {
			service.Price = *req.Price
		}
		if req.Active != nil {
			service.Active = *req.Active
		}

		if err := repo.UpdateService(service); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar serviço", nil)
			return
		}

		writeJSON(w, service)
	}
}

// DeleteService remove um serviço do catálogo
func DeleteService(repo repository.ServiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := repo.DeleteService(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover serviço", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
