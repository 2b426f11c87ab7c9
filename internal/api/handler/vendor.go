package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/home-services-api/infrastructure/repository"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/apiErrors"
)

// CreateVendor cadastra um novo fornecedor
func CreateVendor(repo repository.VendorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vendor *domain.Vendor

		if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if vendor.CompanyName == "" || vendor.Email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Razão social e email são obrigatórios", nil)
			return
		}

		vendor, err := repo.CreateVendor(vendor)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar fornecedor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(vendor); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetVendor retorna um fornecedor por ID
func GetVendor(repo repository.VendorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		vendor, err := repo.GetVendorByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fornecedor", nil)
			return
		}

		if vendor == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Fornecedor não encontrado", nil)
			return
		}

		writeJSON(w, vendor)
	}
}

// ListVendors lista todos os fornecedores
func ListVendors(repo repository.VendorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := repo.ListVendors()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar fornecedores", nil)
			return
		}

		writeJSON(w, vendors)
	}
}

// UpdateVendor atualiza os dados de um fornecedor
func UpdateVendor(repo repository.VendorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var vendor *domain.Vendor
		if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		existing, err := repo.GetVendorByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fornecedor", nil)
			return
		}

		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Fornecedor não encontrado", nil)
			return
		}

		vendor.ID = id
		if err := repo.UpdateVendor(vendor); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar fornecedor", nil)
			return
		}

		updated, err := repo.GetVendorByID(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fornecedor", nil)
			return
		}

		writeJSON(w, updated)
	}
}

// DeleteVendor remove um fornecedor
func DeleteVendor(repo repository.VendorRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := repo.DeleteVendor(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover fornecedor", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
