package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/internal/usecases/dashboarding"
	"github.com/vfg2006/home-services-api/pkg/log"
	"github.com/vfg2006/home-services-api/pkg/utils"
)

// json usa jsoniter para o payload grande do dashboard
var dashboardJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// dashboardFailure é o corpo de erro do dashboard consumido pelo console admin
type dashboardFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeDashboardFailure(w http.ResponseWriter, status int, message string, err error) {
	body := dashboardFailure{
		Success: false,
		Message: message,
	}

	if err != nil {
		body.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = dashboardJSON.NewEncoder(w).Encode(body)
}

// GetExtendedDashboard responde GET /v1/dashboard/extended com os agregados do
// console administrativo. Todos os parâmetros de filtro são opcionais.
func GetExtendedDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		from, err := utils.ParseDate(r.URL.Query().Get("from"))
		if err != nil {
			logger.WithFields(log.Fields{
				"from":  r.URL.Query().Get("from"),
				"error": err.Error(),
			}).Warn("dashboard: invalid from parameter")

			writeDashboardFailure(w, http.StatusBadRequest, "Parâmetro 'from' inválido", err)
			return
		}

		to, err := utils.ParseDate(r.URL.Query().Get("to"))
		if err != nil {
			logger.WithFields(log.Fields{
				"to":    r.URL.Query().Get("to"),
				"error": err.Error(),
			}).Warn("dashboard: invalid to parameter")

			writeDashboardFailure(w, http.StatusBadRequest, "Parâmetro 'to' inválido", err)
			return
		}

		filters := &domain.DashboardFilters{
			From:     from,
			To:       to,
			City:     r.URL.Query().Get("city"),
			Category: r.URL.Query().Get("category"),
		}

		// Com apenas um dos limites a janela é descartada; deixa rastro no log
		// porque esse comportamento costuma surpreender
		if !filters.HasDateWindow() && (!from.IsZero() || !to.IsZero()) {
			logger.WithFields(log.Fields{
				"from": r.URL.Query().Get("from"),
				"to":   r.URL.Query().Get("to"),
			}).Debug("dashboard: janela de datas incompleta, filtro de datas ignorado")
		}

		dashboard, err := service.GetExtendedDashboard(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar dashboard estendido")

			writeDashboardFailure(w, http.StatusInternalServerError, "Erro ao montar o dashboard", err)
			return
		}

		logger.WithFields(log.Fields{
			"total_customers": dashboard.TotalCustomers,
			"total_bookings":  dashboard.TotalBookings,
			"months":          len(dashboard.Monthly.Months),
			"series":          len(dashboard.Monthly.Series),
		}).Info("dashboard: dashboard estendido montado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := dashboardJSON.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			writeDashboardFailure(w, http.StatusInternalServerError, "Erro ao enviar resposta", err)
		}
	})
}
