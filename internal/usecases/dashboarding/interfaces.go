package dashboarding

import (
	"github.com/vfg2006/home-services-api/internal/domain"
)

// Dashboarder define a interface do dashboard administrativo estendido
type Dashboarder interface {
	// GetExtendedDashboard monta a resposta completa do dashboard para a
	// janela de filtros informada
	GetExtendedDashboard(filters *domain.DashboardFilters) (*domain.ExtendedDashboard, error)
}
