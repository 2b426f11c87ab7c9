package dashboarding

import (
	"sort"

	"github.com/vfg2006/home-services-api/internal/domain"
	"github.com/vfg2006/home-services-api/pkg/utils"
)

// BuildMonthlyMatrix transforma as linhas brutas do agregado categoria × mês
// na matriz retangular usada pelo gráfico de barras empilhadas.
//
// Algoritmo em duas passadas: primeiro coleta os meses e categorias distintos,
// depois preenche cada série consultando o valor de (categoria, mês) e
// emitindo zero quando a combinação não existe. O resultado nunca é esparso:
// toda série tem exatamente len(Months) valores.
func BuildMonthlyMatrix(rows []domain.CategoryMonthRow) domain.MonthlyRevenueMatrix {
	matrix := domain.MonthlyRevenueMatrix{
		Months: make([]string, 0),
		Series: make([]domain.CategorySeries, 0),
	}

	if len(rows) == 0 {
		return matrix
	}

	monthSet := make(map[string]struct{})
	categories := make([]string, 0)
	revenueByKey := make(map[string]map[string]float64)

	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = domain.UncategorizedLabel
		}

		if _, seen := revenueByKey[category]; !seen {
			categories = append(categories, category)
			revenueByKey[category] = make(map[string]float64)
		}

		monthSet[row.Month] = struct{}{}
		revenueByKey[category][row.Month] += row.Revenue
	}

	months := make([]string, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}

	// YYYY-MM ordena corretamente como string
	sort.Strings(months)

	matrix.Months = months
	for _, category := range categories {
		data := make([]float64, len(months))
		for i, month := range months {
			data[i] = utils.RoundWithTwoDecimalPlace(revenueByKey[category][month])
		}

		matrix.Series = append(matrix.Series, domain.CategorySeries{
			Category: category,
			Data:     data,
		})
	}

	return matrix
}
