package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/home-services-api/internal/domain"
)

func TestBuildMonthlyMatrix(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.CategoryMonthRow
		validate func(t *testing.T, matrix domain.MonthlyRevenueMatrix)
	}{
		{
			name: "Matriz retangular com zero nas combinações ausentes",
			rows: []domain.CategoryMonthRow{
				{Category: "Cleaning", Month: "2025-01", Revenue: 100},
				{Category: "Cleaning", Month: "2025-02", Revenue: 50},
				{Category: "Painting", Month: "2025-01", Revenue: 80},
			},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.Equal(t, []string{"2025-01", "2025-02"}, matrix.Months)
				assert.Len(t, matrix.Series, 2)

				assert.Equal(t, "Cleaning", matrix.Series[0].Category)
				assert.Equal(t, []float64{100, 50}, matrix.Series[0].Data)

				// Painting não tem pagamento em 2025-02, a série recebe zero
				assert.Equal(t, "Painting", matrix.Series[1].Category)
				assert.Equal(t, []float64{80, 0}, matrix.Series[1].Data)
			},
		},
		{
			name: "Entrada vazia produz matriz vazia, não nula",
			rows: []domain.CategoryMonthRow{},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.NotNil(t, matrix.Months)
				assert.NotNil(t, matrix.Series)
				assert.Empty(t, matrix.Months)
				assert.Empty(t, matrix.Series)
			},
		},
		{
			name: "Meses ordenados de forma ascendente independente da ordem de chegada",
			rows: []domain.CategoryMonthRow{
				{Category: "Electrical", Month: "2025-03", Revenue: 10},
				{Category: "Electrical", Month: "2024-11", Revenue: 20},
				{Category: "Electrical", Month: "2025-01", Revenue: 30},
			},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.Equal(t, []string{"2024-11", "2025-01", "2025-03"}, matrix.Months)
				assert.Equal(t, []float64{20, 30, 10}, matrix.Series[0].Data)
			},
		},
		{
			name: "Categoria vazia cai no rótulo Uncategorized",
			rows: []domain.CategoryMonthRow{
				{Category: "", Month: "2025-01", Revenue: 40},
				{Category: "Cleaning", Month: "2025-01", Revenue: 60},
			},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.Len(t, matrix.Series, 2)
				assert.Equal(t, domain.UncategorizedLabel, matrix.Series[0].Category)
				assert.Equal(t, []float64{40}, matrix.Series[0].Data)
			},
		},
		{
			name: "Linhas duplicadas da mesma categoria e mês são acumuladas",
			rows: []domain.CategoryMonthRow{
				{Category: "Gardening", Month: "2025-04", Revenue: 15.555},
				{Category: "Gardening", Month: "2025-04", Revenue: 10.001},
			},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.Len(t, matrix.Series, 1)
				assert.Equal(t, []float64{25.56}, matrix.Series[0].Data)
			},
		},
		{
			name: "Toda série tem exatamente o tamanho da lista de meses",
			rows: []domain.CategoryMonthRow{
				{Category: "A", Month: "2025-01", Revenue: 1},
				{Category: "B", Month: "2025-02", Revenue: 2},
				{Category: "C", Month: "2025-03", Revenue: 3},
			},
			validate: func(t *testing.T, matrix domain.MonthlyRevenueMatrix) {
				assert.Len(t, matrix.Months, 3)
				for _, series := range matrix.Series {
					assert.Len(t, series.Data, len(matrix.Months))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildMonthlyMatrix(tt.rows))
		})
	}
}
