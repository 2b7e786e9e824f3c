package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sellers(rows []domain.SellerSummary) []string {
	result := make([]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.Seller)
	}
	return result
}

func TestBySeller(t *testing.T) {
	table := BySeller(fixtureRecords())

	require.Len(t, table, 3)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, sellers(table))
	assertDecimal(t, "180.50", table[0].Sum)
	assert.Equal(t, 2, table[0].Count)
}

func TestSellerTable_TopBySum(t *testing.T) {
	table := BySeller(fixtureRecords())

	top, err := table.TopBySum(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bruno", "Ana"}, sellers(top))

	// Ranking não altera a tabela original
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, sellers(table))
}

func TestSellerTable_TopByCount(t *testing.T) {
	top, err := BySeller(fixtureRecords()).TopByCount(2)
	require.NoError(t, err)

	// Bruno e Carla empatam com uma venda; vence a ordem alfabética
	assert.Equal(t, []string{"Ana", "Bruno"}, sellers(top))
}

func TestSellerTable_TopMaiorQueTabela(t *testing.T) {
	top, err := BySeller(fixtureRecords()).TopBySum(5)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestValidateTopSellers(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{name: "Mínimo", n: 2},
		{name: "Máximo", n: 10},
		{name: "Abaixo do mínimo", n: 1, wantErr: true},
		{name: "Zero", n: 0, wantErr: true},
		{name: "Acima do máximo", n: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopSellers(tt.n)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var filterErr *domain.FilterError
			assert.ErrorAs(t, err, &filterErr)
			assert.Equal(t, "top_sellers", filterErr.Field)

			_, err = BySeller(fixtureRecords()).TopByCount(tt.n)
			assert.ErrorAs(t, err, &filterErr)
		})
	}
}
