package filtering

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixtureRecords() domain.RecordSet {
	return domain.RecordSet{
		{
			Product: "Celular", Category: "eletronicos", Price: decimal.RequireFromString("100.50"),
			Freight: decimal.NewFromInt(10), PurchaseDate: date(2021, time.January, 15), Seller: "Ana",
			Location: "SP", Evaluation: 5, PaymentType: "cartao_credito", Installments: 3,
		},
		{
			Product: "Sofá", Category: "moveis", Price: decimal.NewFromInt(250),
			Freight: decimal.NewFromInt(20), PurchaseDate: date(2021, time.March, 2), Seller: "Bruno",
			Location: "RS", Evaluation: 4, PaymentType: "boleto", Installments: 1,
		},
		{
			Product: "Fone", Category: "eletronicos", Price: decimal.NewFromInt(80),
			Freight: decimal.NewFromInt(5), PurchaseDate: date(2022, time.July, 30), Seller: "Ana",
			Location: "AM", Evaluation: 2, PaymentType: "cartao_debito", Installments: 2,
		},
		{
			Product: "Romance", Category: "livros", Price: decimal.NewFromInt(30),
			Freight: decimal.NewFromInt(3), PurchaseDate: date(2022, time.July, 31), Seller: "Carla",
			Location: "PR", Evaluation: 3, PaymentType: "cupom", Installments: 1,
		},
	}
}

func products(records domain.RecordSet) []string {
	result := make([]string, 0, len(records))
	for _, record := range records {
		result = append(result, record.Product)
	}
	return result
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.FilterSpec
		expected []string
	}{
		{
			name:     "Especificação vazia mantém tudo na ordem original",
			spec:     domain.FilterSpec{},
			expected: []string{"Celular", "Sofá", "Fone", "Romance"},
		},
		{
			name:     "Lista de vendedores",
			spec:     domain.FilterSpec{domain.FieldSeller: domain.NewMembership("Ana")},
			expected: []string{"Celular", "Fone"},
		},
		{
			name:     "Lista vazia não aceita nenhum registro",
			spec:     domain.FilterSpec{domain.FieldSeller: domain.NewMembership()},
			expected: []string{},
		},
		{
			name:     "Regiões Sul e Norte",
			spec:     domain.FilterSpec{domain.FieldRegion: domain.NewMembership("Sul", "Norte")},
			expected: []string{"Sofá", "Fone", "Romance"},
		},
		{
			name:     "Região sem diferenciar maiúsculas",
			spec:     domain.FilterSpec{domain.FieldRegion: domain.NewMembership("sul")},
			expected: []string{"Sofá", "Romance"},
		},
		{
			name:     "Brasil aceita todas as regiões",
			spec:     domain.FilterSpec{domain.FieldRegion: domain.NewMembership("Brasil")},
			expected: []string{"Celular", "Sofá", "Fone", "Romance"},
		},
		{
			name:     "Lista vazia de regiões não aceita nenhum registro",
			spec:     domain.FilterSpec{domain.FieldRegion: domain.NewMembership()},
			expected: []string{},
		},
		{
			name: "Intervalo de preço inclusivo nos dois limites",
			spec: domain.FilterSpec{
				domain.FieldPrice: domain.NewNumberRange(decimal.NewFromInt(80), decimal.RequireFromString("100.5")),
			},
			expected: []string{"Celular", "Fone"},
		},
		{
			name: "Intervalo de datas de um único dia",
			spec: domain.FilterSpec{
				domain.FieldPurchaseDate: domain.NewDateRange(date(2022, time.July, 30), date(2022, time.July, 30)),
			},
			expected: []string{"Fone"},
		},
		{
			name: "Limite final com horário ainda inclui o dia",
			spec: domain.FilterSpec{
				domain.FieldPurchaseDate: domain.NewDateRange(
					date(2022, time.July, 31).Add(10*time.Hour),
					date(2022, time.July, 31).Add(10*time.Hour),
				),
			},
			expected: []string{"Romance"},
		},
		{
			name: "Conjunção de predicados",
			spec: domain.FilterSpec{
				domain.FieldSeller:       domain.NewMembership("Ana", "Carla"),
				domain.FieldCategory:     domain.NewMembership("eletronicos"),
				domain.FieldInstallments: domain.NewNumberRange(decimal.NewFromInt(3), decimal.NewFromInt(12)),
			},
			expected: []string{"Celular"},
		},
		{
			name: "Avaliação e tipo de pagamento",
			spec: domain.FilterSpec{
				domain.FieldEvaluation:  domain.NewNumberRange(decimal.NewFromInt(1), decimal.NewFromInt(4)),
				domain.FieldPaymentType: domain.NewMembership("boleto", "cupom"),
			},
			expected: []string{"Sofá", "Romance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(fixtureRecords(), tt.spec)
			require.NoError(t, err)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, products(result))
		})
	}
}

func TestApply_RegiaoSul(t *testing.T) {
	records := domain.RecordSet{
		{Product: "Sofá", Location: "RS", PurchaseDate: date(2021, time.March, 2)},
		{Product: "Mesa", Location: "SC", PurchaseDate: date(2021, time.April, 9)},
		{Product: "Fone", Location: "PA", PurchaseDate: date(2022, time.July, 30)},
	}

	result, err := Apply(records, domain.FilterSpec{domain.FieldRegion: domain.NewMembership("Sul")})
	require.NoError(t, err)

	require.Len(t, result, 2)
	for _, record := range result {
		assert.Equal(t, domain.RegionSouth, domain.RegionOf(record.Location))
	}
	assert.Equal(t, []string{"Sofá", "Mesa"}, products(result))
}

func TestApply_BrasilIgnoraLocalDesconhecido(t *testing.T) {
	records := domain.RecordSet{
		{Product: "Sofá", Location: "RS"},
		{Product: "Caixa", Location: "Exterior"},
	}

	result, err := Apply(records, domain.FilterSpec{domain.FieldRegion: domain.NewMembership("BRASIL")})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sofá"}, products(result))
}

func TestApply_Idempotente(t *testing.T) {
	spec := domain.FilterSpec{
		domain.FieldRegion:  domain.NewMembership("Sul", "Norte"),
		domain.FieldFreight: domain.NewNumberRange(decimal.NewFromInt(3), decimal.NewFromInt(20)),
	}

	once, err := Apply(fixtureRecords(), spec)
	require.NoError(t, err)

	twice, err := Apply(once, spec)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApply_NaoAlteraEntrada(t *testing.T) {
	records := fixtureRecords()

	_, err := Apply(records, domain.FilterSpec{domain.FieldSeller: domain.NewMembership("Bruno")})
	require.NoError(t, err)

	assert.Equal(t, fixtureRecords(), records)
}

func TestApply_EspecificacaoInvalida(t *testing.T) {
	tests := []struct {
		name  string
		spec  domain.FilterSpec
		field string
	}{
		{
			name:  "Intervalo invertido",
			spec:  domain.FilterSpec{domain.FieldPrice: domain.NewNumberRange(decimal.NewFromInt(100), decimal.NewFromInt(10))},
			field: "price",
		},
		{
			name:  "Predicado incompatível",
			spec:  domain.FilterSpec{domain.FieldPurchaseDate: domain.NewMembership("2021-01-15")},
			field: "purchase_date",
		},
		{
			name:  "Campo desconhecido",
			spec:  domain.FilterSpec{domain.Field("cor"): domain.NewMembership("azul")},
			field: "cor",
		},
		{
			name:  "Região desconhecida",
			spec:  domain.FilterSpec{domain.FieldRegion: domain.NewMembership("Atlântida")},
			field: "region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Apply(fixtureRecords(), tt.spec)
			assert.Nil(t, result)

			var filterErr *domain.FilterError
			require.ErrorAs(t, err, &filterErr)
			assert.Equal(t, tt.field, filterErr.Field)
		})
	}
}

func TestDistinct(t *testing.T) {
	records := fixtureRecords()

	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, Distinct(records, domain.FieldSeller))
	assert.Equal(t, []string{"eletronicos", "moveis", "livros"}, Distinct(records, domain.FieldCategory))
	assert.Equal(t, []string{"Sudeste", "Sul", "Norte"}, Distinct(records, domain.FieldRegion))
	assert.Equal(t, []string{}, Distinct(domain.RecordSet{}, domain.FieldSeller))
}
