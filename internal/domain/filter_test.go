package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilterSpec_Validate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2022, 7, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		spec    FilterSpec
		field   string
		wantErr bool
	}{
		{name: "Especificação vazia", spec: FilterSpec{}},
		{name: "Especificação nula", spec: nil},
		{
			name: "Predicados compatíveis",
			spec: FilterSpec{
				FieldSeller:       NewMembership("Ana"),
				FieldPrice:        NewNumberRange(decimal.NewFromInt(10), decimal.NewFromInt(10)),
				FieldPurchaseDate: NewDateRange(day(1), day(31)),
				FieldRegion:       NewMembership(),
			},
		},
		{name: "Campo desconhecido", spec: FilterSpec{"cor": NewMembership("azul")}, field: "cor", wantErr: true},
		{name: "Predicado ausente", spec: FilterSpec{FieldSeller: nil}, field: "seller", wantErr: true},
		{
			name:    "Intervalo numérico em campo de texto",
			spec:    FilterSpec{FieldSeller: NewNumberRange(decimal.Zero, decimal.NewFromInt(1))},
			field:   "seller",
			wantErr: true,
		},
		{name: "Regiões sem diferenciar maiúsculas", spec: FilterSpec{FieldRegion: NewMembership("sul", "BRASIL")}},
		{name: "Região desconhecida", spec: FilterSpec{FieldRegion: NewMembership("Sul", "Atlântida")}, field: "region", wantErr: true},
		{name: "Região vazia", spec: FilterSpec{FieldRegion: NewMembership(" ")}, field: "region", wantErr: true},
		{name: "Lista em campo numérico", spec: FilterSpec{FieldPrice: NewMembership("10")}, field: "price", wantErr: true},
		{
			name:    "Intervalo numérico invertido",
			spec:    FilterSpec{FieldInstallments: NewNumberRange(decimal.NewFromInt(5), decimal.NewFromInt(2))},
			field:   "installments",
			wantErr: true,
		},
		{
			name:    "Intervalo de datas invertido",
			spec:    FilterSpec{FieldPurchaseDate: NewDateRange(day(31), day(1))},
			field:   "purchase_date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var filterErr *FilterError
			assert.ErrorAs(t, err, &filterErr)
			assert.Equal(t, tt.field, filterErr.Field)
		})
	}
}

func TestNewMembership_SemValoresNaoENulo(t *testing.T) {
	membership := NewMembership()
	assert.NotNil(t, membership.Values)
	assert.Empty(t, membership.Values)
}

func TestFields_TodosTemTipo(t *testing.T) {
	assert.Len(t, Fields, len(fieldKinds))
	for _, field := range Fields {
		_, ok := field.Kind()
		assert.True(t, ok, field)
	}
}
