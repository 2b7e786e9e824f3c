package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected Region
		wantErr  bool
	}{
		{name: "Vazio equivale a Brasil", value: "", expected: RegionBrazil},
		{name: "Minúsculas", value: "sul", expected: RegionSouth},
		{name: "Com hífen e caixa mista", value: "centro-OESTE", expected: RegionMidwest},
		{name: "Com espaços", value: " Nordeste ", expected: RegionNortheast},
		{name: "Desconhecida", value: "Atlântida", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, err := ParseRegion(tt.value)
			if tt.wantErr {
				var filterErr *FilterError
				assert.ErrorAs(t, err, &filterErr)
				assert.Equal(t, "region", filterErr.Field)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, region)
		})
	}
}

func TestRegion_QueryValue(t *testing.T) {
	assert.Equal(t, "", RegionBrazil.QueryValue())
	assert.Equal(t, "", Region("").QueryValue())
	assert.Equal(t, "nordeste", RegionNortheast.QueryValue())
	assert.Equal(t, "centro-oeste", RegionMidwest.QueryValue())
}

func TestRegionOf(t *testing.T) {
	assert.Equal(t, RegionSoutheast, RegionOf("SP"))
	assert.Equal(t, RegionSouth, RegionOf("rs"))
	assert.Equal(t, RegionMidwest, RegionOf("DF"))
	assert.Equal(t, Region(""), RegionOf("XX"))

	// Todas as UFs pertencem a uma região aceita pelo filtro
	for uf, region := range ufRegions {
		assert.Contains(t, Regions, region, uf)
	}
	assert.Len(t, ufRegions, 27)
}

func TestFetchFilters_Validate(t *testing.T) {
	assert.NoError(t, FetchFilters{}.Validate())
	assert.NoError(t, FetchFilters{Region: RegionSouth, Year: 2021}.Validate())

	var filterErr *FilterError
	assert.ErrorAs(t, FetchFilters{Year: -1}.Validate(), &filterErr)
	assert.Equal(t, "year", filterErr.Field)

	assert.ErrorAs(t, FetchFilters{Region: "Atlântida"}.Validate(), &filterErr)
}

func TestFetchFilters_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Region
		expected Region
	}{
		{name: "Vazio vira Brasil", input: "", expected: RegionBrazil},
		{name: "Brasil minúsculo", input: "brasil", expected: RegionBrazil},
		{name: "Sul com caixa mista", input: "SuL", expected: RegionSouth},
		{name: "Nordeste maiúsculo", input: "NORDESTE", expected: RegionNortheast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := FetchFilters{Region: tt.input, Year: 2022}.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filters.Region)
			assert.Equal(t, 2022, filters.Year)
		})
	}

	filters, err := FetchFilters{Region: "BRASIL"}.Normalize()
	require.NoError(t, err)
	assert.Empty(t, filters.Region.QueryValue())

	_, err = FetchFilters{Region: "Atlântida"}.Normalize()
	var filterErr *FilterError
	assert.ErrorAs(t, err, &filterErr)
}
