package domain

import (
	"strconv"
	"strings"
)

// Region é uma das macrorregiões aceitas pela API de dados
type Region string

const (
	RegionBrazil    Region = "Brasil"
	RegionMidwest   Region = "Centro-Oeste"
	RegionNortheast Region = "Nordeste"
	RegionNorth     Region = "Norte"
	RegionSoutheast Region = "Sudeste"
	RegionSouth     Region = "Sul"
)

var Regions = []Region{
	RegionBrazil,
	RegionMidwest,
	RegionNortheast,
	RegionNorth,
	RegionSoutheast,
	RegionSouth,
}

var ufRegions = map[string]Region{
	"AC": RegionNorth, "AM": RegionNorth, "AP": RegionNorth, "PA": RegionNorth,
	"RO": RegionNorth, "RR": RegionNorth, "TO": RegionNorth,
	"AL": RegionNortheast, "BA": RegionNortheast, "CE": RegionNortheast,
	"MA": RegionNortheast, "PB": RegionNortheast, "PE": RegionNortheast,
	"PI": RegionNortheast, "RN": RegionNortheast, "SE": RegionNortheast,
	"DF": RegionMidwest, "GO": RegionMidwest, "MS": RegionMidwest, "MT": RegionMidwest,
	"ES": RegionSoutheast, "MG": RegionSoutheast, "RJ": RegionSoutheast, "SP": RegionSoutheast,
	"PR": RegionSouth, "RS": RegionSouth, "SC": RegionSouth,
}

// ParseRegion aceita o nome da região sem diferenciar maiúsculas. Vazio equivale a Brasil.
func ParseRegion(value string) (Region, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RegionBrazil, nil
	}

	for _, region := range Regions {
		if strings.EqualFold(string(region), value) {
			return region, nil
		}
	}

	return "", NewFilterError("region", "região desconhecida: "+value)
}

// QueryValue é o valor enviado no parâmetro regiao. Brasil não filtra.
func (r Region) QueryValue() string {
	if r == RegionBrazil || r == "" {
		return ""
	}
	return strings.ToLower(string(r))
}

// RegionOf retorna a macrorregião da UF do local da compra, ou vazio quando desconhecida
func RegionOf(location string) Region {
	return ufRegions[strings.ToUpper(strings.TrimSpace(location))]
}

// FetchFilters são os filtros aplicados pela própria API de dados. Year zero busca todos os anos.
type FetchFilters struct {
	Region Region
	Year   int
}

func (f FetchFilters) Validate() error {
	_, err := f.Normalize()
	return err
}

// Normalize valida os filtros e devolve a região no nome canônico. Vazio vira Brasil.
func (f FetchFilters) Normalize() (FetchFilters, error) {
	if f.Year < 0 {
		return f, NewFilterError("year", "ano deve ser positivo: "+strconv.Itoa(f.Year))
	}

	region, err := ParseRegion(string(f.Region))
	if err != nil {
		return f, err
	}
	f.Region = region

	return f, nil
}
