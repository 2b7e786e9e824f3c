package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	columnParam     = "column"
	filenameParam   = "filename"
	regionParam     = "region"
	yearParam       = "year"
	sellerParam     = "seller"
	topSellersParam = "top_sellers"

	minSuffix  = "_min"
	maxSuffix  = "_max"
	fromSuffix = "_from"
	toSuffix   = "_to"
)

// parseDashboardParams lê região, ano, vendedores e tamanho do ranking.
// seller ausente não filtra; seller= sem valor seleciona nenhum vendedor.
func parseDashboardParams(query url.Values) (reporting.DashboardParams, error) {
	region, err := domain.ParseRegion(query.Get(regionParam))
	if err != nil {
		return reporting.DashboardParams{}, err
	}

	year, err := parseInt(query, yearParam)
	if err != nil {
		return reporting.DashboardParams{}, err
	}

	topSellers, err := parseInt(query, topSellersParam)
	if err != nil {
		return reporting.DashboardParams{}, err
	}

	params := reporting.DashboardParams{
		Region:     region,
		Year:       year,
		TopSellers: topSellers,
	}

	if values, ok := query[sellerParam]; ok {
		params.Sellers = nonEmpty(values)
	}

	return params, nil
}

func parseRawDataParams(query url.Values) (reporting.RawDataParams, error) {
	spec, err := parseFilterSpec(query)
	if err != nil {
		return reporting.RawDataParams{}, err
	}

	var columns []string
	if values, ok := query[columnParam]; ok {
		columns = nonEmpty(values)
	}

	return reporting.RawDataParams{
		Spec:    spec,
		Columns: columns,
	}, nil
}

// parseFilterSpec monta a especificação a partir da query. Campos de texto usam o próprio
// nome repetido; números usam <campo>_min e <campo>_max; datas usam <campo>_from e <campo>_to.
func parseFilterSpec(query url.Values) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{}

	for _, field := range domain.Fields {
		kind, _ := field.Kind()

		switch kind {
		case domain.KindText:
			values, ok := query[string(field)]
			if !ok {
				continue
			}
			values = nonEmpty(values)
			if field == domain.FieldRegion {
				regions, err := canonicalRegions(values)
				if err != nil {
					return nil, err
				}
				values = regions
			}
			spec[field] = domain.NewMembership(values...)

		case domain.KindNumber:
			loKey, hiKey := string(field)+minSuffix, string(field)+maxSuffix
			if !hasAny(query, loKey, hiKey) {
				continue
			}
			predicate, err := parseNumberRange(field, query.Get(loKey), query.Get(hiKey))
			if err != nil {
				return nil, err
			}
			spec[field] = predicate

		case domain.KindDate:
			fromKey, toKey := string(field)+fromSuffix, string(field)+toSuffix
			if !hasAny(query, fromKey, toKey) {
				continue
			}
			predicate, err := parseDateRange(field, query.Get(fromKey), query.Get(toKey))
			if err != nil {
				return nil, err
			}
			spec[field] = predicate
		}
	}

	return spec, nil
}

// canonicalRegions troca cada nome pela grafia canônica da região
func canonicalRegions(values []string) ([]string, error) {
	regions := make([]string, 0, len(values))
	for _, value := range values {
		region, err := domain.ParseRegion(value)
		if err != nil {
			return nil, err
		}
		regions = append(regions, string(region))
	}
	return regions, nil
}

func parseNumberRange(field domain.Field, lo, hi string) (domain.NumberRange, error) {
	if strings.TrimSpace(lo) == "" || strings.TrimSpace(hi) == "" {
		return domain.NumberRange{}, domain.NewFilterError(string(field), "informe os limites mínimo e máximo")
	}

	lower, err := decimal.NewFromString(strings.TrimSpace(lo))
	if err != nil {
		return domain.NumberRange{}, domain.NewFilterError(string(field), "limite mínimo inválido: "+lo)
	}

	upper, err := decimal.NewFromString(strings.TrimSpace(hi))
	if err != nil {
		return domain.NumberRange{}, domain.NewFilterError(string(field), "limite máximo inválido: "+hi)
	}

	return domain.NewNumberRange(lower, upper), nil
}

func parseDateRange(field domain.Field, from, to string) (domain.DateRange, error) {
	start, err := utils.ParseDate(from)
	if err != nil {
		return domain.DateRange{}, domain.NewFilterError(string(field), "data inicial inválida: "+from)
	}

	end, err := utils.ParseDate(to)
	if err != nil {
		return domain.DateRange{}, domain.NewFilterError(string(field), "data final inválida: "+to)
	}

	if start == nil || end == nil {
		return domain.DateRange{}, domain.NewFilterError(string(field), "informe as datas inicial e final")
	}

	return domain.NewDateRange(*start, *end), nil
}

func parseInt(query url.Values, key string) (int, error) {
	value := strings.TrimSpace(query.Get(key))
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewFilterError(key, "número inteiro inválido: "+value)
	}

	return n, nil
}

func hasAny(query url.Values, keys ...string) bool {
	for _, key := range keys {
		if _, ok := query[key]; ok {
			return true
		}
	}
	return false
}

// nonEmpty descarta valores vazios, sempre retornando uma fatia não nula
func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}
