package filtering

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// compiledPredicate avalia um predicado já validado contra um registro
type compiledPredicate func(record domain.PurchaseRecord) bool

// Apply retorna, na ordem original, os registros que satisfazem todos os predicados da especificação.
// A especificação é validada antes da avaliação.
func Apply(records domain.RecordSet, spec domain.FilterSpec) (domain.RecordSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	predicates := compile(spec)

	filtered := make(domain.RecordSet, 0, len(records))
	for _, record := range records {
		if matchesAll(record, predicates) {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

func matchesAll(record domain.PurchaseRecord, predicates []compiledPredicate) bool {
	for _, matches := range predicates {
		if !matches(record) {
			return false
		}
	}
	return true
}

// compile percorre os campos em ordem estável para que a avaliação seja determinística
func compile(spec domain.FilterSpec) []compiledPredicate {
	predicates := make([]compiledPredicate, 0, len(spec))

	for _, field := range domain.Fields {
		predicate, ok := spec[field]
		if !ok {
			continue
		}

		switch p := predicate.(type) {
		case domain.Membership:
			if field == domain.FieldRegion {
				predicates = append(predicates, regionMembership(p))
				continue
			}
			predicates = append(predicates, membership(field, p))
		case domain.NumberRange:
			predicates = append(predicates, numberRange(field, p))
		case domain.DateRange:
			predicates = append(predicates, dateRange(p))
		}
	}

	return predicates
}

func membership(field domain.Field, p domain.Membership) compiledPredicate {
	accepted := make(map[string]struct{}, len(p.Values))
	for _, value := range p.Values {
		accepted[value] = struct{}{}
	}

	return func(record domain.PurchaseRecord) bool {
		_, ok := accepted[textValue(record, field)]
		return ok
	}
}

// regionMembership compara pela região canônica da UF. Brasil aceita qualquer UF conhecida.
func regionMembership(p domain.Membership) compiledPredicate {
	accepted := make(map[domain.Region]struct{}, len(p.Values))
	for _, value := range p.Values {
		region, err := domain.ParseRegion(value)
		if err != nil {
			continue
		}
		accepted[region] = struct{}{}
	}
	_, wholeCountry := accepted[domain.RegionBrazil]

	return func(record domain.PurchaseRecord) bool {
		region := domain.RegionOf(record.Location)
		if region == "" {
			return false
		}
		if wholeCountry {
			return true
		}
		_, ok := accepted[region]
		return ok
	}
}

func numberRange(field domain.Field, p domain.NumberRange) compiledPredicate {
	return func(record domain.PurchaseRecord) bool {
		value := numberValue(record, field)
		return value.GreaterThanOrEqual(p.Lo) && value.LessThanOrEqual(p.Hi)
	}
}

func dateRange(p domain.DateRange) compiledPredicate {
	from := utils.DateOnly(p.From)
	to := utils.DateOnly(p.To)

	return func(record domain.PurchaseRecord) bool {
		date := utils.DateOnly(record.PurchaseDate)
		return !date.Before(from) && !date.After(to)
	}
}

func textValue(record domain.PurchaseRecord, field domain.Field) string {
	switch field {
	case domain.FieldProduct:
		return record.Product
	case domain.FieldCategory:
		return record.Category
	case domain.FieldSeller:
		return record.Seller
	case domain.FieldLocation:
		return record.Location
	case domain.FieldRegion:
		return string(domain.RegionOf(record.Location))
	case domain.FieldPaymentType:
		return record.PaymentType
	}
	return ""
}

func numberValue(record domain.PurchaseRecord, field domain.Field) decimal.Decimal {
	switch field {
	case domain.FieldPrice:
		return record.Price
	case domain.FieldFreight:
		return record.Freight
	case domain.FieldEvaluation:
		return decimal.NewFromInt(int64(record.Evaluation))
	case domain.FieldInstallments:
		return decimal.NewFromInt(int64(record.Installments))
	}
	return decimal.Zero
}

// Distinct retorna os valores distintos de um campo de texto na ordem de primeira aparição
func Distinct(records domain.RecordSet, field domain.Field) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, record := range records {
		value := textValue(record, field)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	return values
}

