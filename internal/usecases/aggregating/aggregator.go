package aggregating

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var one = decimal.NewFromInt(1)

// contribution é o quanto um registro soma ao grupo: o preço na soma, 1 na contagem
func contribution(record domain.PurchaseRecord, reduction domain.Reduction) decimal.Decimal {
	if reduction == domain.ReductionCount {
		return one
	}
	return record.Price
}

// Totals calcula a receita total e a quantidade de vendas
func Totals(records domain.RecordSet) domain.Totals {
	totals := domain.Totals{Revenue: decimal.Zero}
	for _, record := range records {
		totals.Revenue = totals.Revenue.Add(record.Price)
	}
	totals.SalesCount = len(records)
	return totals
}

type coordinate struct {
	lat float64
	lon float64
}

type locationGroup struct {
	value  decimal.Decimal
	coords map[coordinate]int
}

// ByLocation agrupa por local da compra, ordenado pelo valor reduzido em ordem decrescente.
// Quando um local aparece com coordenadas diferentes, vence o par mais frequente e,
// em empate, o menor (lat, lon).
func ByLocation(records domain.RecordSet, reduction domain.Reduction) []domain.LocationSummary {
	groups := make(map[string]*locationGroup)

	for _, record := range records {
		group, ok := groups[record.Location]
		if !ok {
			group = &locationGroup{value: decimal.Zero, coords: make(map[coordinate]int)}
			groups[record.Location] = group
		}
		group.value = group.value.Add(contribution(record, reduction))
		group.coords[coordinate{lat: record.Lat, lon: record.Lon}]++
	}

	result := make([]domain.LocationSummary, 0, len(groups))
	for location, group := range groups {
		coord := dominantCoordinate(group.coords)
		result = append(result, domain.LocationSummary{
			Location: location,
			Lat:      coord.lat,
			Lon:      coord.lon,
			Value:    group.value,
		})
	}

	slices.SortFunc(result, func(a, b domain.LocationSummary) int {
		return descending(a.Value, b.Value, a.Location, b.Location)
	})

	return result
}

func dominantCoordinate(coords map[coordinate]int) coordinate {
	var (
		best      coordinate
		bestCount int
	)

	for coord, count := range coords {
		switch {
		case count > bestCount:
			best, bestCount = coord, count
		case count == bestCount:
			if coord.lat < best.lat || (coord.lat == best.lat && coord.lon < best.lon) {
				best = coord
			}
		}
	}

	return best
}

// ByMonth agrupa pelo mês da compra em ordem cronológica. Meses sem vendas entre o
// primeiro e o último mês aparecem com valor zero.
func ByMonth(records domain.RecordSet, reduction domain.Reduction) []domain.MonthlySummary {
	if len(records) == 0 {
		return []domain.MonthlySummary{}
	}

	buckets := make(map[int]decimal.Decimal)
	first, last := monthIndex(records[0].PurchaseDate), monthIndex(records[0].PurchaseDate)

	for _, record := range records {
		index := monthIndex(record.PurchaseDate)
		value, ok := buckets[index]
		if !ok {
			value = decimal.Zero
		}
		buckets[index] = value.Add(contribution(record, reduction))

		first = min(first, index)
		last = max(last, index)
	}

	result := make([]domain.MonthlySummary, 0, last-first+1)
	for index := first; index <= last; index++ {
		value, ok := buckets[index]
		if !ok {
			value = decimal.Zero
		}

		year, month := index/12, time.Month(index%12+1)
		result = append(result, domain.MonthlySummary{
			Period:    utils.MonthEnd(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)),
			Year:      year,
			Month:     int(month),
			MonthName: month.String(),
			Value:     value,
		})
	}

	return result
}

func monthIndex(date time.Time) int {
	return date.Year()*12 + int(date.Month()) - 1
}

// ByCategory agrupa pela categoria do produto em ordem decrescente de valor
func ByCategory(records domain.RecordSet, reduction domain.Reduction) []domain.CategorySummary {
	groups := make(map[string]decimal.Decimal)
	for _, record := range records {
		value, ok := groups[record.Category]
		if !ok {
			value = decimal.Zero
		}
		groups[record.Category] = value.Add(contribution(record, reduction))
	}

	result := make([]domain.CategorySummary, 0, len(groups))
	for category, value := range groups {
		result = append(result, domain.CategorySummary{Category: category, Value: value})
	}

	slices.SortFunc(result, func(a, b domain.CategorySummary) int {
		return descending(a.Value, b.Value, a.Category, b.Category)
	})

	return result
}

// Head devolve no máximo n linhas, sem preencher quando há menos
func Head[T any](rows []T, n int) []T {
	if n < 0 || len(rows) <= n {
		return rows
	}
	return rows[:n]
}

// descending ordena pelo valor decrescente e desempata pela chave crescente
func descending(a, b decimal.Decimal, keyA, keyB string) int {
	if c := b.Cmp(a); c != 0 {
		return c
	}
	return strings.Compare(keyA, keyB)
}

func descendingInt(a, b int, keyA, keyB string) int {
	if c := cmp.Compare(b, a); c != 0 {
		return c
	}
	return strings.Compare(keyA, keyB)
}
