package aggregating

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SellerTable traz soma e contagem por vendedor, ordenada apenas pelo nome.
// Os rankings são obtidos com TopBySum e TopByCount.
type SellerTable []domain.SellerSummary

// BySeller agrupa por vendedor calculando soma e contagem do preço
func BySeller(records domain.RecordSet) SellerTable {
	groups := make(map[string]*domain.SellerSummary)
	for _, record := range records {
		group, ok := groups[record.Seller]
		if !ok {
			group = &domain.SellerSummary{Seller: record.Seller, Sum: decimal.Zero}
			groups[record.Seller] = group
		}
		group.Sum = group.Sum.Add(record.Price)
		group.Count++
	}

	table := make(SellerTable, 0, len(groups))
	for _, group := range groups {
		table = append(table, *group)
	}

	slices.SortFunc(table, func(a, b domain.SellerSummary) int {
		return strings.Compare(a.Seller, b.Seller)
	})

	return table
}

// ValidateTopSellers garante que o tamanho do ranking está entre 2 e 10
func ValidateTopSellers(n int) error {
	if n < domain.MinTopSellers || n > domain.MaxTopSellers {
		return domain.NewFilterError("top_sellers",
			fmt.Sprintf("deve estar entre %d e %d, recebido %d", domain.MinTopSellers, domain.MaxTopSellers, n))
	}
	return nil
}

// TopBySum retorna os n vendedores com maior receita
func (t SellerTable) TopBySum(n int) ([]domain.SellerSummary, error) {
	if err := ValidateTopSellers(n); err != nil {
		return nil, err
	}

	ranked := slices.Clone([]domain.SellerSummary(t))
	slices.SortFunc(ranked, func(a, b domain.SellerSummary) int {
		return descending(a.Sum, b.Sum, a.Seller, b.Seller)
	})

	return Head(ranked, n), nil
}

// TopByCount retorna os n vendedores com mais vendas
func (t SellerTable) TopByCount(n int) ([]domain.SellerSummary, error) {
	if err := ValidateTopSellers(n); err != nil {
		return nil, err
	}

	ranked := slices.Clone([]domain.SellerSummary(t))
	slices.SortFunc(ranked, func(a, b domain.SellerSummary) int {
		return descendingInt(a.Count, b.Count, a.Seller, b.Seller)
	})

	return Head(ranked, n), nil
}
