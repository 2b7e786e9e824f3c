// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reduction é a redução aplicada ao preço dentro de cada grupo
type Reduction int

const (
	ReductionSum Reduction = iota
	ReductionCount
)

func (r Reduction) String() string {
	if r == ReductionCount {
		return "count"
	}
	return "sum"
}

type LocationSummary struct {
	Location string          `json:"location"`
	Lat      float64         `json:"lat"`
	Lon      float64         `json:"lon"`
	Value    decimal.Decimal `json:"value"`
}

type MonthlySummary struct {
	Period    time.Time       `json:"period"` // Último dia do mês
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Value     decimal.Decimal `json:"value"`
}

type CategorySummary struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

type SellerSummary struct {
	Seller string          `json:"seller"`
	Sum    decimal.Decimal `json:"sum"`
	Count  int             `json:"count"`
}

type Totals struct {
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"sales_count"`
}
