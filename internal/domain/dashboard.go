package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopSellers = 5
	MinTopSellers     = 2
	MaxTopSellers     = 10
)

type DashboardFilters struct {
	Region     Region   `json:"region"`
	Year       int      `json:"year,omitempty"`
	Sellers    []string `json:"sellers,omitempty"`
	TopSellers int      `json:"top_sellers"`
}

type DashboardMetrics struct {
	Revenue         decimal.Decimal `json:"revenue"`
	RevenueLabel    string          `json:"revenue_label"`
	SalesCount      int             `json:"sales_count"`
	SalesCountLabel string          `json:"sales_count_label"`
}

// DimensionTab agrupa as tabelas de uma aba (receita ou quantidade de vendas)
type DimensionTab struct {
	ByLocation    []LocationSummary `json:"by_location"`
	TopLocations  []LocationSummary `json:"top_locations"`
	Monthly       []MonthlySummary  `json:"monthly"`
	ByCategory    []CategorySummary `json:"by_category"`
	TopCategories []CategorySummary `json:"top_categories"`
}

type SellersTab struct {
	TopByRevenue []SellerSummary `json:"top_by_revenue"`
	TopBySales   []SellerSummary `json:"top_by_sales"`
}

type DashboardReport struct {
	Filters DashboardFilters `json:"filters"`
	Metrics DashboardMetrics `json:"metrics"`
	Revenue DimensionTab     `json:"revenue"`
	Sales   DimensionTab     `json:"sales"`
	Sellers SellersTab       `json:"sellers"`
}

type RawDataView struct {
	Columns     []Column         `json:"columns"`
	Rows        []map[string]any `json:"rows"`
	RowCount    int              `json:"row_count"`
	ColumnCount int              `json:"column_count"`
}

// FilterOptions alimenta os seletores da tela de dados brutos
type FilterOptions struct {
	Products        []string   `json:"products"`
	Categories      []string   `json:"categories"`
	Sellers         []string   `json:"sellers"`
	Locations       []string   `json:"locations"`
	PaymentTypes    []string   `json:"payment_types"`
	PurchaseDateMin *time.Time `json:"purchase_date_min,omitempty"`
	PurchaseDateMax *time.Time `json:"purchase_date_max,omitempty"`
	Columns         []Column   `json:"columns"`
	Regions         []Region   `json:"regions"`
}
