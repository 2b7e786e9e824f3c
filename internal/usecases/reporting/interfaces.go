package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
)

// Reporter define a interface do painel de vendas
type Reporter interface {
	// GetDashboard monta métricas, tabelas de receita, de quantidade de vendas e de vendedores
	GetDashboard(ctx context.Context, params DashboardParams) (*domain.DashboardReport, error)

	// GetRawData aplica os filtros e a seleção de colunas sobre o conjunto completo
	GetRawData(ctx context.Context, params RawDataParams) (*domain.RawDataView, error)

	// GetFilterOptions retorna os valores disponíveis para cada filtro da tela de dados brutos
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)

	// ExportRawData codifica em CSV os dados brutos filtrados
	ExportRawData(ctx context.Context, params RawDataParams, filename string) (*ExportResult, error)

	// Regions lista as regiões aceitas pelo filtro do painel
	Regions() []domain.Region
}

type DashboardParams struct {
	Region     domain.Region
	Year       int      // Zero busca todo o período
	Sellers    []string // nil não filtra vendedores; vazio não aceita nenhum
	TopSellers int      // Zero usa o padrão configurado
}

type RawDataParams struct {
	Spec    domain.FilterSpec
	Columns []string // nil seleciona todas as colunas
}

type ExportResult struct {
	Filename string
	*exporting.Export
}
