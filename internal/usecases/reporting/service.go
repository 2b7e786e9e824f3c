package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const revenuePrefix = "R$"

type Service struct {
	cfg             *config.Config
	labdadosService labdados.LabDadosIntegrator
	exporter        exporting.Exporter
}

// NewService cria uma nova instância do serviço do painel
func NewService(
	cfg *config.Config,
	labdadosService labdados.LabDadosIntegrator,
	exporter exporting.Exporter,
) Reporter {
	return &Service{
		cfg:             cfg,
		labdadosService: labdadosService,
		exporter:        exporter,
	}
}

func (s *Service) GetDashboard(ctx context.Context, params DashboardParams) (*domain.DashboardReport, error) {
	logger := log.ForContext(ctx)

	topSellers := params.TopSellers
	if topSellers == 0 {
		topSellers = s.cfg.Dashboard.TopSellers
	}
	if err := aggregating.ValidateTopSellers(topSellers); err != nil {
		return nil, err
	}

	region := params.Region
	if region == "" {
		region = domain.RegionBrazil
	}

	records, err := s.labdadosService.GetPurchases(ctx, domain.FetchFilters{
		Region: region,
		Year:   params.Year,
	})
	if err != nil {
		return nil, err
	}

	if params.Sellers != nil {
		records, err = filtering.Apply(records, domain.FilterSpec{
			domain.FieldSeller: domain.NewMembership(params.Sellers...),
		})
		if err != nil {
			return nil, err
		}
	}

	totals := aggregating.Totals(records)
	sellers := aggregating.BySeller(records)

	topByRevenue, err := sellers.TopBySum(topSellers)
	if err != nil {
		return nil, err
	}

	topBySales, err := sellers.TopByCount(topSellers)
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		Filters: domain.DashboardFilters{
			Region:     region,
			Year:       params.Year,
			Sellers:    params.Sellers,
			TopSellers: topSellers,
		},
		Metrics: domain.DashboardMetrics{
			Revenue:         totals.Revenue,
			RevenueLabel:    utils.FormatAmount(totals.Revenue, revenuePrefix),
			SalesCount:      totals.SalesCount,
			SalesCountLabel: utils.FormatCount(totals.SalesCount),
		},
		Revenue: s.dimensionTab(records, domain.ReductionSum),
		Sales:   s.dimensionTab(records, domain.ReductionCount),
		Sellers: domain.SellersTab{
			TopByRevenue: topByRevenue,
			TopBySales:   topBySales,
		},
	}

	logger.WithFields(log.Fields{
		"region":      region,
		"year":        params.Year,
		"records":     totals.SalesCount,
		"top_sellers": topSellers,
	}).Info("dashboard: relatório montado")

	return report, nil
}

func (s *Service) dimensionTab(records domain.RecordSet, reduction domain.Reduction) domain.DimensionTab {
	byLocation := aggregating.ByLocation(records, reduction)
	byCategory := aggregating.ByCategory(records, reduction)

	return domain.DimensionTab{
		ByLocation:    byLocation,
		TopLocations:  aggregating.Head(byLocation, s.cfg.Dashboard.TopEntries),
		Monthly:       aggregating.ByMonth(records, reduction),
		ByCategory:    byCategory,
		TopCategories: aggregating.Head(byCategory, s.cfg.Dashboard.TopEntries),
	}
}

func (s *Service) GetRawData(ctx context.Context, params RawDataParams) (*domain.RawDataView, error) {
	records, columns, err := s.loadRawData(ctx, params)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		row := make(map[string]any, len(columns))
		for _, column := range columns {
			row[string(column)] = column.Value(record)
		}
		rows = append(rows, row)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"rows":    len(rows),
		"columns": len(columns),
		"filters": len(params.Spec),
	}).Info("raw-data: dados filtrados")

	return &domain.RawDataView{
		Columns:     columns,
		Rows:        rows,
		RowCount:    len(rows),
		ColumnCount: len(columns),
	}, nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	records, err := s.labdadosService.GetPurchases(ctx, domain.FetchFilters{Region: domain.RegionBrazil})
	if err != nil {
		return nil, err
	}

	minDate, maxDate := records.PurchaseDateRange()

	return &domain.FilterOptions{
		Products:        filtering.Distinct(records, domain.FieldProduct),
		Categories:      filtering.Distinct(records, domain.FieldCategory),
		Sellers:         filtering.Distinct(records, domain.FieldSeller),
		Locations:       filtering.Distinct(records, domain.FieldLocation),
		PaymentTypes:    filtering.Distinct(records, domain.FieldPaymentType),
		PurchaseDateMin: minDate,
		PurchaseDateMax: maxDate,
		Columns:         domain.Columns,
		Regions:         domain.Regions,
	}, nil
}

func (s *Service) ExportRawData(ctx context.Context, params RawDataParams, filename string) (*ExportResult, error) {
	records, columns, err := s.loadRawData(ctx, params)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	export, err := s.exporter.Encode(records, columns)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Filename: exporting.EnsureCSVFilename(filename),
		Export:   export,
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"filename":    result.Filename,
		"rows":        export.Rows,
		"bytes":       len(export.Data),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("export: arquivo gerado")

	return result, nil
}

func (s *Service) Regions() []domain.Region {
	return domain.Regions
}

// loadRawData busca o conjunto completo, sem filtros de região e ano, e aplica a especificação
func (s *Service) loadRawData(ctx context.Context, params RawDataParams) (domain.RecordSet, []domain.Column, error) {
	columns, err := domain.ResolveColumns(params.Columns)
	if err != nil {
		return nil, nil, err
	}

	if err := params.Spec.Validate(); err != nil {
		return nil, nil, err
	}

	records, err := s.labdadosService.GetPurchases(ctx, domain.FetchFilters{Region: domain.RegionBrazil})
	if err != nil {
		return nil, nil, err
	}

	filtered, err := filtering.Apply(records, params.Spec)
	if err != nil {
		return nil, nil, err
	}

	return filtered, columns, nil
}
