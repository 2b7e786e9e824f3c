package labdados

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	labdadosdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados/labdadosclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type LabDadosIntegrator interface {
	// GetPurchases busca os registros de compra aplicando os filtros de região e ano da própria API
	GetPurchases(ctx context.Context, filters domain.FetchFilters) (domain.RecordSet, error)
}

type LabDadosService struct {
	cfg    *config.Config
	Client labdadosclient.Client
}

func New(cfg *config.Config, client labdadosclient.Client) LabDadosIntegrator {
	return &LabDadosService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *LabDadosService) GetPurchases(ctx context.Context, filters domain.FetchFilters) (domain.RecordSet, error) {
	filters, err := filters.Normalize()
	if err != nil {
		return nil, err
	}

	params := labdadosclient.ProductsParams{
		Region: filters.Region.QueryValue(),
		Year:   filters.Year,
	}

	start := time.Now()
	products, err := s.Client.GetProducts(ctx, params)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"region": params.Region,
			"year":   params.Year,
		}).Error("Erro ao buscar produtos na LabDados")
		return nil, err
	}

	records, err := labdadosdomain.ToRecordSet(products)
	if err != nil {
		logrus.WithError(err).Error("Erro ao converter produtos da LabDados")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"region":      params.Region,
		"year":        params.Year,
		"records":     len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Produtos carregados da LabDados")

	return records, nil
}
