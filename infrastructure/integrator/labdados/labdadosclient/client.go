package labdadosclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type Client interface {
	GetProducts(ctx context.Context, params ProductsParams) (ProductsResponse, error)
}

type LabDadosClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de produtos
func NewClient(cfg *config.Config) Client {
	return &LabDadosClient{
		httpClient: &http.Client{
			Timeout: cfg.LabDados.Timeout,
		},
		config: cfg,
	}
}
