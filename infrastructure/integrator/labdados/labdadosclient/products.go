package labdadosclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	labdadosdomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/labdados/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProductsParams são os filtros aceitos pela API. Valores vazios não são enviados.
type ProductsParams struct {
	Region string // Região em minúsculas, ex: "sudeste"
	Year   int
}

type ProductsResponse []labdadosdomain.Product

func (c *LabDadosClient) GetProducts(ctx context.Context, params ProductsParams) (ProductsResponse, error) {
	var response ProductsResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.LabDados.URL)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL base")
	}

	query := endpoint.Query()
	if params.Region != "" {
		query.Set("regiao", params.Region)
	}
	if params.Year > 0 {
		query.Set("ano", strconv.Itoa(params.Year))
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, &domain.FetchError{URL: endpoint.String(), Err: err}
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, &domain.FetchError{
			URL:        endpoint.String(),
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("requisição falhou com status: %s", resp.Status),
		}
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &domain.ParseError{Index: -1, Err: errors.Wrap(err, "erro ao decodificar a resposta")}
	}

	return response, nil
}
