package labdadosdomain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Product é um registro de compra como devolvido pela API de produtos
type Product struct {
	Product      string          `json:"Produto"`
	Category     string          `json:"Categoria do Produto"`
	Price        decimal.Decimal `json:"Preço"`
	Freight      decimal.Decimal `json:"Frete"`
	PurchaseDate string          `json:"Data da Compra"`
	Seller       string          `json:"Vendedor"`
	Location     string          `json:"Local da compra"`
	Evaluation   int             `json:"Avaliação da compra"`
	PaymentType  string          `json:"Tipo de pagamento"`
	Installments int             `json:"Quantidade de parcelas"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
}

// ToPurchaseRecord converte o registro da API. index identifica o registro em caso de erro.
func (p Product) ToPurchaseRecord(index int) (domain.PurchaseRecord, error) {
	purchaseDate, err := utils.ParsePurchaseDate(p.PurchaseDate)
	if err != nil {
		return domain.PurchaseRecord{}, &domain.ParseError{
			Field: string(domain.ColumnPurchaseDate),
			Value: p.PurchaseDate,
			Index: index,
			Err:   errors.Wrap(err, "data fora do formato dd/mm/yyyy"),
		}
	}

	return domain.PurchaseRecord{
		Product:      p.Product,
		Category:     p.Category,
		Price:        p.Price,
		Freight:      p.Freight,
		PurchaseDate: purchaseDate,
		Seller:       p.Seller,
		Location:     p.Location,
		Lat:          p.Lat,
		Lon:          p.Lon,
		Evaluation:   p.Evaluation,
		PaymentType:  p.PaymentType,
		Installments: p.Installments,
	}, nil
}

// ToRecordSet converte todos os registros, interrompendo no primeiro erro
func ToRecordSet(products []Product) (domain.RecordSet, error) {
	records := make(domain.RecordSet, 0, len(products))
	for i, product := range products {
		record, err := product.ToPurchaseRecord(i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
