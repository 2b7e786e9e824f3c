package domain

import (
	"slices"
	"strconv"
	"time"
)

// Column é uma coluna da fonte, identificada pelo nome original do payload
type Column string

const (
	ColumnProduct      Column = "Produto"
	ColumnCategory     Column = "Categoria do Produto"
	ColumnPrice        Column = "Preço"
	ColumnFreight      Column = "Frete"
	ColumnPurchaseDate Column = "Data da Compra"
	ColumnSeller       Column = "Vendedor"
	ColumnLocation     Column = "Local da compra"
	ColumnEvaluation   Column = "Avaliação da compra"
	ColumnPaymentType  Column = "Tipo de pagamento"
	ColumnInstallments Column = "Quantidade de parcelas"
	ColumnLat          Column = "lat"
	ColumnLon          Column = "lon"
)

// ExportDateLayout é o formato das datas serializadas na exportação
const ExportDateLayout = time.DateOnly

// Columns segue a ordem das colunas no payload da LabDados
var Columns = []Column{
	ColumnProduct,
	ColumnCategory,
	ColumnPrice,
	ColumnFreight,
	ColumnPurchaseDate,
	ColumnSeller,
	ColumnLocation,
	ColumnEvaluation,
	ColumnPaymentType,
	ColumnInstallments,
	ColumnLat,
	ColumnLon,
}

// ParseColumn localiza a coluna pelo nome exato
func ParseColumn(name string) (Column, bool) {
	for _, column := range Columns {
		if string(column) == name {
			return column, true
		}
	}
	return "", false
}

// Field renderiza o valor da coluna como campo de texto da exportação
func (c Column) Field(r PurchaseRecord) string {
	switch c {
	case ColumnProduct:
		return r.Product
	case ColumnCategory:
		return r.Category
	case ColumnPrice:
		return r.Price.String()
	case ColumnFreight:
		return r.Freight.String()
	case ColumnPurchaseDate:
		return r.PurchaseDate.Format(ExportDateLayout)
	case ColumnSeller:
		return r.Seller
	case ColumnLocation:
		return r.Location
	case ColumnEvaluation:
		return strconv.Itoa(r.Evaluation)
	case ColumnPaymentType:
		return r.PaymentType
	case ColumnInstallments:
		return strconv.Itoa(r.Installments)
	case ColumnLat:
		return strconv.FormatFloat(r.Lat, 'f', -1, 64)
	case ColumnLon:
		return strconv.FormatFloat(r.Lon, 'f', -1, 64)
	}
	return ""
}

// Value retorna o valor tipado da coluna para respostas JSON
func (c Column) Value(r PurchaseRecord) any {
	switch c {
	case ColumnPrice:
		return r.Price
	case ColumnFreight:
		return r.Freight
	case ColumnEvaluation:
		return r.Evaluation
	case ColumnInstallments:
		return r.Installments
	case ColumnLat:
		return r.Lat
	case ColumnLon:
		return r.Lon
	}
	return c.Field(r)
}

// ResolveColumns converte a seleção de colunas. nil seleciona todas; uma seleção
// vazia, nomes desconhecidos ou repetidos são rejeitados.
func ResolveColumns(names []string) ([]Column, error) {
	if names == nil {
		return slices.Clone(Columns), nil
	}

	if len(names) == 0 {
		return nil, NewFilterError("columns", "selecione ao menos uma coluna")
	}

	columns := make([]Column, 0, len(names))
	for _, name := range names {
		column, ok := ParseColumn(name)
		if !ok {
			return nil, NewFilterError("columns", "coluna desconhecida: "+name)
		}
		if slices.Contains(columns, column) {
			return nil, NewFilterError("columns", "coluna repetida: "+name)
		}
		columns = append(columns, column)
	}

	return columns, nil
}
