package utils

import "github.com/shopspring/decimal"

// amountUnits é a escada de unidades do painel. Valores que passam de "mil"
// são sempre rotulados como milhões, mesmo acima de um bilhão.
var amountUnits = []string{"", "mil"}

const largestAmountUnit = "milhões"

var thousand = decimal.NewFromInt(1000)

// FormatAmount formata um valor como "{prefix} {valor} {unidade}" com duas casas decimais
func FormatAmount(amount decimal.Decimal, prefix string) string {
	for _, unit := range amountUnits {
		if amount.LessThan(thousand) {
			return withPrefix(prefix, amount.StringFixed(2)+" "+unit)
		}
		amount = amount.Div(thousand)
	}

	return withPrefix(prefix, amount.StringFixed(2)+" "+largestAmountUnit)
}

// FormatCount formata uma contagem com a mesma escada de FormatAmount
func FormatCount(count int) string {
	return FormatAmount(decimal.NewFromInt(int64(count)), "")
}

func withPrefix(prefix string, value string) string {
	if prefix == "" {
		return value
	}
	return prefix + " " + value
}
