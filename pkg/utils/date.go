package utils

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// ParseDate interpreta datas de parâmetros de consulta no formato yyyy-mm-dd
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParsePurchaseDate interpreta a data de compra no formato dd/mm/yyyy da fonte
func ParsePurchaseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.PurchaseDateLayout, strings.TrimSpace(dateStr))
}

// MonthEnd retorna o último dia do mês da data informada
func MonthEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// DateOnly descarta hora e fuso, mantendo apenas o dia
func DateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
