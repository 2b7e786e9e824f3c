package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseDateLayout é o formato das datas de compra no payload da LabDados (dd/mm/yyyy)
const PurchaseDateLayout = "02/01/2006"

// PurchaseRecord representa uma venda individual do conjunto de dados
type PurchaseRecord struct {
	Product      string          `json:"product"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Freight      decimal.Decimal `json:"freight"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Seller       string          `json:"seller"`
	Location     string          `json:"location"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
	Evaluation   int             `json:"evaluation"`
	PaymentType  string          `json:"payment_type"`
	Installments int             `json:"installments"`
}

// RecordSet mantém a ordem de chegada da fonte. Filtrar sempre gera um novo RecordSet.
type RecordSet []PurchaseRecord

// Fingerprint identifica o conteúdo do conjunto: dois RecordSets com os mesmos
// registros na mesma ordem produzem o mesmo valor.
func (rs RecordSet) Fingerprint() string {
	h := sha256.New()
	for _, record := range rs {
		for _, column := range Columns {
			h.Write([]byte(column.Field(record)))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// PurchaseDateRange retorna a menor e a maior data de compra do conjunto
func (rs RecordSet) PurchaseDateRange() (minDate, maxDate *time.Time) {
	for i := range rs {
		date := rs[i].PurchaseDate
		if minDate == nil || date.Before(*minDate) {
			minDate = &rs[i].PurchaseDate
		}
		if maxDate == nil || date.After(*maxDate) {
			maxDate = &rs[i].PurchaseDate
		}
	}
	return minDate, maxDate
}
