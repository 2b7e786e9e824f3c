package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field é um campo filtrável do registro de compra
type Field string

const (
	FieldProduct      Field = "product"
	FieldCategory     Field = "category"
	FieldPrice        Field = "price"
	FieldFreight      Field = "freight"
	FieldPurchaseDate Field = "purchase_date"
	FieldSeller       Field = "seller"
	FieldLocation     Field = "location"
	FieldRegion       Field = "region"
	FieldEvaluation   Field = "evaluation"
	FieldPaymentType  Field = "payment_type"
	FieldInstallments Field = "installments"
)

// FieldKind define qual tipo de predicado um campo aceita
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindDate
)

var fieldKinds = map[Field]FieldKind{
	FieldProduct:      KindText,
	FieldCategory:     KindText,
	FieldSeller:       KindText,
	FieldLocation:     KindText,
	FieldRegion:       KindText,
	FieldPaymentType:  KindText,
	FieldPrice:        KindNumber,
	FieldFreight:      KindNumber,
	FieldEvaluation:   KindNumber,
	FieldInstallments: KindNumber,
	FieldPurchaseDate: KindDate,
}

// Fields lista os campos filtráveis em ordem estável
var Fields = []Field{
	FieldProduct,
	FieldCategory,
	FieldPrice,
	FieldFreight,
	FieldPurchaseDate,
	FieldSeller,
	FieldLocation,
	FieldRegion,
	FieldEvaluation,
	FieldPaymentType,
	FieldInstallments,
}

func (f Field) Kind() (FieldKind, bool) {
	kind, ok := fieldKinds[f]
	return kind, ok
}

// Predicate é uma variante fechada: Membership, NumberRange ou DateRange
type Predicate interface {
	kind() FieldKind
}

// Membership aceita os valores listados. Um conjunto vazio não aceita nenhum registro.
type Membership struct {
	Values []string
}

// NumberRange é o intervalo fechado [Lo, Hi]
type NumberRange struct {
	Lo decimal.Decimal
	Hi decimal.Decimal
}

// DateRange é o intervalo fechado [From, To] com precisão de dia
type DateRange struct {
	From time.Time
	To   time.Time
}

func (Membership) kind() FieldKind  { return KindText }
func (NumberRange) kind() FieldKind { return KindNumber }
func (DateRange) kind() FieldKind   { return KindDate }

func NewMembership(values ...string) Membership {
	if values == nil {
		values = []string{}
	}
	return Membership{Values: values}
}

func NewNumberRange(lo, hi decimal.Decimal) NumberRange {
	return NumberRange{Lo: lo, Hi: hi}
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: from, To: to}
}

// FilterSpec é a conjunção de predicados por campo. Campo ausente não restringe.
type FilterSpec map[Field]Predicate

// Validate rejeita campos desconhecidos, predicados incompatíveis e intervalos invertidos
func (s FilterSpec) Validate() error {
	for field, predicate := range s {
		kind, ok := field.Kind()
		if !ok {
			return NewFilterError(string(field), "campo desconhecido")
		}

		if predicate == nil {
			return NewFilterError(string(field), "predicado ausente")
		}

		if predicate.kind() != kind {
			return NewFilterError(string(field), fmt.Sprintf("predicado %T incompatível com o campo", predicate))
		}

		switch p := predicate.(type) {
		case Membership:
			if field == FieldRegion {
				if err := validateRegions(p.Values); err != nil {
					return err
				}
			}
		case NumberRange:
			if p.Lo.GreaterThan(p.Hi) {
				return NewFilterError(string(field), fmt.Sprintf("intervalo invertido [%s, %s]", p.Lo, p.Hi))
			}
		case DateRange:
			if p.From.After(p.To) {
				return NewFilterError(string(field), fmt.Sprintf("intervalo invertido [%s, %s]",
					p.From.Format(time.DateOnly), p.To.Format(time.DateOnly)))
			}
		}
	}

	return nil
}

// validateRegions exige nomes de região conhecidos, sem diferenciar maiúsculas
func validateRegions(values []string) error {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return NewFilterError(string(FieldRegion), "região vazia")
		}
		if _, err := ParseRegion(value); err != nil {
			return err
		}
	}
	return nil
}
