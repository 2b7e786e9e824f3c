package domain

import "fmt"

// FetchError indica falha de transporte ou status não-2xx da API de dados
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("falha ao buscar dados em %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("falha ao buscar dados em %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indica payload malformado ou campo fora do formato esperado.
// Index é -1 quando o erro não pertence a um registro específico.
type ParseError struct {
	Field string
	Value string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("payload inválido: %v", e.Err)
	}
	return fmt.Sprintf("registro %d: valor %q inválido para %s: %v", e.Index, e.Value, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FilterError indica uma especificação de filtro malformada
type FilterError struct {
	Field  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filtro inválido para %s: %s", e.Field, e.Reason)
}

func NewFilterError(field string, reason string) *FilterError {
	return &FilterError{
		Field:  field,
		Reason: reason,
	}
}
