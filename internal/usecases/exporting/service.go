package exporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"golang.org/x/sync/singleflight"
)

const defaultFilename = "dados"

// Exporter define a interface de codificação dos dados brutos em CSV
type Exporter interface {
	// Encode codifica os registros nas colunas informadas, reaproveitando o resultado em cache
	Encode(records domain.RecordSet, columns []domain.Column) (*Export, error)

	// PurgeExpired remove do cache as exportações vencidas e retorna quantas foram removidas
	PurgeExpired() int
}

// Export é o resultado de uma codificação. Data não deve ser alterado por quem recebe.
type Export struct {
	Data        []byte
	Rows        int
	Columns     []domain.Column
	Fingerprint string
	CreatedAt   time.Time
}

type Service struct {
	cache *lru.Cache[string, *Export]
	group singleflight.Group
	ttl   time.Duration
	now   func() time.Time
}

// NewService cria o serviço de exportação com cache limitado por tamanho e validade
func NewService(cfg *config.Config) (*Service, error) {
	cache, err := lru.New[string, *Export](cfg.Export.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cache de exportação")
	}

	return &Service{
		cache: cache,
		ttl:   cfg.Export.CacheTTL,
		now:   time.Now,
	}, nil
}

func (s *Service) Encode(records domain.RecordSet, columns []domain.Column) (*Export, error) {
	if len(columns) == 0 {
		return nil, domain.NewFilterError("columns", "selecione ao menos uma coluna")
	}

	fingerprint := records.Fingerprint()
	key := cacheKey(fingerprint, columns)

	if export, ok := s.lookup(key); ok {
		logrus.WithFields(logrus.Fields{
			"fingerprint": fingerprint,
			"rows":        export.Rows,
		}).Debug("Exportação reaproveitada do cache")
		return export, nil
	}

	result, err, shared := s.group.Do(key, func() (any, error) {
		if export, ok := s.lookup(key); ok {
			return export, nil
		}

		data, err := encode(records, columns)
		if err != nil {
			return nil, err
		}

		export := &Export{
			Data:        data,
			Rows:        len(records),
			Columns:     columns,
			Fingerprint: fingerprint,
			CreatedAt:   s.now(),
		}
		s.cache.Add(key, export)

		return export, nil
	})
	if err != nil {
		return nil, err
	}

	export := result.(*Export)

	logrus.WithFields(logrus.Fields{
		"fingerprint": fingerprint,
		"rows":        export.Rows,
		"columns":     len(columns),
		"bytes":       len(export.Data),
		"shared":      shared,
	}).Debug("Exportação codificada")

	return export, nil
}

func (s *Service) PurgeExpired() int {
	removed := 0
	for _, key := range s.cache.Keys() {
		export, ok := s.cache.Peek(key)
		if ok && s.expired(export) {
			s.cache.Remove(key)
			removed++
		}
	}
	return removed
}

func (s *Service) lookup(key string) (*Export, bool) {
	export, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}

	if s.expired(export) {
		s.cache.Remove(key)
		return nil, false
	}

	return export, true
}

func (s *Service) expired(export *Export) bool {
	return s.now().Sub(export.CreatedAt) >= s.ttl
}

func cacheKey(fingerprint string, columns []domain.Column) string {
	var b strings.Builder
	b.WriteString(fingerprint)
	for _, column := range columns {
		b.WriteByte(0x1f)
		b.WriteString(string(column))
	}
	return b.String()
}

// encode gera o CSV: cabeçalho com os nomes das colunas e uma linha por registro
func encode(records domain.RecordSet, columns []domain.Column) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	row := make([]string, len(columns))
	for i, column := range columns {
		row[i] = string(column)
	}
	if err := writer.Write(row); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for _, record := range records {
		for i, column := range columns {
			row[i] = column.Field(record)
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar CSV")
	}

	return buf.Bytes(), nil
}

// EnsureCSVFilename sanitiza o nome informado e garante a extensão .csv
func EnsureCSVFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\r', '\n':
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	if strings.TrimSuffix(strings.ToLower(name), ".csv") == "" {
		name = defaultFilename
	}

	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}

	return name
}
