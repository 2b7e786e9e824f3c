package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
)

// ExportCachePurgeConfig representa a configuração do agendador de limpeza do cache de exportação
type ExportCachePurgeConfig struct {
	CronSchedule string
	Enabled      bool
}

// ExportCachePurgeService remove periodicamente os CSVs expirados do cache de exportação
type ExportCachePurgeService struct {
	scheduler            *gocron.Scheduler
	config               ExportCachePurgeConfig
	exporter             exporting.Exporter
	purgeRunning         bool
	purgeMutex           sync.Mutex
	lastPurgeStartedAt   time.Time
	lastPurgeCompletedAt time.Time
	lastPurgeRemoved     int
}

// NewExportCachePurgeService cria uma nova instância do agendador de limpeza
func NewExportCachePurgeService(exporter exporting.Exporter, appConfig *config.Config) *ExportCachePurgeService {
	purgeConfig := ExportCachePurgeConfig{
		CronSchedule: appConfig.ExportCachePurge.CronSchedule,
		Enabled:      appConfig.ExportCachePurge.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": purgeConfig.CronSchedule,
		"enabled":       purgeConfig.Enabled,
		"cache_ttl":     appConfig.Export.CacheTTL.String(),
	}).Info("Configuração do agendador de limpeza do cache de exportação carregada")

	return &ExportCachePurgeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    purgeConfig,
		exporter:  exporter,
	}
}

// Start inicia o agendador
func (s *ExportCachePurgeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do cache de exportação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do cache de exportação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeExpired()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache de exportação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do cache de exportação")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ExportCachePurgeService) purgeExpired() {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Limpeza do cache de exportação já em andamento, ignorando")
		return
	}
	s.purgeRunning = true
	s.lastPurgeStartedAt = time.Now()
	s.purgeMutex.Unlock()

	removed := s.exporter.PurgeExpired()

	s.purgeMutex.Lock()
	s.purgeRunning = false
	s.lastPurgeCompletedAt = time.Now()
	s.lastPurgeRemoved = removed
	duration := s.lastPurgeCompletedAt.Sub(s.lastPurgeStartedAt)
	s.purgeMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":     removed,
		"duration_ms": duration.Milliseconds(),
	}).Info("Limpeza do cache de exportação concluída")
}

// TriggerManualPurge dispara uma limpeza fora do agendamento
func (s *ExportCachePurgeService) TriggerManualPurge() {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Limpeza do cache de exportação já em andamento, ignorando solicitação manual")
		return
	}
	s.purgeMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do cache de exportação")
	go s.purgeExpired()
}

// GetStatus retorna o status atual da limpeza
func (s *ExportCachePurgeService) GetStatus() map[string]any {
	s.purgeMutex.Lock()
	defer s.purgeMutex.Unlock()

	return map[string]any{
		"purge_running":           s.purgeRunning,
		"purge_cron":              s.config.CronSchedule,
		"purge_enabled":           s.config.Enabled,
		"last_purge_started_at":   s.lastPurgeStartedAt,
		"last_purge_completed_at": s.lastPurgeCompletedAt,
		"last_purge_removed":      s.lastPurgeRemoved,
	}
}
