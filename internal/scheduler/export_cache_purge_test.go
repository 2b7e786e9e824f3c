package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
)

type fakeExporter struct {
	purges  atomic.Int32
	removed int
}

func (f *fakeExporter) Encode(domain.RecordSet, []domain.Column) (*exporting.Export, error) {
	return &exporting.Export{}, nil
}

func (f *fakeExporter) PurgeExpired() int {
	f.purges.Add(1)
	return f.removed
}

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		Export:           config.Export{CacheSize: 1, CacheTTL: time.Minute},
		ExportCachePurge: config.ExportCachePurge{CronSchedule: "*/15 * * * *", Enabled: enabled},
	}
}

func TestExportCachePurgeService_purgeExpired(t *testing.T) {
	exporter := &fakeExporter{removed: 3}
	service := NewExportCachePurgeService(exporter, testConfig(false))

	service.purgeExpired()

	status := service.GetStatus()
	assert.Equal(t, int32(1), exporter.purges.Load())
	assert.Equal(t, 3, status["last_purge_removed"])
	assert.Equal(t, false, status["purge_running"])
	assert.False(t, status["last_purge_completed_at"].(time.Time).IsZero())
}

func TestExportCachePurgeService_purgeExpired_EmAndamento(t *testing.T) {
	exporter := &fakeExporter{}
	service := NewExportCachePurgeService(exporter, testConfig(false))
	service.purgeRunning = true

	service.purgeExpired()

	assert.Equal(t, int32(0), exporter.purges.Load())
}

func TestExportCachePurgeService_TriggerManualPurge(t *testing.T) {
	exporter := &fakeExporter{}
	service := NewExportCachePurgeService(exporter, testConfig(false))

	service.TriggerManualPurge()

	assert.Eventually(t, func() bool {
		return exporter.purges.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestExportCachePurgeService_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := NewExportCachePurgeService(&fakeExporter{}, testConfig(false))
	assert.NoError(t, disabled.Start(ctx))
	assert.False(t, disabled.scheduler.IsRunning())

	enabled := NewExportCachePurgeService(&fakeExporter{}, testConfig(true))
	assert.NoError(t, enabled.Start(ctx))
	assert.True(t, enabled.scheduler.IsRunning())

	invalid := testConfig(true)
	invalid.ExportCachePurge.CronSchedule = "não é cron"
	assert.Error(t, NewExportCachePurgeService(&fakeExporter{}, invalid).Start(ctx))
}
