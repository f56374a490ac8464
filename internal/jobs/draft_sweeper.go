package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sithum-sy/hireme-client/internal/config"
	"github.com/sithum-sy/hireme-client/internal/draft"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DraftSweeperJob periodically purges expired drafts from the local cache.
// Expiry at load time keeps stale drafts out of forms; the sweeper keeps the
// cache file from growing with drafts nobody ever loads again.
type DraftSweeperJob struct {
	draftService  *draft.Service
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewDraftSweeperJob creates a new DraftSweeperJob.
func NewDraftSweeperJob(
	draftService *draft.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *DraftSweeperJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &DraftSweeperJob{
		draftService:  draftService,
		logger:        logger.Named("DraftSweeperJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *DraftSweeperJob) SetupAndStart() error {
	jobSpec := j.cfg.DraftSweepSchedule // e.g., "@hourly", "0 * * * *"
	if jobSpec == "" {
		j.logger.Warn("Draft sweep schedule not defined (DRAFT_SWEEP_SCHEDULE). Job will not run.")
		return nil // Not a fatal error, just won't run
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule draft sweep job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Draft sweep job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *DraftSweeperJob) runJob() {
	j.logger.Info("Starting draft sweep run...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := j.draftService.PurgeExpired(ctx)
	if err != nil {
		j.logger.Error("Draft sweep run failed", zap.Error(err))
	} else {
		j.logger.Info("Draft sweep run completed", zap.Int64("drafts_purged", purged))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *DraftSweeperJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping draft sweep scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Draft sweep scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Draft sweep scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
