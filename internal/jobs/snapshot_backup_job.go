package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierdesk/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// BackupWriter writes one backup and returns where it went.
type BackupWriter interface {
	Write(ctx context.Context, at time.Time) (string, error)
}

// SnapshotBackupJob periodically copies the database to the backup directory.
type SnapshotBackupJob struct {
	writer   BackupWriter
	clock    ports.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSnapshotBackupJob(writer BackupWriter, clock ports.Clock, schedule string, logger *slog.Logger) *SnapshotBackupJob {
	return &SnapshotBackupJob{
		writer:   writer,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "snapshot_backup_job"),
	}
}

func (j *SnapshotBackupJob) Name() string { return "snapshot backup" }

// Run writes one backup now.
func (j *SnapshotBackupJob) Run(ctx context.Context) error {
	path, err := j.writer.Write(ctx, j.clock.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Snapshot backup failed", "error", err)
		return err
	}

	j.logger.InfoContext(ctx, "Snapshot backup written", "path", path)
	return nil
}

// Start schedules the job.
func (j *SnapshotBackupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot backup job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running backup to finish.
func (j *SnapshotBackupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot backup job stopped")
}
