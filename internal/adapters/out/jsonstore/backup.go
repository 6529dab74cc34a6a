package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"courierdesk/internal/core/ports"
)

// BackupFileLayout is the timestamp embedded in backup file names.
const BackupFileLayout = "20060102-150405"

// Backup writes point-in-time copies of the whole database as snapshot
// documents. It reads through a unit of work, so it serves the JSON and the
// Postgres backends alike.
type Backup struct {
	uowFactory ports.UnitOfWorkFactory
	dir        string
	logger     *slog.Logger
}

func NewBackup(uowFactory ports.UnitOfWorkFactory, dir string, logger *slog.Logger) (*Backup, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty backup directory", ErrSnapshotIO)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Backup{
		uowFactory: uowFactory,
		dir:        dir,
		logger:     logger.With("component", "jsonstore_backup"),
	}, nil
}

// Write exports the current data to <dir>/backup-<at>.json and returns the
// file path.
func (b *Backup) Write(ctx context.Context, at time.Time) (string, error) {
	snap, err := Export(ctx, b.uowFactory)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSnapshotMalformed, err)
	}

	path := filepath.Join(b.dir, "backup-"+at.Format(BackupFileLayout)+".json")
	if err = writeFileAtomic(path, data); err != nil {
		b.logger.ErrorContext(ctx, "failed to write backup", "path", path, "error", err)
		return "", fmt.Errorf("%w: %w", ErrSnapshotIO, err)
	}

	b.logger.InfoContext(ctx, "backup written", "path", path, "bytes", len(data))
	return path, nil
}

// Export reads every collection in one read session and returns them as a
// snapshot.
func Export(ctx context.Context, uowFactory ports.UnitOfWorkFactory) (Snapshot, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	couriers, err := uow.CourierRepository().FindAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	orders, err := uow.OrderRepository().FindAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	clients, err := uow.ClientRepository().FindAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	records, err := uow.HistoryRepository().FindAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := emptySnapshot()
	for _, u := range users {
		snap.Users = append(snap.Users, userToDTO(u))
	}
	for _, c := range couriers {
		snap.Couriers = append(snap.Couriers, courierToDTO(c))
	}
	for _, o := range orders {
		snap.Orders = append(snap.Orders, orderToDTO(o))
	}
	for _, c := range clients {
		snap.Clients = append(snap.Clients, clientToDTO(c))
	}
	for _, r := range records {
		snap.History = append(snap.History, historyToDTO(r))
	}
	return snap, nil
}
