package jsonstore

import (
	"context"
	"errors"

	"courierdesk/internal/core/ports"
)

// ErrUnitOfWorkNotActive is returned by Commit and Rollback without a prior
// Begin, and by session repositories used after the session ended.
var ErrUnitOfWorkNotActive = errors.New("unit of work is not active")

// UnitOfWorkFactory creates units of work bound to one store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is one snapshot session. Begin takes the store mutex and loads
// the document; repositories obtained afterwards work on that in-memory copy.
// Commit writes the copy back if anything changed and releases the mutex.
//
// A UnitOfWork must not be shared between goroutines, and the goroutine that
// began it must not use direct repositories of the same store until the
// session ends.
type UnitOfWork struct {
	store  *Store
	active bool
	dirty  bool
	snap   Snapshot
}

// Begin is a no-op when the session is already active.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	snap, err := u.store.load(ctx)
	if err != nil {
		u.store.mu.Unlock()
		return err
	}

	u.snap = snap
	u.active = true
	u.dirty = false
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrUnitOfWorkNotActive
	}
	defer u.release()

	if !u.dirty {
		return nil
	}
	return u.store.save(ctx, u.snap)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrUnitOfWorkNotActive
	}
	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.active = false
	u.dirty = false
	u.snap = Snapshot{}
	u.store.mu.Unlock()
}

func (u *UnitOfWork) access() snapshotAccess {
	if u.active {
		return sessionAccess{uow: u}
	}
	return directAccess{store: u.store}
}

func (u *UnitOfWork) ClientRepository() ports.ClientRepository {
	return &ClientRepository{access: u.access()}
}

func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return &CourierRepository{access: u.access()}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{access: u.access()}
}

func (u *UnitOfWork) HistoryRepository() ports.HistoryRepository {
	return &HistoryRepository{access: u.access()}
}

func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{access: u.access()}
}

type sessionAccess struct {
	uow *UnitOfWork
}

func (a sessionAccess) view(ctx context.Context, fn func(*Snapshot) error) error {
	if !a.uow.active {
		return ErrUnitOfWorkNotActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(&a.uow.snap)
}

// modify applies fn to a copy so that a failing fn leaves the session as it was.
func (a sessionAccess) modify(ctx context.Context, fn func(*Snapshot) error) error {
	if !a.uow.active {
		return ErrUnitOfWorkNotActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	next := a.uow.snap.clone()
	if err := fn(&next); err != nil {
		return err
	}
	a.uow.snap = next
	a.uow.dirty = true
	return nil
}
