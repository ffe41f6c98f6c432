package services

import (
	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
)

// executionLock rejects nested entry into a protected operation. Callers are
// serialized by the transport layer, so a second entry while the lock is held
// can only come from a callback made during the first operation.
type executionLock struct {
	entered bool
}

func (l *executionLock) enter() error {
	if l.entered {
		return apperrors.ErrReentrancy
	}
	l.entered = true
	return nil
}

func (l *executionLock) exit() {
	l.entered = false
}

// unitOfWork records how to undo each mutation of an operation and stages the
// audit events it will emit once it completes.
type unitOfWork struct {
	undo   []func()
	events []domain.AuditEvent
}

func (u *unitOfWork) onRollback(fn func()) {
	u.undo = append(u.undo, fn)
}

func (u *unitOfWork) emit(event domain.AuditEvent) {
	u.events = append(u.events, event)
}

// rollback undoes every recorded mutation in reverse order and drops staged events.
func (u *unitOfWork) rollback() {
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.undo = nil
	u.events = nil
}

func (u *unitOfWork) commit() []domain.AuditEvent {
	events := u.events
	u.undo = nil
	u.events = nil
	return events
}
