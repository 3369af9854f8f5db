package scheduling

import (
	"context"
	"sync"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
)

// Store is the explicitly owned appointment list. The planner is its sole
// writer; readers work from per-query snapshots.
type Store interface {
	// Snapshot returns a copy of every appointment, cancelled ones included.
	Snapshot(ctx context.Context) ([]domain.Appointment, error)
	// Append commits a batch atomically: either every appointment is added
	// or none is.
	Append(ctx context.Context, appointments []domain.Appointment) error
	// Cancel soft-deletes by id and reports whether a non-cancelled
	// appointment with that id existed. Cancelling twice reports false.
	Cancel(ctx context.Context, id string) (bool, error)
}

// MemoryStore keeps the appointment list in process behind a mutex. It
// backs the core's tests and any deployment without a database.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments []domain.Appointment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Snapshot(ctx context.Context) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, appointments []domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, appointments...)
	return nil
}

// ListActive returns the non-cancelled appointments in insertion order.
func (s *MemoryStore) ListActive(ctx context.Context) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.Status != domain.AppointmentCancelled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemoryStore) Cancel(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id && s.appointments[i].Status != domain.AppointmentCancelled {
			s.appointments[i].Status = domain.AppointmentCancelled
			return true, nil
		}
	}
	return false, nil
}
