package repository

import (
	"sync"

	"github.com/William-datamaster/table-tennis/internal/models"
)

// RosterStore holds the read-only reference rosters for the session.
// Lists are published atomically by the roster loader: either both are
// set or both stay empty.
type RosterStore struct {
	mu       sync.RWMutex
	state    models.RosterState
	students []models.Student
	teachers []models.Teacher
	notice   *models.Notice
}

// NewRosterStore constructs a store in the loading state.
func NewRosterStore() *RosterStore {
	return &RosterStore{state: models.RosterStateLoading}
}

// Publish installs both rosters and marks the store ready.
func (s *RosterStore) Publish(students []models.Student, teachers []models.Teacher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = students
	s.teachers = teachers
	s.state = models.RosterStateReady
	s.notice = nil
}

// Fail marks the load failed, leaving both rosters empty. The notice is
// surfaced once through Status; repeated calls keep the first notice.
func (s *RosterStore) Fail(notice models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = nil
	s.teachers = nil
	s.state = models.RosterStateFailed
	s.notice = &notice
}

// Reset returns the store to the loading state ahead of a reload.
func (s *RosterStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.RosterStateLoading
	s.notice = nil
}

// State reports the current load state.
func (s *RosterStore) State() models.RosterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Status summarises the store for clients.
func (s *RosterStore) Status() models.RosterStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.RosterStatus{
		State:    s.state,
		Students: len(s.students),
		Teachers: len(s.teachers),
		Notice:   s.notice,
	}
}

// Students returns a copy of the student roster in load order.
func (s *RosterStore) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Teachers returns a copy of the teacher roster in load order.
func (s *RosterStore) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// FindStudent looks a student up by display name.
func (s *RosterStore) FindStudent(name string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.Name == name {
			return st, true
		}
	}
	return models.Student{}, false
}

// FindTeacher looks a teacher up by display name.
func (s *RosterStore) FindTeacher(name string) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teachers {
		if t.Name == name {
			return t, true
		}
	}
	return models.Teacher{}, false
}
