package models

import (
	"fmt"
	"time"
)

// DateLayout is the day-granularity format used everywhere a lesson date
// crosses the API boundary or lands in an export.
const DateLayout = "2006-01-02"

// FilterAll is the sentinel value meaning "no restriction" for a name
// filter dimension. An empty string is treated the same way.
const FilterAll = "_all"

// LessonRecord is one recorded practice session. Records are never
// mutated in place; edits are modeled as delete-then-add by the client.
type LessonRecord struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	TeacherName string    `json:"teacher_name"`
	Hours       int       `json:"hours"`
	Minutes     int       `json:"minutes"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// DurationLabel renders the practice duration the way the exported
// spreadsheet displays it.
func (r LessonRecord) DurationLabel() string {
	return fmt.Sprintf("%d小時%d分鐘", r.Hours, r.Minutes)
}

// FilterCriteria narrows the ledger view. Each dimension is independent;
// its zero value (or FilterAll for names) matches everything.
type FilterCriteria struct {
	Student string
	Teacher string
	Date    *time.Time
}

// Matches reports whether the record satisfies every active dimension.
// Dates compare at day granularity.
func (f FilterCriteria) Matches(r LessonRecord) bool {
	if f.Student != "" && f.Student != FilterAll && r.StudentName != f.Student {
		return false
	}
	if f.Teacher != "" && f.Teacher != FilterAll && r.TeacherName != f.Teacher {
		return false
	}
	if f.Date != nil && !sameDay(*f.Date, r.Date) {
		return false
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}
