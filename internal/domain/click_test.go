package domain

import (
	"testing"
	"time"
)

func TestPeriodSince(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period Period
		want   *time.Time
	}{
		{name: "week is 7 rolling days", period: PeriodWeek, want: ptrTime(now.Add(-7 * 24 * time.Hour))},
		{name: "month is 30 rolling days", period: PeriodMonth, want: ptrTime(now.Add(-30 * 24 * time.Hour))},
		{name: "all is unbounded", period: PeriodAll, want: nil},
		{name: "empty is unbounded", period: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.period.Since(now)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Since() = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Since() = nil, want %v", *tt.want)
			case tt.want != nil && !got.Equal(*tt.want):
				t.Errorf("Since() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestPeriodWeekBoundary(t *testing.T) {
	now := time.Now()
	since := PeriodWeek.Since(now)

	eightDaysAgo := now.Add(-8 * 24 * time.Hour)
	sixDaysAgo := now.Add(-6 * 24 * time.Hour)

	if !eightDaysAgo.Before(*since) {
		t.Error("an event 8 days old should fall outside the week window")
	}
	if sixDaysAgo.Before(*since) {
		t.Error("an event 6 days old should fall inside the week window")
	}
}

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskTodo, TaskInProgress, TaskDone} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if TaskStatus("archived").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestTaskPatchEmpty(t *testing.T) {
	title := "x"
	if !(TaskPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}
	if (TaskPatch{Title: &title}).Empty() {
		t.Error("patch with a title should not be empty")
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
