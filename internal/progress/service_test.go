package progress

import (
	"testing"
	"time"

	"github.com/coursetrail/coursetrail/internal/storage/local"
)

func testService(t *testing.T) *Service {
	t.Helper()
	kv, err := local.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return NewService(kv)
}

func TestService_InitCourseProgress_Idempotent(t *testing.T) {
	svc := testService(t)

	if err := svc.InitCourseProgress("c1", "Course 1", 4); err != nil {
		t.Fatalf("InitCourseProgress() error = %v", err)
	}
	svc.UpdateLessonProgress("c1", "l1", true)

	// Re-init must not reset the existing record.
	if err := svc.InitCourseProgress("c1", "Renamed", 9); err != nil {
		t.Fatal(err)
	}

	record := svc.Get("c1")
	if record.CourseTitle != "Course 1" {
		t.Errorf("CourseTitle = %q, want original kept", record.CourseTitle)
	}
	if record.Progress != 25 {
		t.Errorf("Progress = %d, want 25", record.Progress)
	}
}

func TestService_UpdateLessonProgress_RequiresInit(t *testing.T) {
	svc := testService(t)

	// Update without init is silently dropped.
	if err := svc.UpdateLessonProgress("c1", "l1", true); err != nil {
		t.Fatalf("UpdateLessonProgress() error = %v, want nil no-op", err)
	}
	if svc.Get("c1") != nil {
		t.Error("record created without init")
	}
}

func TestService_UpdateLessonProgress(t *testing.T) {
	svc := testService(t)

	svc.InitCourseProgress("c1", "Course 1", 3)
	svc.UpdateLessonProgress("c1", "l1", true)
	svc.UpdateLessonProgress("c1", "l2", true)

	record := svc.Get("c1")
	if record.Progress != 67 {
		t.Errorf("Progress = %d, want 67", record.Progress)
	}

	// Completing the same lesson twice adds no duplicate.
	svc.UpdateLessonProgress("c1", "l2", true)
	if got := len(svc.Get("c1").CompletedLessons); got != 2 {
		t.Errorf("CompletedLessons = %d entries, want 2", got)
	}

	// Unmarking removes it again.
	svc.UpdateLessonProgress("c1", "l2", false)
	record = svc.Get("c1")
	if record.Progress != 33 {
		t.Errorf("Progress after unmark = %d, want 33", record.Progress)
	}

	svc.UpdateLessonProgress("c1", "l2", true)
	svc.UpdateLessonProgress("c1", "l3", true)
	record = svc.Get("c1")
	if !record.Completed || record.Progress != 100 {
		t.Errorf("completed = %v progress = %d, want true/100", record.Completed, record.Progress)
	}
}

func TestService_SetCourseProgress(t *testing.T) {
	svc := testService(t)

	svc.InitCourseProgress("c1", "Course 1", 10)
	if err := svc.SetCourseProgress("c1", 100, []string{"l1", "l2"}); err != nil {
		t.Fatalf("SetCourseProgress() error = %v", err)
	}

	record := svc.Get("c1")
	if record.Progress != 100 || !record.Completed {
		t.Errorf("progress = %d completed = %v, want 100/true (direct overwrite)", record.Progress, record.Completed)
	}

	// Out-of-range progress is clamped, not rejected.
	svc.SetCourseProgress("c1", 150, nil)
	if got := svc.Get("c1").Progress; got != 100 {
		t.Errorf("Progress = %d, want clamped to 100", got)
	}
	svc.SetCourseProgress("c1", -5, nil)
	if got := svc.Get("c1").Progress; got != 0 {
		t.Errorf("Progress = %d, want clamped to 0", got)
	}
}

func TestService_ResetCourseProgress_KeepsRecord(t *testing.T) {
	svc := testService(t)

	svc.InitCourseProgress("c1", "Course 1", 2)
	svc.UpdateLessonProgress("c1", "l1", true)
	svc.UpdateLessonProgress("c1", "l2", true)

	if err := svc.ResetCourseProgress("c1"); err != nil {
		t.Fatalf("ResetCourseProgress() error = %v", err)
	}

	record := svc.Get("c1")
	if record == nil {
		t.Fatal("record deleted by reset")
	}
	if record.Progress != 0 || record.Completed || len(record.CompletedLessons) != 0 {
		t.Errorf("record not cleared: %+v", record)
	}
}

func TestService_Aggregates(t *testing.T) {
	svc := testService(t)

	if svc.OverallProgress() != 0 {
		t.Errorf("OverallProgress() = %d with no records, want 0", svc.OverallProgress())
	}

	svc.InitCourseProgress("c1", "Course 1", 2)
	svc.InitCourseProgress("c2", "Course 2", 2)
	svc.UpdateLessonProgress("c1", "l1", true)
	svc.UpdateLessonProgress("c1", "l2", true)

	if got := svc.OverallProgress(); got != 50 {
		t.Errorf("OverallProgress() = %d, want 50", got)
	}
	if got := svc.CompletedCount(); got != 1 {
		t.Errorf("CompletedCount() = %d, want 1", got)
	}
	if got := svc.TotalLessonsCompleted(); got != 2 {
		t.Errorf("TotalLessonsCompleted() = %d, want 2", got)
	}
}

func TestService_RecentActivity(t *testing.T) {
	svc := testService(t)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.InitCourseProgress("c1", "Course 1", 2)
	now = now.Add(time.Hour)
	svc.InitCourseProgress("c2", "Course 2", 2)
	now = now.Add(time.Hour)
	svc.UpdateLessonProgress("c1", "l1", true)

	recent := svc.RecentActivity(1)
	if len(recent) != 1 {
		t.Fatalf("RecentActivity(1) = %d records, want 1", len(recent))
	}
	if recent[0].CourseID != "c1" {
		t.Errorf("most recent = %s, want c1", recent[0].CourseID)
	}

	if got := len(svc.RecentActivity(0)); got != 2 {
		t.Errorf("RecentActivity(0) = %d records, want all", got)
	}
}

func TestService_LearningStreakDays(t *testing.T) {
	svc := testService(t)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Activity 8 days ago falls outside the window.
	now = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.InitCourseProgress("old", "Old", 1)

	now = time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	svc.InitCourseProgress("c1", "Course 1", 2)

	now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.InitCourseProgress("c2", "Course 2", 2)

	if got := svc.LearningStreakDays(); got != 2 {
		t.Errorf("LearningStreakDays() = %d, want 2", got)
	}
}

func TestService_PersistsAcrossRestarts(t *testing.T) {
	kv, err := local.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(kv)
	svc.InitCourseProgress("c1", "Course 1", 4)
	svc.UpdateLessonProgress("c1", "l1", true)

	reloaded := NewService(kv)
	record := reloaded.Get("c1")
	if record == nil {
		t.Fatal("state not reloaded")
	}
	if record.Progress != 25 {
		t.Errorf("reloaded progress = %d, want 25", record.Progress)
	}
}
