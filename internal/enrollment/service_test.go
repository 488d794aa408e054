package enrollment

import (
	"fmt"
	"testing"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
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

func testCourse(id string, totalLessons int) domain.Course {
	return domain.Course{
		ID:           id,
		Title:        "Course " + id,
		Instructor:   "Instructor",
		Duration:     "10 hours",
		TotalLessons: totalLessons,
	}
}

func TestService_Enroll(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}

	if !svc.IsEnrolled("c1") {
		t.Error("IsEnrolled() = false after Enroll")
	}
	course := svc.Get("c1")
	if course == nil {
		t.Fatal("Get() = nil after Enroll")
	}
	if course.Progress != 0 || course.Completed {
		t.Errorf("fresh enrollment progress = %d completed = %v, want 0/false", course.Progress, course.Completed)
	}
}

func TestService_Enroll_Idempotent(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatal(err)
	}
	original := svc.Get("c1").EnrolledDate

	// Second enroll with different metadata must not replace the first.
	dup := testCourse("c1", 9)
	dup.Title = "Changed"
	if err := svc.Enroll(dup); err != nil {
		t.Fatal(err)
	}

	if svc.Count() != 1 {
		t.Errorf("Count() = %d, want 1", svc.Count())
	}
	got := svc.Get("c1")
	if got.Title != "Course c1" {
		t.Errorf("Title = %q, want original metadata kept", got.Title)
	}
	if got.TotalLessons != 4 {
		t.Errorf("TotalLessons = %d, want 4", got.TotalLessons)
	}
	if !got.EnrolledDate.Equal(original) {
		t.Error("EnrolledDate changed on duplicate enroll")
	}
}

func TestService_Unenroll(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatal(err)
	}
	if err := svc.Unenroll("c1"); err != nil {
		t.Fatalf("Unenroll() error = %v", err)
	}
	if svc.IsEnrolled("c1") {
		t.Error("IsEnrolled() = true after Unenroll")
	}

	// Absent id is a no-op, not an error.
	if err := svc.Unenroll("missing"); err != nil {
		t.Errorf("Unenroll(missing) error = %v, want nil", err)
	}
}

func TestService_SetLessonCompletion_Progress(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		lesson       string
		wantProgress int
		wantDone     bool
	}{
		{"l1", 25, false},
		{"l2", 50, false},
		{"l3", 75, false},
		{"l4", 100, true},
	}
	for _, step := range steps {
		if err := svc.SetLessonCompletion("c1", step.lesson, true); err != nil {
			t.Fatalf("SetLessonCompletion(%s) error = %v", step.lesson, err)
		}
		course := svc.Get("c1")
		if course.Progress != step.wantProgress {
			t.Errorf("after %s: progress = %d, want %d", step.lesson, course.Progress, step.wantProgress)
		}
		if course.Completed != step.wantDone {
			t.Errorf("after %s: completed = %v, want %v", step.lesson, course.Completed, step.wantDone)
		}
	}
}

func TestService_SetLessonCompletion_ToggleIdempotent(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatal(err)
	}

	// complete, incomplete, complete again: same as completing once
	for _, done := range []bool{true, false, true} {
		if err := svc.SetLessonCompletion("c1", "l1", done); err != nil {
			t.Fatal(err)
		}
	}

	if got := svc.Get("c1").Progress; got != 25 {
		t.Errorf("progress = %d, want 25", got)
	}
}

func TestService_SetLessonCompletion_NotEnrolled(t *testing.T) {
	svc := testService(t)

	if err := svc.SetLessonCompletion("missing", "l1", true); err != nil {
		t.Errorf("SetLessonCompletion on missing course error = %v, want nil no-op", err)
	}
}

func TestService_CompletedDate_StampedOnce(t *testing.T) {
	svc := testService(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if err := svc.Enroll(testCourse("c1", 2)); err != nil {
		t.Fatal(err)
	}
	svc.SetLessonCompletion("c1", "l1", true)
	svc.SetLessonCompletion("c1", "l2", true)

	course := svc.Get("c1")
	if course.CompletedDate == nil {
		t.Fatal("CompletedDate not set at 100%")
	}
	first := *course.CompletedDate

	// Redundant completion later must not re-stamp.
	now = now.Add(48 * time.Hour)
	svc.SetLessonCompletion("c1", "l2", true)

	if got := *svc.Get("c1").CompletedDate; !got.Equal(first) {
		t.Errorf("CompletedDate = %v, want first stamp %v", got, first)
	}
	if got := svc.Get("c1").Progress; got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
}

func TestService_MarkComplete(t *testing.T) {
	svc := testService(t)

	if err := svc.Enroll(testCourse("c1", 10)); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkComplete("c1"); err != nil {
		t.Fatalf("MarkComplete() error = %v", err)
	}

	course := svc.Get("c1")
	if !course.Completed || course.Progress != 100 {
		t.Errorf("completed = %v progress = %d, want true/100", course.Completed, course.Progress)
	}
	if course.CompletedDate == nil {
		t.Error("CompletedDate not stamped by MarkComplete")
	}

	if err := svc.MarkComplete("missing"); err != nil {
		t.Errorf("MarkComplete(missing) error = %v, want nil no-op", err)
	}
}

func TestService_Lists(t *testing.T) {
	svc := testService(t)

	for i := 1; i <= 3; i++ {
		if err := svc.Enroll(testCourse(fmt.Sprintf("c%d", i), 2)); err != nil {
			t.Fatal(err)
		}
	}
	svc.SetLessonCompletion("c1", "l1", true) // in progress
	svc.MarkComplete("c2")                    // completed

	if got := len(svc.ListInProgress()); got != 1 {
		t.Errorf("ListInProgress() = %d, want 1", got)
	}
	if got := len(svc.ListCompleted()); got != 1 {
		t.Errorf("ListCompleted() = %d, want 1", got)
	}
	if got := svc.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestService_TotalLearningHours(t *testing.T) {
	svc := testService(t)

	a := testCourse("c1", 2)
	a.Duration = "12 hours"
	b := testCourse("c2", 2)
	b.Duration = "3.5 hours" // leading integer only
	c := testCourse("c3", 2)
	c.Duration = "self-paced" // no numeric prefix

	for _, course := range []domain.Course{a, b, c} {
		if err := svc.Enroll(course); err != nil {
			t.Fatal(err)
		}
	}

	if got := svc.TotalLearningHours(); got != 15 {
		t.Errorf("TotalLearningHours() = %d, want 15", got)
	}
}

func TestService_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	kv, err := local.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(kv)
	if err := svc.Enroll(testCourse("c1", 4)); err != nil {
		t.Fatal(err)
	}
	svc.SetLessonCompletion("c1", "l1", true)

	// A fresh service over the same storage sees the same state.
	reloaded := NewService(kv)
	course := reloaded.Get("c1")
	if course == nil {
		t.Fatal("state not reloaded")
	}
	if course.Progress != 25 {
		t.Errorf("reloaded progress = %d, want 25", course.Progress)
	}
}

func TestService_MalformedState_StartsEmpty(t *testing.T) {
	kv := &corruptKV{}
	svc := NewService(kv)

	if svc.Count() != 0 {
		t.Errorf("Count() = %d, want 0 after corrupt load", svc.Count())
	}
}

// corruptKV always fails to load, simulating malformed persisted state.
type corruptKV struct{}

func (c *corruptKV) Save(collection, id string, v any) error { return nil }
func (c *corruptKV) Load(collection, id string, v any) error {
	return fmt.Errorf("corrupt record: bad json")
}
func (c *corruptKV) Delete(collection, id string) error      { return nil }
func (c *corruptKV) List(collection string) ([]string, error) { return nil, nil }
func (c *corruptKV) Exists(collection, id string) bool       { return false }
