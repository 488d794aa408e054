package notes

import (
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

func TestService_Add(t *testing.T) {
	svc := testService(t)

	note, err := svc.Add(domain.StickyNote{
		ID:      "caller-supplied", // must be ignored
		Title:   "goroutines",
		Content: "channels block until both sides are ready",
		Color:   "yellow",
		Starred: true, // must be ignored
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if note.ID == "" || note.ID == "caller-supplied" {
		t.Errorf("ID = %q, want a generated id", note.ID)
	}
	if note.Starred {
		t.Error("Starred = true on a fresh note")
	}
	if note.CreatedAt.IsZero() || !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Errorf("timestamps = %v / %v, want equal and set", note.CreatedAt, note.UpdatedAt)
	}
	if note.Tags == nil {
		t.Error("Tags = nil, want empty slice")
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	svc := testService(t)

	svc.Add(domain.StickyNote{Title: "first"})
	svc.Add(domain.StickyNote{Title: "second"})
	svc.Add(domain.StickyNote{Title: "third"})

	list := svc.List()
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if list[i].Title != title {
			t.Errorf("List()[%d].Title = %q, want %q", i, list[i].Title, title)
		}
	}
}

func TestService_Update(t *testing.T) {
	svc := testService(t)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }
	note, _ := svc.Add(domain.StickyNote{Title: "draft", Content: "v1"})

	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }
	if err := svc.Update(note.ID, "final", "v2"); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got := svc.Get(note.ID)
	if got.Title != "final" || got.Content != "v2" {
		t.Errorf("note = %q/%q, want final/v2", got.Title, got.Content)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, changed by Update", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, later)
	}

	if err := svc.Update("missing", "x", "y"); err != nil {
		t.Errorf("Update(missing) error = %v, want nil no-op", err)
	}
}

func TestService_Remove(t *testing.T) {
	svc := testService(t)

	keep, _ := svc.Add(domain.StickyNote{Title: "keep"})
	drop, _ := svc.Add(domain.StickyNote{Title: "drop"})

	if err := svc.Remove(drop.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if svc.Get(drop.ID) != nil {
		t.Error("removed note still present")
	}
	if svc.Get(keep.ID) == nil {
		t.Error("Remove took out the wrong note")
	}

	if err := svc.Remove("missing"); err != nil {
		t.Errorf("Remove(missing) error = %v, want nil no-op", err)
	}
}

func TestService_Clear(t *testing.T) {
	svc := testService(t)

	svc.Add(domain.StickyNote{Title: "a"})
	svc.Add(domain.StickyNote{Title: "b"})

	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if svc.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", svc.Count())
	}
}

func TestService_ToggleStar(t *testing.T) {
	svc := testService(t)
	note, _ := svc.Add(domain.StickyNote{Title: "star me"})

	on, err := svc.ToggleStar(note.ID)
	if err != nil {
		t.Fatalf("ToggleStar() error = %v", err)
	}
	if !on || !svc.Get(note.ID).Starred {
		t.Error("note not starred after first toggle")
	}

	off, err := svc.ToggleStar(note.ID)
	if err != nil {
		t.Fatal(err)
	}
	if off || svc.Get(note.ID).Starred {
		t.Error("note still starred after second toggle")
	}

	if on, err := svc.ToggleStar("missing"); err != nil || on {
		t.Errorf("ToggleStar(missing) = %v, %v, want false no-op", on, err)
	}
}

func TestService_AddTag(t *testing.T) {
	svc := testService(t)
	note, _ := svc.Add(domain.StickyNote{Title: "tagged"})

	if err := svc.AddTag(note.ID, "go"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}
	if err := svc.AddTag(note.ID, "go"); err != nil {
		t.Fatal(err)
	}
	svc.AddTag(note.ID, "concurrency")

	got := svc.Get(note.ID).Tags
	want := []string{"go", "concurrency"}
	if len(got) != len(want) {
		t.Fatalf("Tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestService_PersistsAcrossRestarts(t *testing.T) {
	kv, err := local.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(kv)
	note, _ := svc.Add(domain.StickyNote{Title: "persist me", Content: "body"})
	svc.ToggleStar(note.ID)

	reloaded := NewService(kv)
	got := reloaded.Get(note.ID)
	if got == nil {
		t.Fatal("note not reloaded")
	}
	if !got.Starred {
		t.Error("star state not reloaded")
	}
}
