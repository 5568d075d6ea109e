package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureRegionDefault(t *testing.T) {
	store := NewStore(t.TempDir())

	got := store.CaptureRegion()
	want := Region{X: 0, Y: 0, Width: 1920, Height: 1080}
	if got != want {
		t.Errorf("Expected default region %+v, got %+v", want, got)
	}
}

func TestCaptureRegionRemembered(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	if err := store.SetCaptureRegion(10, 20, 300, 400); err != nil {
		t.Fatalf("SetCaptureRegion failed: %v", err)
	}

	reloaded := NewStore(tempDir)
	got := reloaded.CaptureRegion()
	want := Region{X: 10, Y: 20, Width: 300, Height: 400}
	if got != want {
		t.Errorf("Expected remembered region %+v, got %+v", want, got)
	}
}

func TestCaptureRegionFromSharedDefault(t *testing.T) {
	tempDir := t.TempDir()
	shared := `{"capture": {"default_region": {"x": 5, "y": 6, "width": 700, "height": 800}}}`
	if err := os.WriteFile(filepath.Join(tempDir, SharedConfigFile), []byte(shared), 0644); err != nil {
		t.Fatalf("Failed to write shared config: %v", err)
	}

	store := NewStore(tempDir)
	got := store.CaptureRegion()
	want := Region{X: 5, Y: 6, Width: 700, Height: 800}
	if got != want {
		t.Errorf("Expected shared default region %+v, got %+v", want, got)
	}
}

func TestSaveFolderPrefersExistingRememberedFolder(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	remembered := filepath.Join(tempDir, "books")
	if err := os.MkdirAll(remembered, 0755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	if err := store.SetSaveFolder(remembered); err != nil {
		t.Fatalf("SetSaveFolder failed: %v", err)
	}

	if got := store.SaveFolder(); got != remembered {
		t.Errorf("Expected remembered folder %q, got %q", remembered, got)
	}
}

func TestSaveFolderFallsBackWhenRememberedFolderGone(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	gone := filepath.Join(tempDir, "deleted-since")
	if err := store.SetSaveFolder(gone); err != nil {
		t.Fatalf("SetSaveFolder failed: %v", err)
	}

	want := store.GetString("paths.save_folder", "")
	if got := store.SaveFolder(); got != want {
		t.Errorf("Expected fallback to shared folder %q, got %q", want, got)
	}
}

func TestAddRecentProjectDeduplicatesByTitle(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.AddRecentProject(Project{Title: "X", Pages: 5}); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	if err := store.AddRecentProject(Project{Title: "X", Pages: 9, Language: "eng"}); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}

	recent := store.RecentProjects()
	if len(recent) != 1 {
		t.Fatalf("Expected exactly one entry titled X, got %d entries", len(recent))
	}
	if recent[0].Pages != 9 || recent[0].Language != "eng" {
		t.Errorf("Expected the second payload to win, got %+v", recent[0])
	}
	if recent[0].ID == "" {
		t.Error("Expected a generated project ID")
	}
	if recent[0].CapturedAt == "" {
		t.Error("Expected a generated capture timestamp")
	}
}

func TestAddRecentProjectCapsAtTen(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	for i := 1; i <= 11; i++ {
		if err := store.AddRecentProject(Project{Title: fmt.Sprintf("Book %d", i)}); err != nil {
			t.Fatalf("AddRecentProject failed: %v", err)
		}
	}

	recent := store.RecentProjects()
	if len(recent) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(recent))
	}
	if recent[0].Title != "Book 11" {
		t.Errorf("Expected most recent first, got %q", recent[0].Title)
	}
	if recent[9].Title != "Book 2" {
		t.Errorf("Expected oldest kept entry Book 2, got %q", recent[9].Title)
	}
	for _, p := range recent {
		if p.Title == "Book 1" {
			t.Error("Expected Book 1 to have been evicted")
		}
	}

	// The cap must also hold after a fresh load.
	reloaded := NewStore(tempDir)
	if got := len(reloaded.RecentProjects()); got != 10 {
		t.Errorf("Expected 10 entries after reload, got %d", got)
	}
}

func TestRecentProjectsPreserveUnknownFields(t *testing.T) {
	tempDir := t.TempDir()
	local := `{
  "user_preferences": {
    "recent_projects": [
      {"title": "Annotated", "isbn": "978-4-00-310101-8"}
    ]
  }
}`
	if err := os.WriteFile(filepath.Join(tempDir, LocalConfigFile), []byte(local), 0644); err != nil {
		t.Fatalf("Failed to write local config: %v", err)
	}

	store := NewStore(tempDir)
	recent := store.RecentProjects()
	if len(recent) != 1 {
		t.Fatalf("Expected one entry, got %d", len(recent))
	}
	if recent[0].Extra["isbn"] != "978-4-00-310101-8" {
		t.Errorf("Expected unknown field preserved in Extra, got %+v", recent[0].Extra)
	}

	// Rewriting the list must not drop the unknown field.
	if err := store.AddRecentProject(Project{Title: "Other"}); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	reloaded := NewStore(tempDir)
	for _, p := range reloaded.RecentProjects() {
		if p.Title == "Annotated" {
			if p.Extra["isbn"] != "978-4-00-310101-8" {
				t.Errorf("Expected isbn to survive rewrite, got %+v", p.Extra)
			}
			return
		}
	}
	t.Error("Expected Annotated entry to survive rewrite")
}

func TestRecentProjectsKeepUntitledEntries(t *testing.T) {
	tempDir := t.TempDir()
	local := `{
  "user_preferences": {
    "recent_projects": [
      {"folder": "/books/legacy", "note": "written by an older tool"},
      {"title": "Named"}
    ]
  }
}`
	if err := os.WriteFile(filepath.Join(tempDir, LocalConfigFile), []byte(local), 0644); err != nil {
		t.Fatalf("Failed to write local config: %v", err)
	}

	store := NewStore(tempDir)
	recent := store.RecentProjects()
	if len(recent) != 2 {
		t.Fatalf("Expected both entries, got %d", len(recent))
	}
	if recent[0].Title != "" || recent[0].Folder != "/books/legacy" {
		t.Errorf("Expected untitled entry first, got %+v", recent[0])
	}

	// Rewriting the list must carry the untitled record to disk untouched.
	if err := store.AddRecentProject(Project{Title: "New"}); err != nil {
		t.Fatalf("AddRecentProject failed: %v", err)
	}
	reloaded := NewStore(tempDir)
	for _, p := range reloaded.RecentProjects() {
		if p.Folder == "/books/legacy" {
			if p.Extra["note"] != "written by an older tool" {
				t.Errorf("Expected untitled entry's metadata to survive, got %+v", p.Extra)
			}
			return
		}
	}
	t.Error("Expected untitled entry to survive the rewrite")
}

func TestRecentProjectsEmptyWhenAbsent(t *testing.T) {
	store := NewStore(t.TempDir())
	if got := store.RecentProjects(); len(got) != 0 {
		t.Errorf("Expected empty recent list, got %d entries", len(got))
	}
}
