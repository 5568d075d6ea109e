package configs

import (
	"time"

	"github.com/google/uuid"

	"github.com/mizutanik/kindle2md/internal/utils"
)

// Region is a screen rectangle from which page screenshots are taken.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Project describes one captured book: where its images and transcript went
// and how it was transcribed. Title is the identity key for the recent list;
// entries without a title are carried along untouched and never deduplicated.
// Extra holds any free-form metadata found in the config file so rewriting
// the list never drops fields this version does not know about.
type Project struct {
	ID         string
	Title      string
	Folder     string
	OutputFile string
	Pages      int
	Language   string
	CapturedAt string
	Extra      map[string]any
}

// CaptureRegion returns the effective capture region: the locally remembered
// one, else the shared default, else a full-HD rectangle at the origin.
func (s *Store) CaptureRegion() Region {
	if region, ok := regionFromValue(s.Get("user_preferences.last_used_region", nil)); ok {
		return region
	}
	if region, ok := regionFromValue(s.Get("capture.default_region", nil)); ok {
		return region
	}
	return Region{X: 0, Y: 0, Width: 1920, Height: 1080}
}

// SetCaptureRegion remembers the region in the local layer and persists it
// immediately.
func (s *Store) SetCaptureRegion(x, y, width, height int) error {
	s.SetLocal("user_preferences.last_used_region", regionToMap(Region{X: x, Y: y, Width: width, Height: height}))
	return s.SaveLocalConfig()
}

// SaveFolder returns the folder to write screenshots and transcripts into.
// The locally remembered folder is used only while it still exists on disk;
// a remembered folder that has since been deleted silently falls back to the
// shared default, then to the desktop. This existence check is deliberate
// and unique to this accessor.
func (s *Store) SaveFolder() string {
	if folder, ok := toString(s.Get("user_preferences.last_save_folder", nil)); ok && utils.PathExists(folder) {
		return folder
	}
	if folder, ok := toString(s.Get("paths.save_folder", nil)); ok {
		return folder
	}
	return utils.DesktopPath()
}

// SetSaveFolder remembers the folder in the local layer and persists it
// immediately.
func (s *Store) SetSaveFolder(folder string) error {
	s.SetLocal("user_preferences.last_save_folder", folder)
	return s.SaveLocalConfig()
}

// RecentProjects returns the most-recent-first project history, or an empty
// slice when none is stored.
func (s *Store) RecentProjects() []Project {
	raw, ok := s.Get("user_preferences.recent_projects", nil).([]any)
	if !ok {
		return nil
	}
	projects := make([]Project, 0, len(raw))
	for _, entry := range raw {
		if project, ok := projectFromValue(entry); ok {
			projects = append(projects, project)
		}
	}
	return projects
}

// AddRecentProject inserts the project at the front of the recent list,
// removing any existing entry with the same title, capping the list at ten
// entries, and persisting immediately. A missing ID or timestamp is filled
// in.
func (s *Store) AddRecentProject(project Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.CapturedAt == "" {
		project.CapturedAt = time.Now().Format(time.RFC3339)
	}

	recent := []Project{project}
	for _, existing := range s.RecentProjects() {
		if project.Title != "" && existing.Title == project.Title {
			continue
		}
		recent = append(recent, existing)
		if len(recent) == maxRecentProjects {
			break
		}
	}

	entries := make([]any, len(recent))
	for i, p := range recent {
		entries[i] = projectToMap(p)
	}
	s.SetLocal("user_preferences.recent_projects", entries)
	return s.SaveLocalConfig()
}

// regionFromValue decodes a region record stored in a document. Numbers may
// be ints (built-in defaults) or float64 (loaded JSON).
func regionFromValue(v any) (Region, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Region{}, false
	}
	var region Region
	if region.X, ok = toInt(m["x"]); !ok {
		return Region{}, false
	}
	if region.Y, ok = toInt(m["y"]); !ok {
		return Region{}, false
	}
	if region.Width, ok = toInt(m["width"]); !ok {
		return Region{}, false
	}
	if region.Height, ok = toInt(m["height"]); !ok {
		return Region{}, false
	}
	return region, true
}

func regionToMap(r Region) map[string]any {
	return map[string]any{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.Width,
		"height": r.Height,
	}
}

// projectFromValue decodes a project record. A title is not required, so
// records written by other tools survive the round trip; all unrecognized
// keys are preserved in Extra.
func projectFromValue(v any) (Project, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Project{}, false
	}

	var project Project
	project.Title, _ = toString(m["title"])
	project.ID, _ = toString(m["id"])
	project.Folder, _ = toString(m["folder"])
	project.OutputFile, _ = toString(m["output_file"])
	project.Pages, _ = toInt(m["pages"])
	project.Language, _ = toString(m["language"])
	project.CapturedAt, _ = toString(m["captured_at"])

	for key, value := range m {
		switch key {
		case "id", "title", "folder", "output_file", "pages", "language", "captured_at":
		default:
			if project.Extra == nil {
				project.Extra = map[string]any{}
			}
			project.Extra[key] = value
		}
	}
	return project, true
}

func projectToMap(p Project) map[string]any {
	m := map[string]any{}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.ID != "" {
		m["id"] = p.ID
	}
	if p.Folder != "" {
		m["folder"] = p.Folder
	}
	if p.OutputFile != "" {
		m["output_file"] = p.OutputFile
	}
	if p.Pages != 0 {
		m["pages"] = p.Pages
	}
	if p.Language != "" {
		m["language"] = p.Language
	}
	if p.CapturedAt != "" {
		m["captured_at"] = p.CapturedAt
	}
	for key, value := range p.Extra {
		m[key] = value
	}
	return m
}
