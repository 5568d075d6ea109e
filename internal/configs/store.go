package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/mizutanik/kindle2md/internal/logging"
)

// LayerSource records where a config layer's current document came from.
type LayerSource int

const (
	// SourceDefaults means the layer holds built-in defaults only, either
	// because no file exists or because the file could not be read.
	SourceDefaults LayerSource = iota

	// SourceFile means the layer was loaded from its file and merged over
	// the built-in defaults.
	SourceFile
)

func (s LayerSource) String() string {
	if s == SourceFile {
		return "file"
	}
	return "defaults"
}

// LayerStatus describes how a config layer was loaded. Err is non-nil when
// the layer degraded to defaults because its file was unreadable or held
// malformed JSON.
type LayerStatus struct {
	Source LayerSource
	Err    error
}

// Store manages the two layered configuration documents: the shared,
// version-controlled config.json and the machine-local config.local.json.
// Construct one per base directory with NewStore; there is no package-level
// instance. All reads consult the local document first, then the shared one,
// then a built-in default.
//
// A Store is not safe for concurrent use. The tool is single-threaded and a
// concurrent writer from another process simply wins the last write.
type Store struct {
	BaseDir    string
	SharedPath string
	LocalPath  string

	// SharedStatus and LocalStatus expose load provenance so callers and
	// tests can tell a degraded layer from a normal one.
	SharedStatus LayerStatus
	LocalStatus  LayerStatus

	Logger logger.Logger

	shared map[string]any
	local  map[string]any
}

// NewStore creates a Store rooted at baseDir (the working directory when
// empty) and eagerly loads both layers. Loading never fails: an absent,
// unreadable, or malformed file leaves that layer on built-in defaults, with
// the failure recorded in the layer status and logged.
func NewStore(baseDir string) *Store {
	if baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			baseDir = wd
		} else {
			baseDir = "."
		}
	}

	s := &Store{
		BaseDir:    baseDir,
		SharedPath: filepath.Join(baseDir, SharedConfigFile),
		LocalPath:  filepath.Join(baseDir, LocalConfigFile),
	}
	s.shared, s.SharedStatus = s.loadLayer(s.SharedPath, defaultSharedConfig())
	s.local, s.LocalStatus = s.loadLayer(s.LocalPath, defaultLocalConfig())
	return s
}

// loadLayer reads one config file and merges it over the layer's defaults.
func (s *Store) loadLayer(path string, defaults map[string]any) (map[string]any, LayerStatus) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, LayerStatus{Source: SourceDefaults}
		}
		s.Logger.WarnfAlways("Could not read %s, using built-in defaults: %v", filepath.Base(path), err)
		return defaults, LayerStatus{Source: SourceDefaults, Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		s.Logger.WarnfAlways("Could not parse %s, using built-in defaults: %v", filepath.Base(path), err)
		return defaults, LayerStatus{Source: SourceDefaults, Err: err}
	}

	return mergeDocuments(defaults, doc), LayerStatus{Source: SourceFile}
}

// Get returns the value at the dotted path, checking the local document
// first, then the shared one. A nil stored value counts as absent. Returns
// def when neither layer has the path.
func (s *Store) Get(path string, def any) any {
	if value, ok := getNestedValue(s.local, path); ok && value != nil {
		return value
	}
	if value, ok := getNestedValue(s.shared, path); ok && value != nil {
		return value
	}
	return def
}

// GetString returns the string at path, or def when absent or not a string.
func (s *Store) GetString(path, def string) string {
	if value, ok := toString(s.Get(path, nil)); ok {
		return value
	}
	return def
}

// GetInt returns the integer at path, or def when absent. Values loaded from
// JSON arrive as float64 and are converted.
func (s *Store) GetInt(path string, def int) int {
	if value, ok := toInt(s.Get(path, nil)); ok {
		return value
	}
	return def
}

// ResetToDefaults discards both documents, returning the store to the
// built-in defaults as if no config files existed. Nothing is written until
// SaveSharedConfig/SaveLocalConfig are called.
func (s *Store) ResetToDefaults() {
	s.shared = defaultSharedConfig()
	s.local = defaultLocalConfig()
	s.SharedStatus = LayerStatus{Source: SourceDefaults}
	s.LocalStatus = LayerStatus{Source: SourceDefaults}
}

// SharedDocument returns a deep copy of the shared document.
func (s *Store) SharedDocument() map[string]any {
	return deepCopyMap(s.shared)
}

// LocalDocument returns a deep copy of the local document.
func (s *Store) LocalDocument() map[string]any {
	return deepCopyMap(s.local)
}

// MergedDocument returns a deep copy of the effective configuration, the
// local document merged over the shared one.
func (s *Store) MergedDocument() map[string]any {
	return mergeDocuments(s.shared, s.local)
}

// SetShared assigns value at the dotted path in the shared document.
// Call SaveSharedConfig for durability.
func (s *Store) SetShared(path string, value any) {
	setNestedValue(s.shared, path, value)
}

// SetLocal assigns value at the dotted path in the local document.
// Call SaveLocalConfig for durability.
func (s *Store) SetLocal(path string, value any) {
	setNestedValue(s.local, path, value)
}

// SaveSharedConfig writes the full shared document to config.json.
func (s *Store) SaveSharedConfig() error {
	if err := s.saveDocument(s.SharedPath, s.shared); err != nil {
		s.Logger.Errorf("Failed to save shared config: %v", err)
		return err
	}
	return nil
}

// SaveLocalConfig writes the full local document to config.local.json.
func (s *Store) SaveLocalConfig() error {
	if err := s.saveDocument(s.LocalPath, s.local); err != nil {
		s.Logger.Errorf("Failed to save local config: %v", err)
		return err
	}
	return nil
}

// saveDocument serializes a document as pretty-printed UTF-8 JSON, keeping
// non-ASCII characters verbatim. The whole file is overwritten; there is no
// partial or transactional write.
func (s *Store) saveDocument(path string, doc map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
