package configs

import (
	"path/filepath"
	"runtime"

	"github.com/mizutanik/kindle2md/internal/utils"
)

// SharedConfigFile is the name of the shared, version-controlled config file.
const SharedConfigFile = "config.json"

// LocalConfigFile is the name of the machine-local config file.
// It is excluded from version control.
const LocalConfigFile = "config.local.json"

// maxRecentProjects bounds the most-recent-first project history.
const maxRecentProjects = 10

// defaultSharedConfig returns the built-in defaults for the shared layer.
// A fresh document is built on every call so loaded configs never alias it.
func defaultSharedConfig() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"title":            "Kindle2Markdown",
			"default_pages":    100,
			"default_page_key": "right",
			"default_ocr_lang": "jpn+jpn_vert+eng",
			"window_keyword":   "Kindle for PC",
		},
		"capture": map[string]any{
			"default_region": map[string]any{
				"x":      0,
				"y":      0,
				"width":  1920,
				"height": 1080,
			},
			"screenshot_format": "png",
			"filename_format":   "screenshot_%04d.png",
		},
		"ocr": map[string]any{
			"tesseract_config":    "--psm 6",
			"supported_languages": []any{"jpn", "jpn_vert", "eng", "jpn+jpn_vert+eng"},
			"output_format":       "markdown",
		},
	}
}

// defaultLocalConfig returns the built-in defaults for the local layer.
func defaultLocalConfig() map[string]any {
	return map[string]any{
		"paths": map[string]any{
			"save_folder":   utils.DesktopPath(),
			"tesseract_cmd": defaultTesseractCmd(),
			"poppler_path":  defaultPopplerPath(),
		},
		"user_preferences": map[string]any{
			"last_used_region": nil,
			"last_save_folder": nil,
			"recent_projects":  []any{},
		},
	}
}

// defaultTesseractCmd returns the conventional tesseract install location for
// the current platform. The OCR layer falls back to PATH lookup when this
// path does not exist.
func defaultTesseractCmd() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(`C:\`, "Program Files", "Tesseract-OCR", "tesseract.exe")
	case "darwin":
		return "/opt/homebrew/bin/tesseract"
	default:
		return "/usr/bin/tesseract"
	}
}

// defaultPopplerPath returns the conventional poppler install location.
// Only meaningful on Windows; elsewhere poppler tools live on PATH.
func defaultPopplerPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(`C:\`, "Program Files", "poppler", "bin")
	}
	return ""
}
