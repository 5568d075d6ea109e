package cmd

import (
	"errors"
	"testing"

	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

func TestParseRegionFlag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    configs.Region
		wantErr bool
	}{
		{"valid", "100,80,1280,960", configs.Region{X: 100, Y: 80, Width: 1280, Height: 960}, false},
		{"valid with spaces", " 0, 0, 1920, 1080 ", configs.Region{Width: 1920, Height: 1080}, false},
		{"zero width and height", "0,0,0,0", configs.Region{}, true},
		{"negative height", "0,0,100,-5", configs.Region{}, true},
		{"too few parts", "1,2,3", configs.Region{}, true},
		{"not numbers", "a,b,c,d", configs.Region{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRegionFlag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRegionFlag(%q) expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRegionFlag(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseRegionFlag(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRegionFlagDegenerateIsInvalidRegion(t *testing.T) {
	_, err := parseRegionFlag("0,0,0,0")
	if !errors.Is(err, kerrors.ErrInvalidRegion) {
		t.Errorf("expected ErrInvalidRegion, got %v", err)
	}
}

func TestCaptureRegionSetRejectsDegenerateRegion(t *testing.T) {
	ResetCaptureState()
	tempDir := t.TempDir()

	output, err := captureOutput(func() error {
		return createTestRoot("capture", "region", "--set", "0,0,0,0", "--dir", tempDir).Execute()
	})
	if err == nil {
		t.Fatalf("expected capture region --set 0,0,0,0 to fail\noutput: %s", output)
	}

	// Nothing may have been persisted: the effective region stays on the
	// built-in default.
	store := configs.NewStore(tempDir)
	if got := store.CaptureRegion(); got != (configs.Region{Width: 1920, Height: 1080}) {
		t.Errorf("degenerate region was persisted: %+v", got)
	}
}

func TestCaptureRegionSetPersistsValidRegion(t *testing.T) {
	ResetCaptureState()
	tempDir := t.TempDir()

	output, err := captureOutput(func() error {
		return createTestRoot("capture", "region", "--set", "10,20,640,480", "--dir", tempDir).Execute()
	})
	if err != nil {
		t.Fatalf("capture region --set failed: %v\noutput: %s", err, output)
	}

	store := configs.NewStore(tempDir)
	want := configs.Region{X: 10, Y: 20, Width: 640, Height: 480}
	if got := store.CaptureRegion(); got != want {
		t.Errorf("CaptureRegion() = %+v, want %+v", got, want)
	}
}
