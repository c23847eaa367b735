package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

func TestParseStyle(t *testing.T) {
	pub, err := ParseStyle("publication")
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	pres, err := ParseStyle("presentation")
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	if pres.TitleFontSize <= pub.TitleFontSize {
		t.Error("presentation preset should use larger type than publication")
	}

	if _, err := ParseStyle("poster"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error = %v, want INVALID_STYLE", err)
	}
}

func TestLoadStyleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	data := "width = 640\ntitle_font_size = 9.0\ngrid = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path, Publication())
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if s.Width != 640 {
		t.Errorf("Width = %d, want 640", s.Width)
	}
	if s.TitleFontSize != 9 {
		t.Errorf("TitleFontSize = %v, want 9", s.TitleFontSize)
	}
	if s.Grid {
		t.Error("grid override not applied")
	}
	// Untouched keys keep the preset value.
	if s.Height != Publication().Height {
		t.Errorf("Height = %d, want preset %d", s.Height, Publication().Height)
	}
}

func TestLoadStyleRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("width = -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyle(path, Publication()); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error = %v, want INVALID_STYLE", err)
	}
}
