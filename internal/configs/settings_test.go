package configs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/kopaki-io/kopaki/internal/crypto"
)

// isolate points os.UserConfigDir at a temp directory so tests never touch
// the real settings file.
func isolate(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("config directory override not supported on this platform")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	isolate(t)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.KDFProfile != ProfileDesktop {
		t.Errorf("expected default profile %q, got %q", ProfileDesktop, settings.KDFProfile)
	}
}

func TestSaveLoadSettingsRoundTrip(t *testing.T) {
	isolate(t)

	if err := SaveSettings(Settings{KDFProfile: ProfileLight}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.KDFProfile != ProfileLight {
		t.Errorf("expected %q, got %q", ProfileLight, settings.KDFProfile)
	}

	path, err := SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created at %s: %v", path, err)
	}
}

func TestLoadSettingsEmptyFile(t *testing.T) {
	isolate(t)

	path, err := SettingsPath()
	if err != nil {
		t.Fatalf("SettingsPath failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(""), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.KDFProfile != ProfileDesktop {
		t.Errorf("expected fallback to %q, got %q", ProfileDesktop, settings.KDFProfile)
	}
}

func TestProfileMapping(t *testing.T) {
	cases := []struct {
		name string
		want crypto.Profile
	}{
		{ProfileDesktop, crypto.Desktop},
		{ProfileLight, crypto.Light},
		{"", crypto.Desktop},
		{"unknown", crypto.Desktop},
	}
	for _, c := range cases {
		got := Settings{KDFProfile: c.name}.Profile()
		if got != c.want {
			t.Errorf("Profile(%q) = %+v, want %+v", c.name, got, c.want)
		}
	}
}
