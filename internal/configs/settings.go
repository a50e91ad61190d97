package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kopaki-io/kopaki/internal/crypto"
)

// Settings holds client-side preferences. None of it is part of a document;
// a document always carries its own KDF parameters.
type Settings struct {
	// KDFProfile selects the argon2id cost profile for new saves:
	// "desktop" (default) or "light". The light profile bounds worst-case
	// derivation cost on constrained machines.
	KDFProfile string `toml:"kdf_profile"`
}

const (
	ProfileDesktop = "desktop"
	ProfileLight   = "light"
)

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{KDFProfile: ProfileDesktop}
}

// SettingsPath returns the location of the user settings file, honoring the
// platform config directory convention ($XDG_CONFIG_HOME on Linux).
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(configDir, "kopaki", "settings.toml"), nil
}

// LoadSettings reads the user settings file, falling back to defaults when
// it does not exist.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if err := LoadTOML(path, &settings); err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	if settings.KDFProfile == "" {
		settings.KDFProfile = ProfileDesktop
	}
	return settings, nil
}

// SaveSettings writes the user settings file, creating the directory if
// needed.
func SaveSettings(settings Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return SaveTOML(path, settings)
}

// Profile maps the configured profile name to concrete cost parameters.
// Unknown names fall back to the desktop profile.
func (s Settings) Profile() crypto.Profile {
	if s.KDFProfile == ProfileLight {
		return crypto.Light
	}
	return crypto.Desktop
}
