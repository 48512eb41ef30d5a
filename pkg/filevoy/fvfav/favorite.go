package fvfav

import (
	"os"
	"path/filepath"
)

// Favorite is a bookmarked directory.
type Favorite struct {
	Path        string `yaml:"path"`
	Shortcut    rune   `yaml:"shortcut,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (f Favorite) Key() string {
	return f.Path
}

const favoritesFileName = "favorites.yaml"
const settingsDirName = ".filevoy"

var userHomeDir = os.UserHomeDir

func getSettingsDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, settingsDirName), nil
}
