package fvfav

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var yamlMarshal = yaml.Marshal
var yamlUnmarshal = yaml.Unmarshal

// GetFavorites loads bookmarked directories, seeding defaults on first use.
// Paths under the user home are stored and returned with a ~ prefix.
func GetFavorites() (favorites []Favorite, err error) {
	filePath, err := favoritesFilePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := defaultFavorites()
			if writeErr := writeFavorites(defaults); writeErr != nil {
				return nil, writeErr
			}
			return defaults, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Favorite{}, nil
	}
	if err = yamlUnmarshal(data, &favorites); err != nil {
		return nil, err
	}
	for i := range favorites {
		favorites[i].Path = contractHome(favorites[i].Path)
	}
	return favorites, nil
}

func AddFavorite(f Favorite) error {
	f.Path = contractHome(f.Path)
	favorites, err := GetFavorites()
	if err != nil {
		return err
	}
	for _, item := range favorites {
		if item.Key() == f.Key() {
			return nil
		}
	}
	favorites = append(favorites, f)
	return writeFavorites(favorites)
}

func DeleteFavorite(f Favorite) error {
	f.Path = contractHome(f.Path)
	favorites, err := GetFavorites()
	if err != nil {
		return err
	}
	deleteKey := f.Key()
	updated := make([]Favorite, 0, len(favorites))
	for _, item := range favorites {
		if item.Key() == deleteKey {
			continue
		}
		updated = append(updated, item)
	}
	return writeFavorites(updated)
}

func writeFavorites(favorites []Favorite) error {
	filePath, err := favoritesFilePath()
	if err != nil {
		return err
	}
	data, err := yamlMarshal(favorites)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}

func favoritesFilePath() (string, error) {
	dir, err := getSettingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, favoritesFileName), nil
}

func contractHome(path string) string {
	if path == "" {
		return path
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return path
	}
	cleanHome := filepath.Clean(home)
	cleanPath := filepath.Clean(path)
	if cleanPath == cleanHome {
		return "~"
	}
	homePrefix := cleanHome + string(filepath.Separator)
	if strings.HasPrefix(cleanPath, homePrefix) {
		return filepath.Join("~", strings.TrimPrefix(cleanPath, homePrefix))
	}
	return path
}

func defaultFavorites() []Favorite {
	return []Favorite{
		{Path: "~", Shortcut: 'h', Description: "Home"},
		{Path: "/", Shortcut: 'r', Description: "Root"},
		{Path: filepath.Join("~", settingsDirName), Description: "filevoy settings dir"},
	}
}
