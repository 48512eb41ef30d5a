package filevoy

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// extColorGroups assigns one color per family of file types. The flat
// lookup map is built from it at init time.
var extColorGroups = []struct {
	color tcell.Color
	exts  []string
}{
	{tcell.ColorAqua, []string{"go", "mod", "sum"}},
	{tcell.ColorDodgerBlue, []string{"c", "h", "cpp", "hpp"}},
	{tcell.ColorLime, []string{"cs"}},
	{tcell.ColorYellow, []string{"js", "jsx"}},
	{tcell.ColorDeepSkyBlue, []string{"ts", "tsx"}},
	{tcell.ColorLightGreen, []string{"py", "csv"}},
	{tcell.ColorOrange, []string{"rs"}},
	{tcell.ColorRed, []string{"rb", "exe"}},
	{tcell.ColorPurple, []string{"php"}},
	{tcell.ColorOrangeRed, []string{"html", "htm"}},
	{tcell.ColorViolet, []string{"css", "scss"}},
	{tcell.ColorSpringGreen, []string{"sql"}},
	{tcell.ColorGold, []string{"json"}},
	{tcell.ColorLightYellow, []string{"xml", "yaml", "yml", "toml"}},
	{tcell.ColorBisque, []string{"md", "rst"}},
	{tcell.ColorGreen, []string{"sh", "bash", "zsh", "xls", "xlsx"}},
	{tcell.ColorDarkRed, []string{"bat", "cmd"}},
	{tcell.ColorWhite, []string{"txt"}},
	{tcell.ColorMediumPurple, []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}},
	{tcell.ColorLightSalmon, []string{"mov", "mp4", "mkv", "mp3", "flac"}},
	{tcell.ColorRosyBrown, []string{"log"}},
	{tcell.ColorBlue, []string{"doc", "docx", "pdf"}},
}

var extColors = make(map[string]tcell.Color)

func init() {
	for _, group := range extColorGroups {
		for _, ext := range group.exts {
			extColors[ext] = group.color
		}
	}
}

// FileNameColor picks a display color for an entry from its extension,
// case-insensitively. Unknown extensions get a neutral near-white.
func FileNameColor(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := extColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
