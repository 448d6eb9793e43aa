// Package types holds the closed enumerations shared across packages.
// It depends on nothing else in the module so that configs, components and
// systems can all import it.
package types

import "fmt"

// Theme selects the per-level rule set.
type Theme string

const (
	ThemeStandard     Theme = "standard"
	ThemeBiochemistry Theme = "biochemistry"
	ThemeBirds        Theme = "birds"
	ThemeTrain        Theme = "train"
	ThemeTimed        Theme = "timed"
	ThemeLasers       Theme = "lasers"
	ThemeFortress     Theme = "fortress"
	ThemeGarden       Theme = "garden"
	ThemeSpace        Theme = "space"
	ThemeFinal        Theme = "final"
)

var allThemes = []Theme{
	ThemeStandard, ThemeBiochemistry, ThemeBirds, ThemeTrain, ThemeTimed,
	ThemeLasers, ThemeFortress, ThemeGarden, ThemeSpace, ThemeFinal,
}

// ParseTheme validates a theme name read from configuration.
func ParseTheme(s string) (Theme, error) {
	for _, t := range allThemes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}
