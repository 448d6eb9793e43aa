//go:build mobile

package utils

// IsMobile reports whether the game runs as the mobile binding.
func IsMobile() bool {
	return true
}
