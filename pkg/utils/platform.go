//go:build !mobile

package utils

import "os"

// MobileEmulateEnv forces mobile mode on desktop builds when set to "1".
const MobileEmulateEnv = "POWERSHOOTER_MOBILE_EMULATE"

// IsMobile reports whether the game runs as the mobile binding. Desktop
// builds return false unless MobileEmulateEnv is "1".
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
