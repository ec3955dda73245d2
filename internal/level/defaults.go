package level

import (
	_ "embed"
)

//go:embed levels/default.txt
var defaultLevels []byte

// DefaultSource returns the embedded default level set, used when no
// level file is configured.
func DefaultSource() []byte {
	return defaultLevels
}
