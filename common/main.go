package common

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog/log"
)

// Init sets up logging and terminal colors. It must run before any check.
func Init() {
	InitZerolog()

	if NoColor() {
		RemoveColors()
	}

	log.Debug().
		Str("component", "init").
		Bool("user_mode", os.Geteuid() != 0).
		Strs("config_paths", ConfigPaths).
		Msg("rammon initialization completed")
}

// ConvertBytes renders a byte count in a human readable unit
func ConvertBytes(bytes uint64) string {
	var sizes = []string{"B", "KB", "MB", "GB", "TB", "EB"}

	if bytes == 0 {
		return "0 B"
	}

	if bytes > uint64(math.MaxInt64) {
		bytes = uint64(math.MaxInt64)
	}
	floatBytes := float64(bytes)
	var i int

	for i = 0; floatBytes >= 1024 && i < len(sizes)-1; i++ {
		floatBytes /= 1024
	}

	// Format with 2 decimal places for units >= MB
	if i >= 2 {
		return fmt.Sprintf("%.2f %s", floatBytes, sizes[i])
	}

	return fmt.Sprintf("%d %s", int64(floatBytes), sizes[i])
}
