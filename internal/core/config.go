package core

// RuntimeConfig contains configuration passed to the shell at initialization.
// The engine itself is deterministic and event-driven, so only the screen
// dimensions matter here.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
