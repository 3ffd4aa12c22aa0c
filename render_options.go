package chatmd

import "github.com/rs/zerolog"

// TurnOption configures a Turn.
type TurnOption func(*turnConfig)

type turnConfig struct {
	width  int
	logger zerolog.Logger
}

// WithWidth sets the terminal width used for forced wrapping. Zero disables
// wrapping.
func WithWidth(width int) TurnOption {
	return func(cfg *turnConfig) {
		cfg.width = width
	}
}

// WithLogger sets the logger used for debug tracing of a turn.
func WithLogger(logger zerolog.Logger) TurnOption {
	return func(cfg *turnConfig) {
		cfg.logger = logger
	}
}
