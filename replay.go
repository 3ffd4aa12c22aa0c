package chatmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxTranscriptLine = 1 << 20

// ReplayRequest configures Replay.
//
// Reader yields a transcript: one JSON observation per line, e.g.
//
//	{"author":"assistant","text":"Hel","partial":true}
//	{"author":"assistant","text":"Hello","final":true}
//	{"end":true}
//
// An {"end":true} line ends the current turn; a trailing turn without one is
// ended at EOF.
type ReplayRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Sink overrides Writer and Theme when set.
	Sink  Sink
	Width int
	Theme Theme
	// Delay is slept before each observation to simulate delivery timing.
	Delay time.Duration
	// Logger receives debug traces; the zero value discards them.
	Logger  zerolog.Logger
	Options []TurnOption
}

// TurnResult describes one replayed turn.
type TurnResult struct {
	ID           string
	Answer       string
	HasAnswer    bool
	Observations int
}

// ReplayResult lists the replayed turns in order.
type ReplayResult struct {
	Turns []TurnResult
}

type transcriptRecord struct {
	Observation
	End bool `json:"end,omitempty"`
}

// Replay renders a transcript of observations turn by turn.
func Replay(ctx context.Context, req ReplayRequest) (ReplayResult, error) {
	var result ReplayResult
	if req.Reader == nil {
		return result, fmt.Errorf("replay: Reader is nil")
	}
	sink := req.Sink
	if sink == nil {
		if req.Writer == nil {
			return result, fmt.Errorf("replay: Writer is nil")
		}
		sink = NewTerminalSink(req.Writer, req.Theme)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		turn    *Turn
		current TurnResult
	)
	begin := func() {
		current = TurnResult{ID: uuid.NewString()}
		logger := req.Logger.With().Str("turn", current.ID).Logger()
		opts := append([]TurnOption{WithWidth(req.Width)}, req.Options...)
		opts = append(opts, WithLogger(logger))
		turn = NewTurn(sink, opts...)
		logger.Debug().Msg("turn started")
	}
	finish := func() error {
		answer, ok, err := turn.End()
		if err != nil {
			return err
		}
		current.Answer = answer
		current.HasAnswer = ok
		result.Turns = append(result.Turns, current)
		req.Logger.Debug().Str("turn", current.ID).Bool("answer", ok).Int("observations", current.Observations).Msg("turn ended")
		turn = nil
		return nil
	}

	scanner := bufio.NewScanner(req.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTranscriptLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := ValidateInput(line); err != nil {
			return result, fmt.Errorf("replay: line %d: %w", lineNo, err)
		}
		var rec transcriptRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return result, fmt.Errorf("replay: line %d: decode: %w", lineNo, err)
		}
		if rec.End {
			if turn != nil {
				if err := finish(); err != nil {
					return result, fmt.Errorf("replay: line %d: %w", lineNo, err)
				}
			}
			continue
		}
		if turn == nil {
			begin()
		}
		if err := sleepCtx(ctx, req.Delay); err != nil {
			return result, fmt.Errorf("replay: %w", err)
		}
		current.Observations++
		if _, err := turn.Observe(rec.Observation); err != nil {
			return result, fmt.Errorf("replay: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("replay: read: %w", err)
	}
	if turn != nil {
		if err := finish(); err != nil {
			return result, fmt.Errorf("replay: %w", err)
		}
	}
	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
