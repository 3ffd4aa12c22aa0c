package chatmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrTurnEnded is returned when a Turn is used after End.
var ErrTurnEnded = errors.New("turn already ended")

// Turn renders one conversational turn: it reconciles observations into
// deltas, feeds them through the tokenizer to a Sink as they arrive, and
// settles the output against the final answer when the stream ends.
//
// A Turn is not safe for concurrent use. Use one Turn per turn and per
// output pane.
type Turn struct {
	tracker *Tracker
	cursor  Cursor
	state   ParseState
	sink    Sink
	log     zerolog.Logger
	ended   bool
}

// NewTurn returns a Turn writing to sink.
func NewTurn(sink Sink, opts ...TurnOption) *Turn {
	cfg := turnConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Turn{
		tracker: NewTracker(),
		state:   NewParseState(cfg.width),
		sink:    sink,
		log:     cfg.logger,
	}
}

// Observe ingests one observation and renders whatever became printable. It
// returns the reconciled delta.
func (t *Turn) Observe(obs Observation) (string, error) {
	if t.ended {
		return "", ErrTurnEnded
	}
	obs.Text = sanitizeText(obs.Text)
	delta := t.tracker.Ingest(obs)
	t.log.Debug().
		Str("author", obs.Author).
		Bool("partial", obs.Partial).
		Bool("final", obs.Final).
		Int("text_len", len(obs.Text)).
		Int("delta_len", len(delta)).
		Msg("observation")
	if delta == "" {
		return "", nil
	}
	t.cursor.Append(delta)
	if err := Drain(&t.cursor, &t.state, t.sink, false); err != nil {
		return delta, err
	}
	if pending := t.cursor.Len() - t.cursor.Offset; pending > 0 {
		t.log.Debug().Int("offset", t.cursor.Offset).Int("pending", pending).Msg("tokenizer waiting for input")
	}
	return delta, nil
}

// End closes the stream. Output still missing relative to the authoritative
// final text is rendered, the sink is flushed, and the resolved answer is
// returned. Without a final observation the unrendered tail of the stream is
// flushed as is.
func (t *Turn) End() (string, bool, error) {
	if t.ended {
		return "", false, ErrTurnEnded
	}
	t.ended = true
	answer, ok := t.tracker.Resolve()
	tail := t.cursor.Pending()
	if final, hasFinal := t.tracker.FinalAuthor(); hasFinal {
		suffix, need := FinalSuffix(t.cursor.Consumed(), answer)
		t.log.Debug().
			Str("author", final).
			Bool("suffix", need).
			Int("suffix_len", len(suffix)).
			Int("discarded", len(tail)).
			Msg("final reconciliation")
		tail = ""
		if need {
			tail = suffix
		}
	}
	if tail != "" {
		var rest Cursor
		rest.Append(tail)
		if err := Drain(&rest, &t.state, t.sink, true); err != nil {
			return answer, ok, err
		}
		emitted := t.cursor.Consumed() + tail
		t.cursor = Cursor{}
		t.cursor.Append(emitted)
		t.cursor.Offset = t.cursor.Len()
	}
	if err := t.sink.Flush(); err != nil {
		return answer, ok, fmt.Errorf("render: flush: %w", err)
	}
	return answer, ok, nil
}

// State returns a copy of the current render state.
func (t *Turn) State() ParseState {
	return t.state
}

// Emitted returns the markup text that has been rendered so far.
func (t *Turn) Emitted() string {
	return t.cursor.Consumed()
}

// Tracker returns the turn's tracker.
func (t *Turn) Tracker() *Tracker {
	return t.tracker
}
