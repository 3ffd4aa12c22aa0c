package chatmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct {
	err error
}

func (s failingSink) WriteCommands(...Command) error { return s.err }
func (s failingSink) Flush() error                   { return s.err }

func observeAll(t *testing.T, turn *Turn, observations ...Observation) []string {
	t.Helper()
	deltas := make([]string, 0, len(observations))
	for _, obs := range observations {
		delta, err := turn.Observe(obs)
		require.NoError(t, err)
		deltas = append(deltas, delta)
	}
	return deltas
}

func TestTurnRendersLaggingFinal(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	deltas := observeAll(t, turn,
		Observation{Author: "assistant", Text: "Hel", Partial: true},
		Observation{Author: "assistant", Text: "lo wo", Partial: true},
		Observation{Author: "assistant", Text: "Hello world", Final: true},
	)
	assert.Equal(t, []string{"Hel", "lo wo", ""}, deltas)
	assert.Equal(t, "Hello ", rec.Text(), "unterminated word must wait for more input")

	answer, ok, err := turn.End()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hello world", answer)
	assert.Equal(t, "Hello world", rec.Text())
	assert.Equal(t, "Hello world", turn.Emitted())
	assert.Equal(t, 1, rec.Flushes())
}

func TestTurnFinalAlreadyShown(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	observeAll(t, turn,
		Observation{Author: "assistant", Text: "Done.\n", Partial: true},
		Observation{Author: "assistant", Text: "Done.", Final: true},
	)
	answer, ok, err := turn.End()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Done.", answer)
	assert.Equal(t, "Done.\n", rec.Text())
}

func TestTurnFinalDisagreementReprints(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	observeAll(t, turn,
		Observation{Author: "assistant", Text: "Hi there\n", Partial: true},
		Observation{Author: "assistant", Text: "Bye now", Final: true},
	)
	_, _, err := turn.End()
	require.NoError(t, err)
	assert.Equal(t, "Hi there\n\nBye now", rec.Text())
}

func TestTurnWithoutFinalFlushesTail(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	observeAll(t, turn, Observation{Author: "assistant", Text: "some `co", Partial: true})
	assert.Equal(t, "some ", rec.Text())

	answer, ok, err := turn.End()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "some `co", answer)
	assert.Equal(t, "some `co", rec.Text())
}

func TestTurnSnapshotsRenderOnce(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	observeAll(t, turn,
		Observation{Author: "assistant", Text: "# Title\n"},
		Observation{Author: "assistant", Text: "# Title\n"},
		Observation{Author: "assistant", Text: "# Title\nBody **bold**\n"},
	)
	_, _, err := turn.End()
	require.NoError(t, err)
	assert.Equal(t, "# Title\nBody bold\n", rec.Text())
}

func TestTurnMultipleAuthorsShareOutput(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	observeAll(t, turn,
		Observation{Author: "tool", Text: "ls done\n"},
		Observation{Author: "assistant", Text: "Files ", Partial: true},
		Observation{Author: "assistant", Text: "listed.\n", Partial: true},
	)
	answer, ok, err := turn.End()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Files listed.", answer)
	assert.Equal(t, "ls done\nFiles listed.\n", rec.Text())
}

func TestTurnUseAfterEnd(t *testing.T) {
	turn := NewTurn(&Recorder{})
	_, _, err := turn.End()
	require.NoError(t, err)

	_, err = turn.Observe(Observation{Author: "assistant", Text: "late", Partial: true})
	assert.ErrorIs(t, err, ErrTurnEnded)
	_, _, err = turn.End()
	assert.ErrorIs(t, err, ErrTurnEnded)
}

func TestTurnPropagatesSinkErrors(t *testing.T) {
	boom := errors.New("broken pipe")
	turn := NewTurn(failingSink{err: boom})
	_, err := turn.Observe(Observation{Author: "assistant", Text: "hello\n", Partial: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, _, err = turn.End()
	assert.ErrorIs(t, err, boom)
}

func TestTurnDropsControlCharacters(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec)
	delta, err := turn.Observe(Observation{Author: "assistant", Text: "\x1b[31mred\x07\n", Partial: true})
	require.NoError(t, err)
	assert.Equal(t, "[31mred\n", delta)
	assert.Equal(t, "[31mred\n", rec.Text())
}

func TestTurnWrapsAtWidth(t *testing.T) {
	rec := &Recorder{}
	turn := NewTurn(rec, WithWidth(10))
	observeAll(t, turn, Observation{Author: "assistant", Text: "hello world again\n", Partial: true})
	assert.Equal(t, "hello \nworld \nagain\n", rec.Text())
	assert.Equal(t, 10, turn.State().WrapWidth)
}
