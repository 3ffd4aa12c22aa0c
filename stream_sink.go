package chatmd

import (
	"strings"
	"sync"
)

// Sink receives styling and print commands from the tokenizer.
type Sink interface {
	// WriteCommands applies one batch of commands. Implementations shared
	// between sessions must apply a batch without interleaving.
	WriteCommands(cmds ...Command) error
	// Flush is called once when a turn ends.
	Flush() error
}

// Recorder is a Sink that keeps every command in memory.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	flushes  int
}

// WriteCommands records cmds.
func (r *Recorder) WriteCommands(cmds ...Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmds...)
	return nil
}

// Flush counts the flush.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushes++
	return nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// Text returns the recorded output without styling. Newlines and forced
// wraps both render as "\n".
func (r *Recorder) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b strings.Builder
	for _, c := range r.commands {
		switch c.Kind {
		case CmdText:
			b.WriteString(c.Text)
		case CmdNewline, CmdWrap:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = r.commands[:0]
	r.flushes = 0
}
