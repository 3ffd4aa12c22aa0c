// Package chatmd renders streamed agent answers as Markdown on a terminal.
//
// An agent stream reports text as a mix of literal increments (partial
// observations) and cumulative snapshots that may repeat or overlap what was
// already shown. A Turn reconciles those observations per author into
// printable deltas, tokenizes the deltas incrementally into styling commands,
// and hands the commands to a Sink as soon as they can be confirmed. The
// tokenizer is restartable: when a token is cut off by a chunk boundary it
// consumes nothing and waits for more input, so the rendered output does not
// depend on how the stream was chunked.
//
// When the stream ends, the turn resolves its canonical answer (the latest
// final observation, or the last author's text) and prints whatever part of
// it never reached the screen.
//
// Example:
//
//	sink := chatmd.NewTerminalSink(os.Stdout, chatmd.DefaultTheme())
//	turn := chatmd.NewTurn(sink, chatmd.WithWidth(80))
//	_, _ = turn.Observe(chatmd.Observation{Author: "assistant", Text: "# Hel", Partial: true})
//	_, _ = turn.Observe(chatmd.Observation{Author: "assistant", Text: "lo\n", Partial: true})
//	answer, ok, err := turn.End()
//
// Replay drives turns from a JSON lines transcript, which is what the chatmd
// command uses.
package chatmd
