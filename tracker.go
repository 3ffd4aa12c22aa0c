package chatmd

import "strings"

// Observation is one reported text update from the agent stream.
type Observation struct {
	Author  string `json:"author"`
	Text    string `json:"text"`
	Partial bool   `json:"partial,omitempty"`
	Final   bool   `json:"final,omitempty"`
}

// Tracker reconciles observations for every author in one turn and resolves
// the turn's canonical answer once the stream has ended.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	byAuthor    map[string]*string
	order       []string
	finalText   string
	finalAuthor string
	hasFinal    bool
	lastAuthor  string
	hasLast     bool
}

// NewTracker returns an empty tracker for a new turn.
func NewTracker() *Tracker {
	return &Tracker{byAuthor: make(map[string]*string)}
}

// Ingest is IngestParts for an Observation.
func (t *Tracker) Ingest(obs Observation) string {
	return t.IngestParts(obs.Author, obs.Text, obs.Partial, obs.Final)
}

// IngestParts reconciles text into author's buffer and returns the delta that
// should be printed.
func (t *Tracker) IngestParts(author, text string, partial, final bool) string {
	buf, ok := t.byAuthor[author]
	if !ok {
		buf = new(string)
		t.byAuthor[author] = buf
		t.order = append(t.order, author)
	}
	delta := Reconcile(buf, text, partial, final)
	if text != "" {
		t.lastAuthor = author
		t.hasLast = true
	}
	if final && strings.TrimSpace(text) != "" {
		t.finalText = text
		t.finalAuthor = author
		t.hasFinal = true
	}
	return delta
}

// Resolve returns the canonical answer for the turn. The latest non-empty
// final text wins; without one, the trimmed buffer of the last author that
// produced any text is used. It reports false when there is no answer.
func (t *Tracker) Resolve() (string, bool) {
	if t.hasFinal {
		return t.finalText, true
	}
	if !t.hasLast {
		return "", false
	}
	buf := t.byAuthor[t.lastAuthor]
	if buf == nil {
		return "", false
	}
	text := strings.TrimSpace(*buf)
	if text == "" {
		return "", false
	}
	return text, true
}

// FinalAuthor returns the author of the latest final observation.
func (t *Tracker) FinalAuthor() (string, bool) {
	return t.finalAuthor, t.hasFinal
}

// Buffer returns the reconciled text for author.
func (t *Tracker) Buffer(author string) string {
	if buf := t.byAuthor[author]; buf != nil {
		return *buf
	}
	return ""
}

// Authors returns every author seen so far in first-seen order.
func (t *Tracker) Authors() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
