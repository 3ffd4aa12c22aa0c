package chatmd

// Command is one styling or print instruction for a Sink.
type Command struct {
	Kind  CommandKind
	Text  string
	Color Color
}

// CommandKind identifies what a Command asks the sink to do.
type CommandKind uint8

const (
	// CmdText prints Text with the currently active style.
	CmdText CommandKind = iota
	// CmdNewline ends the current line.
	CmdNewline
	// CmdWrap is a forced line break inserted by width tracking.
	CmdWrap
	// CmdReset clears all active styling.
	CmdReset
	// CmdBold enables bold.
	CmdBold
	// CmdItalic enables italic.
	CmdItalic
	// CmdForeground sets the foreground to Color.
	CmdForeground
)

func (k CommandKind) String() string {
	switch k {
	case CmdText:
		return "text"
	case CmdNewline:
		return "newline"
	case CmdWrap:
		return "wrap"
	case CmdReset:
		return "reset"
	case CmdBold:
		return "bold"
	case CmdItalic:
		return "italic"
	case CmdForeground:
		return "fg"
	default:
		return "unknown"
	}
}

// Color is a semantic foreground color resolved by the sink's Theme.
type Color uint8

const (
	ColorNone Color = iota
	ColorHeading
	ColorCodeSpan
	ColorCodeFence
	ColorListMarker
	ColorQuote
	ColorRule
)

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorHeading:
		return "heading"
	case ColorCodeSpan:
		return "code"
	case ColorCodeFence:
		return "fence"
	case ColorListMarker:
		return "list"
	case ColorQuote:
		return "quote"
	case ColorRule:
		return "rule"
	default:
		return "unknown"
	}
}

func textCmd(s string) Command { return Command{Kind: CmdText, Text: s} }

func fgCmd(c Color) Command { return Command{Kind: CmdForeground, Color: c} }

var (
	resetCmd   = Command{Kind: CmdReset}
	newlineCmd = Command{Kind: CmdNewline}
	wrapCmd    = Command{Kind: CmdWrap}
	boldCmd    = Command{Kind: CmdBold}
	italicCmd  = Command{Kind: CmdItalic}
)
