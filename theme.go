package chatmd

import (
	"sort"
	"strings"

	"pkt.systems/chatmd/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles a TerminalSink applies for each command.
type Styles struct {
	Strong     Style
	Emphasis   Style
	Heading    Style
	CodeSpan   Style
	CodeFence  Style
	ListMarker Style
	Quote      Style
	Rule       Style
}

// Foreground returns the style used for a CmdForeground of color c.
func (s Styles) Foreground(c Color) Style {
	switch c {
	case ColorHeading:
		return s.Heading
	case ColorCodeSpan:
		return s.CodeSpan
	case ColorCodeFence:
		return s.CodeFence
	case ColorListMarker:
		return s.ListMarker
	case ColorQuote:
		return s.Quote
	case ColorRule:
		return s.Rule
	default:
		return Style{}
	}
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme that emits no escape sequences.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Strong:     style(palette.Bold, p.Strong),
		Emphasis:   style(palette.Italic, p.Emphasis),
		Heading:    style(p.Heading),
		CodeSpan:   style(p.CodeInline),
		CodeFence:  style(palette.Dim, p.CodeBlock),
		ListMarker: style(p.ListMarker),
		Quote:      style(p.Quote),
		Rule:       style(p.ThematicBreak),
	}
}

var builtinThemes = map[string]Theme{
	"default":          theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":          theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":          theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":             theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"tokyo-night":      theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"catppuccin-mocha": theme{name: "catppuccin-mocha", styles: stylesFromPalette(palette.PaletteCatppuccinMocha)},
	"solarized-dark":   theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light":  theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-dark":      theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"github-light":     theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"boring":           BoringTheme(),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
