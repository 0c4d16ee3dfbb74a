package report

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/crimeset"
	"github.com/npillmayer/crimeset/crime"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // total width of a table row, in ens
	Context   *uax11.Context // context for measuring display widths
}

// Highlight classifies table rows for coloring.
type Highlight int

// Row highlights
const (
	Plain Highlight = iota
	Arrested
	Domestic
)

const (
	defaultLineWidth = 80
	minDescrWidth    = 8
	maxTypeWidth     = 20
	dateLayout       = "2006-01-02 15:04"
	ellipsis         = "…"
)

// Console is a format for outputting crime sets as a table to a console with a
// fixed width font.
type Console struct {
	colors map[Highlight]*color.Color
	plain  bool
}

// NewConsole creates a console formatter. colors maps row highlights to colors
// and may contain just a subset of the highlights. If colors is nil, a default
// palette is used.
func NewConsole(colors map[Highlight]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Highlight]*color.Color {
	palette := map[Highlight]*color.Color{
		Arrested: color.New(color.FgRed),
		Domestic: color.New(color.FgYellow),
	}
	return palette
}

// DisableColors switches off coloring of rows.
func (con *Console) DisableColors() {
	con.plain = true
}

// Print outputs a crime set to stdout.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties.
func (con *Console) Print(s *crimeset.Set, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return con.Output(s, os.Stdout, config)
}

// Output writes a crime set as a table to w, one crime per line, in ascending
// ID order. It is safe to have config.Context set to nil; in this case,
// uax11.LatinContext is used.
func (con *Console) Output(s *crimeset.Set, w io.Writer, config *Config) error {
	if s == nil || w == nil {
		return crimeset.ErrIllegalArguments
	}
	setup()
	cfg := Config{LineWidth: defaultLineWidth, Context: uax11.LatinContext}
	if config != nil {
		if config.LineWidth > 0 {
			cfg.LineWidth = config.LineWidth
		}
		if config.Context != nil {
			cfg.Context = config.Context
		}
	}
	layout := con.layout(s, &cfg)
	T().Debugf("console table layout = %+v", layout)
	var err error
	s.Each(func(c crime.Crime) bool {
		err = con.row(c, layout, w)
		return err == nil
	})
	return err
}

// tableLayout holds the column widths of a table.
type tableLayout struct {
	idWidth, typeWidth, descrWidth int
	context                        *uax11.Context
}

func (con *Console) layout(s *crimeset.Set, cfg *Config) tableLayout {
	l := tableLayout{context: cfg.Context}
	s.Each(func(c crime.Crime) bool {
		l.idWidth = max(l.idWidth, len(strconv.FormatInt(c.ID, 10)))
		l.typeWidth = max(l.typeWidth, width(c.PrimaryType, cfg.Context))
		return true
	})
	l.typeWidth = min(l.typeWidth, maxTypeWidth)
	// ID | IUCR | date | type | description, separated by 2 spaces each
	fixed := l.idWidth + 4 + len(dateLayout) + l.typeWidth + 4*2
	l.descrWidth = max(cfg.LineWidth-fixed, minDescrWidth)
	return l
}

func (con *Console) row(c crime.Crime, l tableLayout, w io.Writer) error {
	var sb strings.Builder
	id := strconv.FormatInt(c.ID, 10)
	sb.WriteString(strings.Repeat(" ", l.idWidth-len(id)))
	sb.WriteString(id)
	sb.WriteString("  ")
	sb.WriteString(pad(c.IUCR, 4, l.context))
	sb.WriteString("  ")
	if c.Date.IsZero() {
		sb.WriteString(strings.Repeat(" ", len(dateLayout)))
	} else {
		sb.WriteString(c.Date.Format(dateLayout))
	}
	sb.WriteString("  ")
	sb.WriteString(pad(truncate(c.PrimaryType, l.typeWidth, l.context), l.typeWidth, l.context))
	sb.WriteString("  ")
	sb.WriteString(truncate(c.Description, l.descrWidth, l.context))
	line := strings.TrimRight(sb.String(), " ")
	if col := con.colorFor(c); col != nil {
		if _, err := col.Fprint(w, line); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

func (con *Console) colorFor(c crime.Crime) *color.Color {
	if con.plain {
		return nil
	}
	h := Plain
	if c.Arrest {
		h = Arrested
	} else if c.Domestic {
		h = Domestic
	}
	return con.colors[h]
}

// --- Display widths --------------------------------------------------------

func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// pad fills s with spaces up to n ens.
func pad(s string, n int, context *uax11.Context) string {
	if w := width(s, context); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// truncate shortens s to at most n ens, marking a cut with an ellipsis.
func truncate(s string, n int, context *uax11.Context) string {
	if n <= 0 {
		return ""
	}
	if width(s, context) <= n {
		return s
	}
	runes := []rune(s)
	for k := len(runes) - 1; k >= 0; k-- {
		cut := string(runes[:k]) + ellipsis
		if width(cut, context) <= n {
			return cut
		}
	}
	return ""
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: defaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 40 {
			config.LineWidth = w - 1
		}
	}
	T().Infof("setting line length to %d en", config.LineWidth)
	return config
}
