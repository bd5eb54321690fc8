package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
)

// TerminalUI writes results to out and spinners to status. Colours and
// animations are only used when the matching writer is a terminal.
type TerminalUI struct {
	indentLevel    int
	out            io.Writer
	status         io.Writer
	au             aurora.Aurora
	statusIsTerm   bool
	tableBorderCol lipgloss.Color
}

// NewTerminalUI writes results to os.Stdout and spinners to os.Stderr.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithWriters(
		os.Stdout,
		os.Stderr,
		term.IsTerminal(int(os.Stdout.Fd())),
		term.IsTerminal(int(os.Stderr.Fd())),
	)
}

func NewTerminalUIWithWriters(out, status io.Writer, colors bool, animate bool) *TerminalUI {
	return &TerminalUI{
		out:            out,
		status:         status,
		au:             aurora.NewAurora(colors),
		statusIsTerm:   animate,
		tableBorderCol: lipgloss.Color("240"),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.Style(StyledText{fmt.Sprintf(format, args...), SeveritySuccess}))
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.Style(StyledText{fmt.Sprintf(format, args...), SeverityWarn}))
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.Style(StyledText{fmt.Sprintf(format, args...), SeverityError}))
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.writeLine(u.Style(StyledText{fmt.Sprintf(format, args...), SeverityCritical}))
}

// Section example:
//
//	================= Tokens =================
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	right := bars - left
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", right)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	if len(rows) == 0 {
		return
	}
	maxLabel := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > maxLabel {
			maxLabel = w
		}
	}
	p := u.prefix()
	for _, r := range rows {
		label := r[0] + strings.Repeat(" ", maxLabel-runewidth.StringWidth(r[0]))
		fmt.Fprintf(u.out, "%s%s  %s\n", p, label, r[1])
	}
}

// cellWidth is the visible width of s, ignoring ANSI colour codes.
func cellWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	if len(headers) == 0 && len(rows) == 0 {
		return
	}
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}

	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	borderStyle := lipgloss.NewStyle().Foreground(u.tableBorderCol)
	border := func(left, mid, right string) string {
		parts := make([]string, ncols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left + strings.Join(parts, mid) + right)
	}
	renderRow := func(cells []string) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			parts[i] = " " + val + strings.Repeat(" ", widths[i]-cellWidth(val)) + " "
		}
		bar := borderStyle.Render("│")
		return bar + strings.Join(parts, bar) + bar
	}

	p := u.prefix()
	fmt.Fprintf(u.out, "%s%s\n", p, border("┌", "┬", "┐"))
	if len(headers) > 0 {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(headers))
		fmt.Fprintf(u.out, "%s%s\n", p, border("├", "┼", "┤"))
	}
	for _, row := range rows {
		fmt.Fprintf(u.out, "%s%s\n", p, renderRow(row))
	}
	fmt.Fprintf(u.out, "%s%s\n", p, border("└", "┴", "┘"))
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.statusIsTerm {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.status))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
