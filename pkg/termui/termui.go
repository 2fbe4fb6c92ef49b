// Package termui renders operator-facing startup output: status lines, a
// titled panel and the branding banner. It is presentation only; nothing in
// the serving path depends on it.
package termui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))               //nolint: gochecknoglobals
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))               //nolint: gochecknoglobals
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)    //nolint: gochecknoglobals
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)    //nolint: gochecknoglobals
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))          //nolint: gochecknoglobals
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1) //nolint: gochecknoglobals
)

// UI writes styled operator output to a writer.
type UI struct {
	out io.Writer
}

// New returns a UI writing to the given writer. A nil writer defaults to
// stdout.
func New(out io.Writer) *UI {
	if out == nil {
		out = os.Stdout
	}

	return &UI{out: out}
}

// Info prints an informational line.
func (u *UI) Info(msg string) {
	fmt.Fprintln(u.out, infoStyle.Render("• "+msg))
}

// Success prints a success line.
func (u *UI) Success(msg string) {
	fmt.Fprintln(u.out, successStyle.Render("✓ "+msg))
}

// Warning prints a warning line.
func (u *UI) Warning(msg string) {
	fmt.Fprintln(u.out, warnStyle.Render("⚠ "+msg))
}

// Panel prints a bordered panel with a title and body.
func (u *UI) Panel(title, body string) {
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		body,
	)
	fmt.Fprintln(u.out, panelStyle.Render(content))
}

// StatusLine prints ordered key/value pairs on a single line.
func (u *UI) StatusLine(pairs [][2]string) {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, keyStyle.Render(p[0]+"=")+p[1])
	}
	fmt.Fprintln(u.out, strings.Join(parts, "  "))
}

// Banner prints the branding banner. Cosmetic only.
func (u *UI) Banner() {
	logo := strings.Join([]string{
		`      _                 _     _`,
		`  ___| | _____   ____ _| |__ | | ___`,
		" / __| |/ _ \\ \\ / / _` | '_ \\| |/ _ \\",
		`| (__| | (_) \ V / (_| | |_) | |  __/`,
		` \___|_|\___/ \_/ \__,_|_.__/|_|\___|`,
	}, "\n")
	fmt.Fprintln(u.out, bannerStyle.Render(logo))
}
