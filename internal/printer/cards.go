package printer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/slok/tasks/internal/model"
	"github.com/slok/tasks/internal/taskstore"
)

type cardStyles struct {
	card    lipgloss.Style
	title   lipgloss.Style
	summary lipgloss.Style
	field   lipgloss.Style
	index   lipgloss.Style
}

func newCardStyles(r *lipgloss.Renderer, theme model.Theme) cardStyles {
	fg, dim, border := lipgloss.Color("#1F2328"), lipgloss.Color("#6E7781"), lipgloss.Color("#D0D7DE")
	if theme == model.ThemeDark {
		fg, dim, border = lipgloss.Color("#E6EDF3"), lipgloss.Color("#8B949E"), lipgloss.Color("#30363D")
	}

	return cardStyles{
		card:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		title:   r.NewStyle().Bold(true).Foreground(fg),
		summary: r.NewStyle().Faint(true).Foreground(dim),
		field:   r.NewStyle().Foreground(fg),
		index:   r.NewStyle().Foreground(dim),
	}
}

// CardsPrinter prints tasks as themed terminal cards.
type CardsPrinter struct {
	writer io.Writer
	styles cardStyles
	now    func() time.Time
}

// NewCardsPrinter creates a new cards printer. Colors are only rendered when the
// writer is a color capable terminal.
func NewCardsPrinter(w io.Writer, theme model.Theme) *CardsPrinter {
	return &CardsPrinter{
		writer: w,
		styles: newCardStyles(lipgloss.NewRenderer(w), theme),
		now:    time.Now,
	}
}

// PrintTasks prints one card per task of the view.
func (c *CardsPrinter) PrintTasks(view taskstore.View) error {
	if view.Len() == 0 {
		return c.PrintMessage(noTasksMsg)
	}

	cards := make([]string, 0, view.Len())
	for i, t := range view.All() {
		cards = append(cards, c.styles.index.Render(fmt.Sprintf("#%d", i))+"\n"+c.card(t))
	}

	fmt.Fprintln(c.writer, strings.Join(cards, "\n"))
	return nil
}

// PrintTask prints the card of a task.
func (c *CardsPrinter) PrintTask(task model.Task) error {
	fmt.Fprintln(c.writer, c.card(task))
	return nil
}

// PrintMessage prints a simple text message.
func (c *CardsPrinter) PrintMessage(msg string) error {
	fmt.Fprintln(c.writer, c.styles.field.Render(msg))
	return nil
}

func (c *CardsPrinter) card(t model.Task) string {
	summary := t.Summary
	if summary == "" {
		summary = noSummaryMsg
	}

	lines := []string{
		c.styles.title.Render(t.Title),
		c.styles.summary.Render(summary),
		c.styles.field.Render("State: " + string(t.State)),
	}
	if t.Deadline != nil {
		lines = append(lines, c.styles.field.Render("Deadline: "+FormatDeadline(t.Deadline, c.now())))
	}

	return c.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
