package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/pflag"

	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/view"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Dark: "#58a6ff", Light: "#0969da"}
	colorSubtle = lipgloss.AdaptiveColor{Dark: "#8b949e", Light: "#656d76"}
	colorGreen  = lipgloss.AdaptiveColor{Dark: "#3fb950", Light: "#1a7f37"}
	colorYellow = lipgloss.AdaptiveColor{Dark: "#d29922", Light: "#9a6700"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	typeStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	textStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	hiddenStyle = lipgloss.NewStyle().Foreground(colorYellow)
	branchStyle = lipgloss.NewStyle().Foreground(colorSubtle)
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print a card's node tree and configuration",
		Long: `Build a card document and print its node tree and configuration.

Each node shows its role in the card (or "content" for nodes added by
the document), its type, its laid-out bounds and, for text, its text.
Hidden nodes are marked with their visibility.`,
		Usage: "cardpreview inspect [--width dp] [--dark] <document.yaml>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	var opts buildOptions

	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	opts.addFlags(fs)
	fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printCommandHelp(commands["inspect"], fs.FlagUsages())
			return nil
		}
		return err
	}
	if help, _ := fs.GetBool("help"); help {
		printCommandHelp(commands["inspect"], fs.FlagUsages())
		return nil
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("inspect takes exactly one document, got %d", fs.NArg())
	}

	errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose})
	defer errors.SetHandler(nil)

	b, err := buildCard(fs.Arg(0), opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, titleStyle.Render(fmt.Sprintf("Card %gx%g px", b.size.Width, b.size.Height)))
	var sb strings.Builder
	writeTree(&sb, b.card, b.card.ChildAt(0), "")
	fmt.Fprint(stdout, sb.String())
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, configTable(b.card))
	return nil
}

// writeTree writes v and its descendants, one node per line.
func writeTree(sb *strings.Builder, c *card.Card, v view.View, prefix string) {
	sb.WriteString(describe(c, v))
	sb.WriteByte('\n')

	g, ok := v.(view.ViewGroup)
	if !ok {
		return
	}
	n := g.ChildCount()
	for i := 0; i < n; i++ {
		branch, indent := "├─ ", "│  "
		if i == n-1 {
			branch, indent = "└─ ", "   "
		}
		sb.WriteString(branchStyle.Render(prefix + branch))
		writeTree(sb, c, g.ChildAt(i), prefix+indent)
	}
}

func describe(c *card.Card, v view.View) string {
	name := c.NodeName(v)
	if name == "" {
		name = "content"
	}
	kind := strings.TrimPrefix(fmt.Sprintf("%T", v), "*view.")
	r := v.Bounds()
	parts := []string{
		nameStyle.Render(name),
		typeStyle.Render(fmt.Sprintf("%s %gx%g@%g,%g", kind, r.Width(), r.Height(), r.Left, r.Top)),
	}
	if tv, ok := v.(*view.TextView); ok {
		parts = append(parts, textStyle.Render(strconv.Quote(tv.Text())))
	}
	if vis := v.Visibility(); vis != view.Visible {
		parts = append(parts, hiddenStyle.Render(vis.String()))
	}
	return strings.Join(parts, " ")
}

func configTable(c *card.Card) string {
	cfg := c.Config()
	tint := "none"
	if cfg.IconTint != nil {
		tint = cfg.IconTint.String()
	}
	rows := [][]string{
		{"header", c.HeaderState().String()},
		{"title", strconv.Quote(c.Title())},
		{"summary", strconv.Quote(c.Summary())},
		{"iconBackgroundColor", cfg.IconBackgroundColor.String()},
		{"iconTint", tint},
		{"autoTintIcon", strconv.FormatBool(cfg.AutoTintIcon)},
		{"noIcon", strconv.FormatBool(cfg.NoIcon)},
		{"noIconBackground", strconv.FormatBool(cfg.NoIconBackground)},
		{"contentAlign", cfg.ContentAlignment.String()},
		{"recommended", strconv.FormatBool(cfg.Recommended)},
		{"badge", fmt.Sprintf("%gx%g", cfg.BadgeTextWidth, cfg.BadgeHeight)},
		{"background", c.BackgroundColor().String()},
		{"stroke", fmt.Sprintf("%g %s", c.StrokeWidth(), c.StrokeColor())},
		{"radius", fmt.Sprintf("%g", c.Radius())},
		{"checkable", strconv.FormatBool(c.Checkable())},
		{"checkedIconGravity", c.CheckedIconGravity().String()},
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	fieldStyle := lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 1)
	valueStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(branchStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return fieldStyle
			}
			return valueStyle
		}).
		Headers("Field", "Value").
		Rows(rows...)
	return t.String()
}
