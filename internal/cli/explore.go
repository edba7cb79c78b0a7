package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// exploreCommand starts the interactive explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Explore layouts interactively",
		Long: `Explore layouts interactively. Pick a kind, toggle positions with the digit
keys and watch the layout change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cat, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()

			m := newExploreModel(cmd.Context(), runner, cat.Kinds())
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// Key Map
// =============================================================================

type exploreKeyMap struct {
	NextKind key.Binding
	PrevKind key.Binding
	Inputs   key.Binding
	Outputs  key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Paths    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		NextKind: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next kind")),
		PrevKind: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev kind")),
		Inputs:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit inputs")),
		Outputs:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "edit outputs")),
		Toggle:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5"), key.WithHelp("0-5", "toggle position")),
		Clear:    key.NewBinding(key.WithKeys("c", "backspace"), key.WithHelp("c", "clear")),
		Paths:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paths")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextKind, k.Inputs, k.Outputs, k.Toggle, k.Paths, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextKind, k.PrevKind},
		{k.Inputs, k.Outputs, k.Toggle, k.Clear},
		{k.Paths, k.Help, k.Quit},
	}
}

// =============================================================================
// Model
// =============================================================================

var (
	exploreFieldStyle  = lipgloss.NewStyle().Foreground(colorGray)
	exploreActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// exploreModel edits one request and recomputes its layout on every change.
type exploreModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	kinds  []supertile.Kind

	kind    int
	inputs  []ring.Position
	outputs []ring.Position
	editOut bool
	paths   bool

	result *pipeline.LayoutResult
	err    error

	keys     exploreKeyMap
	help     help.Model
	showHelp bool
}

func newExploreModel(ctx context.Context, runner *pipeline.Runner, kinds []supertile.Kind) exploreModel {
	m := exploreModel{
		ctx:    ctx,
		runner: runner,
		kinds:  kinds,
		keys:   defaultExploreKeyMap(),
		help:   help.New(),
	}
	m.recompute()
	return m
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.NextKind):
			m.selectKind(m.kind + 1)
		case key.Matches(msg, m.keys.PrevKind):
			m.selectKind(m.kind - 1)
		case key.Matches(msg, m.keys.Inputs):
			m.editOut = false
			return m, nil
		case key.Matches(msg, m.keys.Outputs):
			m.editOut = true
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(ring.Position(msg.String()[0] - '0'))
		case key.Matches(msg, m.keys.Clear):
			m.inputs, m.outputs = nil, nil
		case key.Matches(msg, m.keys.Paths):
			m.paths = !m.paths
		default:
			return m, nil
		}
		m.recompute()
	}
	return m, nil
}

func (m *exploreModel) current() (supertile.Kind, bool) {
	if len(m.kinds) == 0 {
		return supertile.Kind{}, false
	}
	return m.kinds[m.kind], true
}

// selectKind switches kinds, trimming positions to the new arity.
func (m *exploreModel) selectKind(i int) {
	if len(m.kinds) == 0 {
		return
	}
	m.kind = (i + len(m.kinds)) % len(m.kinds)
	in, out := m.kinds[m.kind].Procedure.Arity()
	if len(m.inputs) > in {
		m.inputs = m.inputs[len(m.inputs)-in:]
	}
	if len(m.outputs) > out {
		m.outputs = m.outputs[len(m.outputs)-out:]
	}
	if out == 0 {
		m.editOut = false
	}
}

// toggle adds or removes p from the edited list. A full list drops its
// oldest position.
func (m *exploreModel) toggle(p ring.Position) {
	kind, ok := m.current()
	if !ok {
		return
	}
	in, out := kind.Procedure.Arity()
	list, limit := &m.inputs, in
	if m.editOut {
		list, limit = &m.outputs, out
	}
	for i, q := range *list {
		if q == p {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return
		}
	}
	if limit == 0 {
		return
	}
	*list = append(*list, p)
	if len(*list) > limit {
		*list = (*list)[len(*list)-limit:]
	}
}

func (m *exploreModel) recompute() {
	m.result, m.err = nil, nil
	kind, ok := m.current()
	if !ok {
		m.err = errors.New(errors.ErrCodeInvalidRequest, "catalog is empty")
		return
	}
	in, out := kind.Procedure.Arity()
	if len(m.inputs) < in || len(m.outputs) < out {
		return
	}
	req := supertile.Request{Kind: kind.Name, Inputs: m.inputs, Outputs: m.outputs}
	m.result, m.err = m.runner.Layout(m.ctx, req, pipeline.LayoutOptions{Paths: m.paths})
}

func (m exploreModel) field(label string, ps []ring.Position, active bool) string {
	value := render.Positions(ps)
	if value == "" {
		value = "-"
	}
	style := exploreFieldStyle
	if active {
		style = exploreActiveStyle
	}
	return style.Render(label+": ") + StyleValue.Render(value)
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Supertile Explorer"))
	b.WriteString("\n\n")

	kind, ok := m.current()
	if ok {
		in, out := kind.Procedure.Arity()
		fmt.Fprintf(&b, "%s %s  %s\n",
			exploreFieldStyle.Render("kind:"),
			StyleHighlight.Render(kind.Name),
			StyleDim.Render(fmt.Sprintf("(%s, %d in / %d out)", kind.Procedure, in, out)))
		b.WriteString(m.field("inputs", m.inputs, !m.editOut))
		if out > 0 {
			b.WriteString("   " + m.field("outputs", m.outputs, m.editOut))
		}
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(exploreErrorStyle.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
	case m.result != nil:
		st := m.result.Supertile
		b.WriteString(layoutView(st))
		b.WriteString("\n")
		b.WriteString(StyleValue.Render(render.Reduced(st)))
		b.WriteString("\n")
		if st.Paths != nil {
			b.WriteString("\n" + pathsView(render.Paths(st.Paths)))
		}
	default:
		b.WriteString(StyleDim.Render("Choose positions to compute a layout."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
