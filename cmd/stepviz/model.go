package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/stepviz/mst"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/searching"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/step"
)

// phase is the model's current screen.
type phase int

const (
	phasePick phase = iota
	phaseView
)

// algoChoice pairs a menu label with the stepper it runs. Traces are
// computed eagerly on selection; stepping through them never re-runs the
// algorithm.
type algoChoice struct {
	label string
	run   func() ([]step.Step, error)
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Next  key.Binding
	Prev  key.Binding
	Home  key.Binding
	End   key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Home, k.End, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Next, k.Prev, k.Home, k.End},
		{k.Back, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Next:  key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/space", "next step")),
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev step")),
		Home:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first step")),
		End:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last step")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	in      *inputs
	choices []algoChoice
	cursor  int
	phase   phase
	player  *playback.Player[step.Step]
	current string
	err     error
	keys    keyMap
	help    help.Model
	width   int
}

func newModel(in *inputs) model {
	return model{
		in:      in,
		choices: buildChoices(in),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// buildChoices enumerates the fixed algorithm set against one scenario.
func buildChoices(in *inputs) []algoChoice {
	var out []algoChoice

	for _, m := range sorting.Methods() {
		method := m
		out = append(out, algoChoice{
			label: method + " sort",
			run: func() ([]step.Step, error) {
				steps, err := sorting.Compute(in.array, sorting.WithMethod(method))
				return asSteps(steps), err
			},
		})
	}
	for _, m := range searching.Methods() {
		method := m
		out = append(out, algoChoice{
			label: method + " search",
			run: func() ([]step.Step, error) {
				arr := in.array
				if method == searching.MethodBinary {
					arr = in.sortedArray
				}
				steps, err := searching.Compute(arr, in.target, searching.WithMethod(method))
				return asSteps(steps), err
			},
		})
	}
	for _, m := range mst.Methods() {
		method := m
		out = append(out, algoChoice{
			label: method + " (MST)",
			run: func() ([]step.Step, error) {
				steps, err := mst.Compute(in.graph, mst.WithMethod(method), mst.WithStart(in.start))
				return asSteps(steps), err
			},
		})
	}
	return out
}

// asSteps widens a typed trace to the Step interface for uniform playback.
func asSteps[T step.Step](trace []T) []step.Step {
	out := make([]step.Step, len(trace))
	for i, s := range trace {
		out[i] = s
	}
	return out
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.phase = phasePick
			m.player = nil
			m.err = nil
			return m, nil
		}

		if m.phase == phasePick {
			return m.updatePick(msg)
		}
		return m.updateView(msg)
	}
	return m, nil
}

func (m model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		choice := m.choices[m.cursor]
		trace, err := choice.run()
		if err != nil {
			m.err = fmt.Errorf("running %s: %w", choice.label, err)
			return m, nil
		}
		m.current = choice.label
		m.player = playback.New(trace)
		m.phase = phaseView
	}
	return m, nil
}

func (m model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.player.Next()
	case key.Matches(msg, m.keys.Prev):
		m.player.Prev()
	case key.Matches(msg, m.keys.Home):
		m.player.Rewind()
	case key.Matches(msg, m.keys.End):
		m.player.End()
	}
	return m, nil
}
