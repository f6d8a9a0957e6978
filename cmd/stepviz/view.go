package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepviz/step"
)

// Styles map semantic step roles to colors. The roles themselves come from
// the trace; the core never embeds presentation state.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	highlightStyle = cellStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("208")).
			Bold(true)

	pivotStyle = cellStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("135")).
			Bold(true)

	sortedStyle = cellStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("78"))

	foundStyle = cellStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("40")).
			Bold(true)

	treeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Bold(true)

	candidateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	frontierStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	messageStyle = lipgloss.NewStyle().
			Italic(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var b strings.Builder

	if m.phase == phasePick {
		b.WriteString(titleStyle.Render("stepviz: pick an algorithm"))
		b.WriteString("\n")
		for i, c := range m.choices {
			marker := "  "
			label := c.label
			if i == m.cursor {
				marker = cursorStyle.Render("> ")
				label = cursorStyle.Render(label)
			}
			fmt.Fprintf(&b, "%s%s\n", marker, label)
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	cur, ok := m.player.Current()
	if !ok {
		return errorStyle.Render("empty trace")
	}

	header := fmt.Sprintf("%s: step %d/%d", m.current, m.player.Index()+1, m.player.Len())
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	switch s := cur.(type) {
	case step.ArrayStep:
		b.WriteString(renderArrayStep(s))
	case step.GraphStep:
		b.WriteString(renderGraphStep(s))
	}

	b.WriteString(messageStyle.Render(cur.Text()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderArrayStep(s step.ArrayStep) string {
	highlight := toSet(s.Highlight)
	sorted := toSet(s.Sorted)

	var row strings.Builder
	for i, v := range s.Array {
		text := fmt.Sprintf("%d", v)
		switch {
		case i == s.FoundIndex:
			row.WriteString(foundStyle.Render(text))
		case i == s.Pivot:
			row.WriteString(pivotStyle.Render(text))
		case inSet(highlight, i):
			row.WriteString(highlightStyle.Render(text))
		case inSet(sorted, i):
			row.WriteString(sortedStyle.Render(text))
		default:
			row.WriteString(cellStyle.Render(text))
		}
	}
	out := row.String() + "\n"

	var notes []string
	if s.Target != step.None {
		notes = append(notes, fmt.Sprintf("target %d", s.Target))
	}
	if s.Low != step.None && s.High != step.None {
		notes = append(notes, fmt.Sprintf("bounds [%d..%d]", s.Low, s.High))
	}
	if s.Mid != step.None {
		notes = append(notes, fmt.Sprintf("mid %d", s.Mid))
	}
	if len(notes) > 0 {
		out += faintStyle.Render(strings.Join(notes, "  ")) + "\n"
	}
	return out
}

func renderGraphStep(s step.GraphStep) string {
	var b strings.Builder

	visited := toSet(s.HighlightedNodes)
	b.WriteString("nodes: ")
	for i, n := range s.Nodes {
		if i > 0 {
			b.WriteString(" ")
		}
		text := fmt.Sprintf("%d", n.ID)
		switch {
		case n.ID == s.StartNodeID:
			b.WriteString(treeStyle.Render(text + "*"))
		case inSet(visited, n.ID):
			b.WriteString(treeStyle.Render(text))
		default:
			b.WriteString(text)
		}
	}
	b.WriteString("\n")

	inTree := make(map[string]struct{}, len(s.MSTEdges))
	for _, e := range s.MSTEdges {
		inTree[e.ID] = struct{}{}
	}
	marked := make(map[string]struct{}, len(s.HighlightedEdges))
	for _, id := range s.HighlightedEdges {
		marked[id] = struct{}{}
	}

	for _, e := range s.Edges {
		line := fmt.Sprintf("%-6s %d -(%d)- %d", e.ID, e.Source, e.Weight, e.Target)
		switch {
		case s.CandidateEdge != nil && e.ID == s.CandidateEdge.ID:
			line = candidateStyle.Render(line + "  [candidate]")
		case hasID(inTree, e.ID):
			line = treeStyle.Render(line + "  [tree]")
		case hasID(marked, e.ID):
			line = frontierStyle.Render(line)
		default:
			line = faintStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "cost: %d   tree edges: %d/%d\n", s.Cost, len(s.MSTEdges), maxInt(len(s.Nodes)-1, 0))

	if s.DSU != nil {
		ids := make([]int, 0, len(s.DSU.Parent))
		for id := range s.DSU.Parent {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			parts = append(parts, fmt.Sprintf("%d→%d", id, s.DSU.Parent[id]))
		}
		b.WriteString(faintStyle.Render("union-find: " + strings.Join(parts, " ")))
		b.WriteString("\n")
	}
	return b.String()
}

func toSet(idx []int) map[int]struct{} {
	set := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		set[i] = struct{}{}
	}
	return set
}

func inSet(set map[int]struct{}, i int) bool {
	_, ok := set[i]
	return ok
}

func hasID(set map[string]struct{}, id string) bool {
	_, ok := set[id]
	return ok
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
