// Command stepviz steps through algorithm traces in the terminal.
//
// Usage:
//
//	stepviz [-scenario file.yaml]
//
// With no flags a built-in seeded scenario is used. The scenario file
// supplies the array, search target, graph, and Prim start node:
//
//	array: [5, 3, 8, 1, 9, 12, 44, 7]
//	target: 8
//	start: 0
//	graph:
//	  nodes:
//	    - {id: 0, x: 100, y: 100}
//	    - {id: 1, x: 300, y: 100}
//	  edges:
//	    - {id: e0, source: 0, target: 1, weight: 4}
//
// Traces are computed eagerly when an algorithm is selected; the keyboard
// only moves a cursor over the finished sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	scenario := flag.String("scenario", "", "path to a YAML scenario file (empty for the built-in one)")
	flag.Parse()

	in, err := loadInputs(*scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stepviz:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(in), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "stepviz:", err)
		os.Exit(1)
	}
}
