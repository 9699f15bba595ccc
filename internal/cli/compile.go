package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kiss2smiles/wdqa/internal/graph"
	"github.com/kiss2smiles/wdqa/internal/sparql"
)

// NewCompileCommand compiles a graph JSON file (or stdin) to SPARQL without
// executing it.
func NewCompileCommand() *cobra.Command {
	var showVars bool

	cmd := &cobra.Command{
		Use:   "compile [graph.json]",
		Short: "Compile a semantic graph to SPARQL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args)
			if err != nil {
				return err
			}

			query, err := sparql.Assemble(g, true)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), query)
			if showVars {
				vars := sparql.FreeVariables(g, true, true, true)
				fmt.Fprintf(cmd.OutOrStdout(), "# free variables: %s\n", strings.Join(vars, " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showVars, "vars", false, "print the projected free variables")
	return cmd
}

func readGraph(args []string) (*graph.Graph, error) {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var g graph.Graph
	if err := json.NewDecoder(in).Decode(&g); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}
	return &g, nil
}
