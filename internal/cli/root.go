package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the wdqa CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wdqa",
		Short:         "Semantic-graph question answering over Wikidata",
		Long:          "Compiles candidate semantic graphs into SPARQL, executes them against a Wikidata endpoint and canonicalizes the results into answers.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewCompileCommand())
	cmd.AddCommand(NewAnswerCommand())

	return cmd
}
