package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiss2smiles/wdqa/internal"
	"github.com/kiss2smiles/wdqa/internal/qa"
	"github.com/kiss2smiles/wdqa/internal/wikidata"
)

// NewAnswerCommand runs the full pipeline for a graph JSON file (or stdin)
// and prints one canonical answer per line.
func NewAnswerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "answer [graph.json]",
		Short: "Compile, execute and canonicalize a semantic graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			logger := internal.NewLogger(config)

			g, err := readGraph(args)
			if err != nil {
				return err
			}

			labels, err := wikidata.LoadEntityMap(config.EntityMapPath)
			if err != nil {
				logger.Warn("entity map unavailable, canonicalization falls back to raw identifiers",
					"path", config.EntityMapPath, "error", err)
				labels = wikidata.LabelMap{}
			}

			answerer := qa.NewAnswerer(wikidata.NewClient(config), labels, logger)
			result, err := answerer.Answer(cmd.Context(), g)
			if err != nil {
				return err
			}
			if result.Failed {
				logger.Warn("knowledge base unreachable, treating as empty answer set")
			}

			for _, answer := range result.Answers {
				fmt.Fprintln(cmd.OutOrStdout(), answer)
			}
			return nil
		},
	}
}
