package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoreHops uint32

var scoreCmd = &cobra.Command{
	Use:   "score <source-key> <target-key>",
	Short: "Compute the trust score between two identities",
	Long: `Compute the trust score the source identity assigns to the target,
counting follow (+1) and mute (-1) edges reached over paths of at most
--hops hops. Keys are given as 64-character hex or npub.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := LoadGraph()
		if err != nil {
			return err
		}

		source, err := ResolveNode(g, args[0])
		if err != nil {
			return fmt.Errorf("source: %w", err)
		}
		target, err := ResolveNode(g, args[1])
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}

		fmt.Println(g.DumpWot(source, target, scoreHops))
		return nil
	},
}

func init() {
	scoreCmd.Flags().Uint32Var(&scoreHops, "hops", 3, "Maximum path length to consider")
	rootCmd.AddCommand(scoreCmd)
}
