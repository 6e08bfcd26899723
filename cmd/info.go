package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"nostrwot/internal/wot"
)

var (
	infoJSON         bool
	infoTopN         int
	infoHubThreshold int
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize a trust graph: sizes, relation split, connectivity, hubs",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := LoadGraph()
		if err != nil {
			return err
		}

		stats := g.Stats(infoHubThreshold, infoTopN)

		if infoJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		printStats(stats)
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	infoCmd.Flags().IntVar(&infoTopN, "top-n", 10, "Number of hubs to show")
	infoCmd.Flags().IntVar(&infoHubThreshold, "hub-threshold", 15, "Minimum degree to consider a node a hub")
	rootCmd.AddCommand(infoCmd)
}

func printStats(stats *wot.GraphStats) {
	fmt.Printf("\n  Nodes: %d  Edges: %d (%d follows, %d mutes)\n",
		stats.Nodes, stats.Edges, stats.Follows, stats.Mutes)
	fmt.Printf("  Components: %d  Largest: %d  Orphans: %d\n",
		stats.Components, stats.LargestComponent, stats.Orphans)

	fmt.Println("\n  Degree distribution:")
	for _, b := range stats.DegreeHistogram {
		if b.Count > 0 {
			fmt.Printf("    %5s: %d\n", b.Label, b.Count)
		}
	}

	if len(stats.Hubs) > 0 {
		fmt.Println("\n  Top hubs (degree > threshold):")
		for _, hub := range stats.Hubs {
			fmt.Printf("    node %d  label %x  degree=%d (in=%d, out=%d)\n",
				hub.ID, hub.Label, hub.Degree, hub.InDegree, hub.OutDegree)
		}
	}
	fmt.Println()
}
