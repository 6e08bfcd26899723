package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"nostrwot/internal/db"
	"nostrwot/internal/wot"
)

var (
	buildDBPath string
	buildOut    string
	buildGzip   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a trust graph from a contacts database and export it",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := db.OpenDB(buildDBPath)
		if err != nil {
			return err
		}
		defer d.Close()

		g, err := wot.GraphFromDB(d)
		if err != nil {
			return fmt.Errorf("building graph: %w", err)
		}

		out := buildOut
		if buildGzip && !strings.HasSuffix(out, ".gz") {
			out += ".gz"
		}
		if strings.HasSuffix(out, ".gz") {
			err = g.ExportToFileGzip(out)
		} else {
			err = g.ExportToFile(out)
		}
		if err != nil {
			return fmt.Errorf("exporting graph: %w", err)
		}

		fmt.Printf("wrote %s: %d nodes, %d edges\n", out, g.NodeCount(), g.EdgeCount())
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildDBPath, "db", "contacts.db", "Path to the contacts database")
	buildCmd.Flags().StringVar(&buildOut, "out", "wot.graph.gz", "Output graph file")
	buildCmd.Flags().BoolVar(&buildGzip, "gzip", false, "Force gzip compression regardless of extension")
	rootCmd.AddCommand(buildCmd)
}
