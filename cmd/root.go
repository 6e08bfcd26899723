package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"nostrwot/internal/keys"
	"nostrwot/internal/wot"
)

var graphPath string

var rootCmd = &cobra.Command{
	Use:   "nostrwot",
	Short: "Nostr web-of-trust graph tooling and scoring",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&graphPath, "graph", "", "Path to an exported graph (.gz for compressed)")
}

// DiscoverGraph finds the graph file using priority: env > flag > walk-up
func DiscoverGraph() (string, error) {
	// 1. Environment variable
	if envPath := os.Getenv("NOSTRWOT_GRAPH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// 2. CLI flag
	if graphPath != "" {
		if _, err := os.Stat(graphPath); err == nil {
			return graphPath, nil
		}
		return "", fmt.Errorf("graph not found at --graph path: %s", graphPath)
	}

	// 3. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			for _, name := range []string{"wot.graph.gz", "wot.graph"} {
				candidate := filepath.Join(dir, name)
				if _, err := os.Stat(candidate); err == nil {
					return candidate, nil
				}
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("no graph file found (set NOSTRWOT_GRAPH, use --graph, or run from a directory containing wot.graph or wot.graph.gz)")
}

// LoadGraph discovers and imports the graph, decompressing .gz files
func LoadGraph() (*wot.Graph, error) {
	path, err := DiscoverGraph()
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		return wot.ImportFromFileGzip(path)
	}
	return wot.ImportFromFile(path)
}

// ResolveNode parses a pubkey reference and finds its node in the graph
func ResolveNode(g *wot.Graph, reference string) (wot.NodeID, error) {
	pk, err := keys.ParsePublicKey(reference)
	if err != nil {
		return 0, err
	}
	id, ok := g.NodeByLabel(wot.Label(pk.Label()))
	if !ok {
		return 0, fmt.Errorf("key not in graph: %s", reference)
	}
	return id, nil
}
