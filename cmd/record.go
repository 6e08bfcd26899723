package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"nostrwot/internal/db"
	"nostrwot/internal/keys"
	"nostrwot/internal/wot"
)

var recordDBPath string

var recordCmd = &cobra.Command{
	Use:   "record <pubkey> follows|mutes <target>",
	Short: "Record a follow or mute declaration in the contacts database",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var relation wot.Relation
		switch args[1] {
		case "follows":
			relation = wot.Follow
		case "mutes":
			relation = wot.Mute
		default:
			return fmt.Errorf("relation must be \"follows\" or \"mutes\", got %q", args[1])
		}

		// Validate keys up front so bad input never reaches the database
		for _, raw := range []string{args[0], args[2]} {
			if _, err := keys.ParsePublicKey(raw); err != nil {
				return err
			}
		}

		d, err := db.OpenDB(recordDBPath)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Init(); err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}

		id, err := d.InsertContact(db.Contact{
			Pubkey:    args[0],
			Target:    args[2],
			Relation:  int(relation),
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return fmt.Errorf("recording contact: %w", err)
		}

		fmt.Printf("recorded contact %d: %s %s %s\n", id, args[0], args[1], args[2])
		return nil
	},
}

func init() {
	recordCmd.Flags().StringVar(&recordDBPath, "db", "contacts.db", "Path to the contacts database")
	rootCmd.AddCommand(recordCmd)
}
