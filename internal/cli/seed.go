package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all products with the fixture set",
	Long:  "Deletes every product and image, then inserts the fixtures (embedded set or SEED_FILE)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.seeder.Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "SEED EXECUTED")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
