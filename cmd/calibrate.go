package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Refit item parameters from the answer log",
	Long: "Re-estimates difficulty and discrimination for every question with enough\n" +
		"logged attempts, then saves a snapshot of the updated state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		refit, err := eng.RecalibrateItems(cmd.Context())
		if err != nil {
			return fmt.Errorf("recalibrate: %w", err)
		}
		if refit == 0 {
			fmt.Println("No items have enough attempts to recalibrate yet.")
			return nil
		}
		if err := eng.Snapshot(cmd.Context()); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		fmt.Printf("Recalibrated %d item(s).\n", refit)
		return nil
	},
}
