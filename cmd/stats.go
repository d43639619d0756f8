package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tracked mastery, ability, and item state",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state := eng.State()
		if len(state.Mastery) == 0 && len(state.Items) == 0 {
			fmt.Println("No state recorded yet.")
			return nil
		}

		if len(state.Mastery) > 0 {
			fmt.Println(headingStyle.Render("Concept Mastery"))
			fmt.Printf("%-28s  %-8s  %6s  %5s  %-15s  %5s\n",
				"Learner/Concept", "p(L)", "Obs", "Level", "Zone", "Streak")
			fmt.Println(strings.Repeat("─", 78))
			for _, key := range sortedKeys(state.Mastery) {
				m := state.Mastery[key]
				z := state.ZPD[key]
				fmt.Printf("%-28s  %-8.3f  %6d  %5d  %-15s  %5d\n",
					truncate(key, 28), m.PL, m.Observations,
					z.CurrentDifficulty, z.Zone, m.AboveThresholdStreak)
			}
			fmt.Println()
		}

		if len(state.Abilities) > 0 {
			fmt.Println(headingStyle.Render("Ability Estimates"))
			fmt.Printf("%-28s  %7s  %6s  %9s\n", "Learner/Domain", "Theta", "SE", "Responses")
			fmt.Println(strings.Repeat("─", 56))
			for _, key := range sortedKeys(state.Abilities) {
				a := state.Abilities[key]
				fmt.Printf("%-28s  %+7.2f  %6.3f  %9d\n",
					truncate(key, 28), a.Theta, a.StandardError, a.Responses)
			}
			fmt.Println()
		}

		if len(state.Items) > 0 {
			fmt.Println(headingStyle.Render("Item Bank"))
			fmt.Printf("%-28s  %6s  %6s  %6s  %8s  %5s  %s\n",
				"Question", "a", "b", "c", "Attempts", "Rate", "Calibrated")
			fmt.Println(strings.Repeat("─", 80))
			for _, key := range sortedKeys(state.Items) {
				it := state.Items[key]
				mark := ""
				if it.Calibrated {
					mark = correctStyle.Render("✓")
				}
				fmt.Printf("%-28s  %6.2f  %+6.2f  %6.2f  %8d  %5.2f  %s\n",
					truncate(key, 28), it.DiscriminationA, it.DifficultyB,
					it.GuessingC, it.AttemptCount, it.ObservedRate, mark)
			}
		}
		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
