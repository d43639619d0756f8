package cmd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/engine"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Drive a simulated learner through the engine",
	Long: "Simulates a learner with a fixed true ability answering questions on one\n" +
		"concept, and prints the engine's view after every answer. Useful for\n" +
		"sanity-checking configuration and watching the difficulty policy react.",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetInt("answers")
		trueTheta, _ := cmd.Flags().GetFloat64("theta")
		concept, _ := cmd.Flags().GetString("concept")
		domain, _ := cmd.Flags().GetString("domain")
		learner, _ := cmd.Flags().GetString("learner")
		seed, _ := cmd.Flags().GetInt64("seed")

		if learner == "" {
			learner = "sim-" + uuid.New().String()[:8]
		}
		rng := rand.New(rand.NewSource(seed))

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		fmt.Println(headingStyle.Render("Simulating " + learner))
		fmt.Printf("%s concept=%s domain=%s true_theta=%.2f\n\n",
			labelStyle.Render("setup:"), concept, domain, trueTheta)

		for i := 0; i < answers; i++ {
			level := eng.DifficultyFor(learner, concept)
			expected := eng.ExpectedTimeMs(level)
			correct := rng.Float64() < successProbability(trueTheta, level)

			responseTime := expected/2 + rng.Intn(expected)
			hints := 0
			if !correct && rng.Float64() < 0.4 {
				hints = 1
				err := eng.RecordInteraction(ctx, learner, concept, behavior.Event{
					Type: behavior.EventHintRequest,
				})
				if err != nil {
					return fmt.Errorf("record hint: %w", err)
				}
			}

			res, err := eng.ProcessAnswer(ctx, engine.AnswerEvent{
				LearnerID:      learner,
				ConceptID:      concept,
				QuestionID:     fmt.Sprintf("%s-L%d-%d", concept, level, rng.Intn(5)),
				Domain:         domain,
				QuestionType:   "scenario",
				Correct:        correct,
				ResponseTimeMs: responseTime,
				ExpectedTimeMs: expected,
				HintsUsed:      hints,
				AttemptNumber:  1,
			})
			if err != nil {
				return fmt.Errorf("answer %d: %w", i+1, err)
			}

			line := fmt.Sprintf("%2d %s L%d  p_l=%.3f  θ=%+.2f  %-15s → L%d (%s)",
				i+1, outcomeMark(correct), level,
				res.MasteryProbability, res.Theta, res.Zone,
				res.Decision.NewDifficulty, res.Decision.Reason)
			if res.BehavioralIndicator != behavior.IndicatorNone {
				line += "  " + warnStyle.Render(string(res.BehavioralIndicator))
			}
			fmt.Println(line)
			if res.ScaffoldingRecommended {
				fmt.Println(labelStyle.Render("     support: " + string(res.Scaffolding.Area)))
			}

			if res.Decision.MasteryAchieved {
				fmt.Println("\n" + correctStyle.Render("Mastery declared") +
					fmt.Sprintf(" after %d answers (p_l=%.3f)", i+1, res.MasteryProbability))
				break
			}
		}

		if err := eng.Snapshot(ctx); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		return nil
	},
}

// successProbability models the simulated learner with a 3PL response
// curve against a difficulty mapped onto the level ladder.
func successProbability(theta float64, level int) float64 {
	b := -3.0 + float64(level-1)*1.2
	const a, c = 1.0, 0.2
	return c + (1-c)/(1+math.Exp(-a*(theta-b)))
}

func init() {
	simulateCmd.Flags().IntP("answers", "n", 20, "Maximum number of answers to simulate")
	simulateCmd.Flags().Float64("theta", 0.5, "True ability of the simulated learner")
	simulateCmd.Flags().String("concept", "fractions", "Concept identifier")
	simulateCmd.Flags().String("domain", "general", "Knowledge domain (selects mastery thresholds)")
	simulateCmd.Flags().String("learner", "", "Learner identifier (random when empty)")
	simulateCmd.Flags().Int64("seed", 1, "Random seed")
}
