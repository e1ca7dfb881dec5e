package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress across topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		eng, _, err := buildEngine(ctx, cmd, st)
		if err != nil {
			return err
		}

		userID := resolveUser(cmd)
		d, err := eng.BuildDashboard(ctx, userID)
		if err != nil {
			return fmt.Errorf("build dashboard: %w", err)
		}

		if len(d.Topics) == 0 {
			fmt.Println("No topics yet. Run `relevia learn` to get started.")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %8s  %8s  %8s  %s\n",
			"Topic", "Mastery", "Answered", "Accuracy", "Interest", "Unlocked")
		fmt.Println(strings.Repeat("─", 92))
		for _, row := range d.Topics {
			name := strings.Repeat("  ", row.Topic.Depth) + row.Topic.Name
			if len(name) > 36 {
				name = name[:36]
			}
			unlocked := ""
			if row.Unlocked {
				unlocked = "✓"
			}
			fmt.Printf("%-36s  %-10s  %8d  %7.0f%%  %8.2f  %s\n",
				name, row.MasteryLevel, row.Answered, row.Accuracy*100, row.InterestScore, unlocked)
		}
		fmt.Println(strings.Repeat("─", 92))
		fmt.Printf("Total answered: %d   Correct: %d   Accuracy: %.0f%%\n",
			d.TotalAnswered, d.TotalCorrect, d.OverallAccuracy*100)
		return nil
	},
}
