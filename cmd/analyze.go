package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis and print the results",
	Example: "  pathwise analyze -s Python -s SQL --persona switcher\n" +
		"  pathwise analyze --seed 42",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, _ := cmd.Flags().GetStringArray("skill")
		persona, _ := cmd.Flags().GetString("persona")

		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()
		if cmd.Flags().Changed("delay") {
			env.cfg.AnalysisDelay, _ = cmd.Flags().GetDuration("delay")
		}

		st := skills.NewStore()
		if !st.SetPersona(skills.Persona(persona)) {
			return fmt.Errorf("unknown persona %q (want student, professional or switcher)", persona)
		}
		for _, n := range names {
			st.Add(skills.CommitText(n))
		}

		db, events := env.openEvents(cmd)
		if db != nil {
			defer db.Close()
		}
		runner := env.newRunner(events)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		snap := runner.Prepare(st)
		res, err := runner.Run(ctx, snap)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return errors.New("analysis canceled")
			}
			return fmt.Errorf("run analysis: %w", err)
		}

		if snap.Seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "No skills given, using defaults.")
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringArrayP("skill", "s", nil, "Skill to include (repeatable)")
	analyzeCmd.Flags().String("persona", string(skills.PersonaStudent), "Persona: student, professional or switcher")
	analyzeCmd.Flags().Duration("delay", 0, "Simulated analysis time (overrides PATHWISE_ANALYSIS_DELAY)")
}

// printResult writes a plain-text rendition of res.
func printResult(w io.Writer, res analysis.Result) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintln(w, "Skill proficiency")
	fmt.Fprintln(w, sep)
	for _, b := range res.Bars {
		fmt.Fprintf(w, "%-24s  %-20s  %3d%%\n", b.Name, strings.Repeat("█", b.Pct/5), b.Pct)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Career matches")
	fmt.Fprintln(w, sep)
	for i, c := range res.Careers {
		marker := " "
		if i == 0 {
			marker = "▸"
		}
		fmt.Fprintf(w, "%s %-22s  %3d%%  %-4s  %s\n", marker, c.Title, c.Match, c.Tier, strings.Join(c.Tags, ", "))
	}
	if res.Penalized {
		fmt.Fprintln(w, "  (no code or data skills found, matches reduced)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Skill gaps")
	fmt.Fprintln(w, sep)
	for _, g := range res.Gaps {
		fmt.Fprintf(w, "%s %s\n", g.Icon, g.Label)
		for _, item := range g.Items {
			fmt.Fprintf(w, "    %s %s\n", g.Prefix, item)
		}
	}
}
