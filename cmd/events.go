package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the local event log",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis and chat events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().RecentEvents(cmd.Context(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		printEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var eventsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize analysis runs and chat usage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		totals, err := repo.AnalysisTotals(cmd.Context())
		if err != nil {
			return fmt.Errorf("analysis totals: %w", err)
		}
		usage, err := repo.ChatUsageByRule(cmd.Context())
		if err != nil {
			return fmt.Errorf("chat usage: %w", err)
		}

		printStats(cmd.OutOrStdout(), totals, usage)
		return nil
	},
}

func init() {
	eventsListCmd.Flags().IntP("limit", "n", 20, "Maximum number of events to show (0 = all)")
	eventsListCmd.Flags().String("kind", "", "Only show events of this kind (analysis or chat)")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsStatsCmd)
}

func printEvents(w io.Writer, events []store.EventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}

	// Header.
	fmt.Fprintf(w, "%-5s  %-19s  %-8s  %s\n", "Seq", "Timestamp", "Kind", "Details")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, e := range events {
		fmt.Fprintf(w, "%-5d  %-19s  %-8s  %s\n",
			e.Sequence,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Kind,
			eventDetails(e),
		)
	}
}

func eventDetails(e store.EventRecord) string {
	switch {
	case e.Analysis != nil:
		a := e.Analysis
		if a.Canceled {
			return fmt.Sprintf("%s  %d skills  canceled after %dms", a.Persona, a.SkillCount, a.DurationMs)
		}
		details := fmt.Sprintf("%s  %d skills  → %s", a.Persona, a.SkillCount, a.TopCareer)
		if a.Seeded {
			details += "  (defaults)"
		}
		if a.Penalized {
			details += "  (penalized)"
		}
		return details
	case e.Chat != nil:
		c := e.Chat
		details := fmt.Sprintf("rule=%s  %dms", c.Rule, c.LatencyMs)
		if c.QuickPrompt {
			details += "  (quick prompt)"
		}
		return details
	}
	return ""
}

func printStats(w io.Writer, t store.AnalysisTotals, usage map[string]int) {
	fmt.Fprintln(w, "Analysis runs")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "  %-18s %d\n", "Runs", t.Runs)
	fmt.Fprintf(w, "  %-18s %d\n", "Canceled", t.Canceled)
	fmt.Fprintf(w, "  %-18s %d\n", "Used defaults", t.Seeded)
	fmt.Fprintf(w, "  %-18s %d\n", "Penalized", t.Penalized)
	fmt.Fprintf(w, "  %-18s %.0fms\n", "Average duration", t.AvgDurationMs)
	for _, title := range slices.Sorted(maps.Keys(t.TopCareers)) {
		fmt.Fprintf(w, "  top: %-13s %d\n", title, t.TopCareers[title])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Counselor replies by rule")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if len(usage) == 0 {
		fmt.Fprintln(w, "  none yet")
		return
	}
	for _, rule := range slices.Sorted(maps.Keys(usage)) {
		fmt.Fprintf(w, "  %-18s %d\n", rule, usage[rule])
	}
}
