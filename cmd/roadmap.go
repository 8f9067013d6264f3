package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Print the learning roadmap",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		career, _ := cmd.Flags().GetString("career")

		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		printRoadmap(cmd.OutOrStdout(), roadmap.Heading(career), roadmap.Build(env.cat.Roadmap))
		return nil
	},
}

func init() {
	roadmapCmd.Flags().String("career", "", "Career title to show in the heading")
}

func printRoadmap(w io.Writer, heading string, phases []roadmap.PhaseView) {
	fmt.Fprintln(w, heading)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	for _, p := range phases {
		mark := "○"
		if p.Done {
			mark = "●"
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, p.Label, p.Title)
		for _, it := range p.Items {
			fmt.Fprintf(w, "    %s %-42s [%s]\n", it.Icon, it.Name, it.Badge)
			if it.Detail != "" {
				fmt.Fprintf(w, "       %s\n", it.Detail)
			}
		}
		fmt.Fprintln(w)
	}
}
