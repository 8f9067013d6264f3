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

	"github.com/abhisek/pathwise/internal/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the career counselor a question",
	Example: "  pathwise ask How long will it take to become job-ready?\n" +
		"  pathwise ask --prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		if prompts, _ := cmd.Flags().GetBool("prompts"); prompts {
			printPrompts(cmd.OutOrStdout(), env.cat.Questions())
			return nil
		}

		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return errors.New("nothing to ask: pass a question or --prompts")
		}

		if instant, _ := cmd.Flags().GetBool("instant"); instant {
			env.cfg.ChatMinDelay, env.cfg.ChatMaxDelay = 0, 0
		}

		db, events := env.openEvents(cmd)
		if db != nil {
			defer db.Close()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		reply, err := env.newResponder(events).Respond(ctx, chat.Request{Text: question})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return errors.New("question canceled")
			}
			return fmt.Errorf("ask: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), plainText(reply.Text))
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("prompts", false, "List the quick prompts instead of asking")
	askCmd.Flags().Bool("instant", false, "Skip the simulated thinking time")
}

func printPrompts(w io.Writer, questions []string) {
	for i, q := range questions {
		fmt.Fprintf(w, "%d  %s\n", i+1, q)
	}
}

// plainText drops the bold markers from a reply.
func plainText(s string) string {
	var b strings.Builder
	for _, sp := range chat.ParseMarkup(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}
