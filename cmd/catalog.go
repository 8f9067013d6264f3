package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/pathwise/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or check the content catalog",
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalog as YAML",
	Long: "Print the built-in catalog, or the file given with --catalog, as YAML.\n" +
		"The output is a starting point for a custom catalog.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		if env.cfg.CatalogPath == "" {
			_, err := cmd.OutOrStdout().Write(catalog.Embedded())
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(env.cat); err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		return enc.Close()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %d, %d careers, %d roadmap phases, %d canned questions)\n",
			args[0], c.Version, len(c.Careers), len(c.Roadmap), len(c.Chat.Canned))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogDumpCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
