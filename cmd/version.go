package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var (
	ErrDevBuild       = errors.New("development build has no version")
	ErrInvalidVersion = errors.New("invalid semantic version")
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "pathwise", version)

		want, _ := cmd.Flags().GetString("require")
		if want == "" {
			return nil
		}
		return requireVersion(version, want)
	},
}

func init() {
	versionCmd.Flags().String("require", "", "Fail unless this build is at least the given version (e.g. v1.2.0)")
}

// canonicalVersion returns v as a canonical semver string with a leading
// "v", or ErrDevBuild / ErrInvalidVersion.
func canonicalVersion(v string) (string, error) {
	if v == "" || v == "(devel)" {
		return "", ErrDevBuild
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	return semver.Canonical(v), nil
}

// requireVersion reports an error when current is older than want.
func requireVersion(current, want string) error {
	w, err := canonicalVersion(want)
	if err != nil {
		return fmt.Errorf("required version: %w", err)
	}
	c, err := canonicalVersion(current)
	if err != nil {
		return err
	}
	if semver.Compare(c, w) < 0 {
		return fmt.Errorf("version %s is older than required %s", c, w)
	}
	return nil
}
