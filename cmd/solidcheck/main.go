// Package main is the entrypoint of solidcheck,
// the tool that keeps the README and the snippet files honest with each other.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.llib.dev/solid"
	"go.llib.dev/solid/internal/docsync"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:           "solidcheck",
	Short:         "solidcheck verifies the SOLID guide's README against its snippet files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report every disagreement between the README, the manifest and the snippet files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			root     = viper.GetString("root")
			manifest = viper.GetString("manifest")
			readme   = viper.GetString("readme")
		)
		mismatches, err := docsync.Check(root, manifest, readme)
		if err != nil {
			return err
		}
		for _, m := range mismatches {
			log.Error().
				Str("section", m.Title).
				Str("file", m.Path).
				Msg(m.Reason)
			if m.Diff != "" {
				fmt.Fprintln(os.Stderr, m.Diff)
			}
		}
		if n := len(mismatches); n != 0 {
			return fmt.Errorf("found %d mismatch(es) between %s and the snippet files", n, readme)
		}
		log.Info().Str("readme", readme).Msg("README and snippets are in sync")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the principle catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range solid.Principles() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, p.Name())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "repository root the snippet paths are relative to")
	rootCmd.PersistentFlags().String("manifest", "snippets.yaml", "snippet manifest path, relative to the root")
	rootCmd.PersistentFlags().String("readme", "README.md", "README path, relative to the root")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.Fatal().Err(err).Msg("failed to bind flags")
	}
	viper.SetEnvPrefix("SOLIDCHECK")
	viper.AutomaticEnv()

	rootCmd.AddCommand(verifyCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("solidcheck failed")
		os.Exit(1)
	}
}
