package main

import (
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "opendraw",
	Short: "opendraw - publicly verifiable lucky draws",
	Long: `opendraw runs commit-then-reveal lucky draws: publish a commitment to a
participant list before an unpredictable public signal (a stock index close,
a block hash) is known, then derive a deterministic ranking from the revealed
signal. Nobody can steer the outcome after commitment, and anyone can
recompute the same result from the same inputs.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("opendraw version {{.Version}}\n")
}
