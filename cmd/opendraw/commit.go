package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opendraw/opendraw/core"
)

var commitCmd = &cobra.Command{
	Use:   "commit <participants-file>",
	Short: "Print the participant-list commitment to publish before the signal is known",
	Long: `Compute the commitment hash of a participant file. Publish this value
before the public signal exists; it pins the exact participant multiset
without revealing anything about the outcome, so the list cannot be edited
after the fact without detection.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	names, err := loadParticipants(args[0])
	if err != nil {
		return err
	}
	canonical, err := core.Canonicalize(names)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Total Participants: %d", len(canonical)))
	logger.Info(fmt.Sprintf("List Commitment:    %s", core.ComputeListCommitment(canonical)))
	logger.Info("")
	logger.Info("Publish this commitment before the future signal is known.")
	return nil
}
