package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/opendraw/opendraw/core"
	"github.com/opendraw/opendraw/drawapi"
	"github.com/opendraw/opendraw/internal/config"
)

var (
	drawWinners    int
	drawFormat     string
	drawRecordPath string
)

var drawCmd = &cobra.Command{
	Use:   "draw <participants-file> <signal>",
	Short: "Run a draw for a revealed public signal",
	Long: `Run a deterministic draw over a participant file (one name per line) using
the revealed public signal. The report includes everything a third party
needs to re-verify the result: the participant-list commitment, the draw
digest, and the shuffle seed.`,
	Args: cobra.ExactArgs(2),
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().IntVarP(&drawWinners, "top", "n", 0,
		"number of winners to report (default from config, 3)")
	drawCmd.Flags().StringVar(&drawFormat, "format", "",
		"output format: text or json")
	drawCmd.Flags().StringVar(&drawRecordPath, "record", "",
		"write a verifiable draw record to this path (.json or .cbor)")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	n := cfg.Winners
	if drawWinners != 0 {
		n = drawWinners
	}
	format := cfg.Format
	if drawFormat != "" {
		format = drawFormat
	}

	path, signal := args[0], args[1]
	names, err := loadParticipants(path)
	if err != nil {
		return err
	}

	result, err := core.RunDraw(names, signal, n)
	if err != nil {
		return err
	}

	rec := drawapi.NewDrawRecord(result, signal, n)

	recordPath := drawRecordPath
	if recordPath == "" && cfg.RecordDir != "" {
		recordPath = filepath.Join(cfg.RecordDir, fmt.Sprintf("draw-%s.json", rec.ID))
	}
	if recordPath != "" {
		if err := writeRecord(rec, recordPath); err != nil {
			return err
		}
	}

	if format == "json" {
		data, err := rec.EncodeJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printDrawReport(path, signal, result)
	if recordPath != "" {
		logger.Info(fmt.Sprintf("Draw record written to %q.", recordPath))
	}
	return nil
}

// loadParticipants opens the one-name-per-line participant file.
func loadParticipants(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open participant file: %w", err)
	}
	defer f.Close()
	return core.ParseParticipants(f)
}

// writeRecord serializes the record by file extension: .cbor for the compact
// canonical form, JSON otherwise.
func writeRecord(rec *drawapi.DrawRecord, path string) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		data, err = rec.EncodeCBOR()
	} else {
		data, err = rec.EncodeJSON()
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write draw record: %w", err)
	}
	return nil
}

// slotOdds is the exact chance of any single slot taking a given rank,
// formatted without float representation noise.
func slotOdds(total int) string {
	return decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(total))).StringFixed(4)
}

func printDrawReport(path, signal string, result *core.DrawResult) {
	logger.Info(fmt.Sprintf("Loaded %d participants from %q.", result.TotalCount, path))
	logger.Info("")
	logger.Info("--- Lucky Draw Results ---")
	logger.Info(fmt.Sprintf("Future Signal:      %q", signal))
	logger.Info(fmt.Sprintf("Total Participants: %d", result.TotalCount))
	logger.Info(fmt.Sprintf("List Commitment:    %s", result.Commitment))
	logger.Info(fmt.Sprintf("Draw Digest:        %s", result.DigestHex))
	logger.Info(fmt.Sprintf("Seed:               %s", result.Seed.String()))
	logger.Info(strings.Repeat("-", 30))
	logger.Info(fmt.Sprintf("Top %d Winners (each slot holds any rank with probability %s):",
		len(result.Winners), slotOdds(result.TotalCount)))
	for i, winner := range result.Winners {
		logger.Info(fmt.Sprintf("%d. %s", i+1, winner))
	}
	logger.Info(strings.Repeat("-", 30))
}
