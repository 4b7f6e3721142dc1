package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bloonsbench/sol"
	"github.com/bloonsbench/sol/internal/observability"
)

var (
	decodeInput           string
	decodeOutput          string
	decodeIncludeDisabled bool
	decodeStrict          bool
	decodeDump            bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a save JSON into an editable document",
	Long: `Decode reads a save JSON (a raw export map or a save-editor envelope),
decodes every SOL entry into readable JSON and writes an aggregate
document. Entries that fail to decode are recorded in place; the exit
status is non-zero when any entry failed.`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeInput, "input", "i", "", "path to save JSON (export map or editor format)")
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output path (default: <input>.sol.decoded.json)")
	decodeCmd.Flags().BoolVar(&decodeIncludeDisabled, "include-disabled", false, "include editor entries with enabled=false")
	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false, "abort on the first decode failure")
	decodeCmd.Flags().BoolVar(&decodeDump, "dump", false, "dump decoded entries to stderr")
	decodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()

	payload, err := os.ReadFile(decodeInput)
	if err != nil {
		return err
	}
	inputType, entries, err := sol.LoadSaveEntries(payload, decodeIncludeDisabled || appConfig.IncludeDisabled)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no save entries found in %s", decodeInput)
	}
	for _, e := range entries {
		if !sol.IsSOLData(e.ValueB64) {
			logger.Debug("entry does not look like a SOL container", zap.String("key", e.Key))
		}
	}

	res, err := sol.DecodeBatch(entries, sol.DecodeOptions{Strict: decodeStrict})
	if err != nil {
		return err
	}
	if decodeDump {
		spew.Fdump(os.Stderr, res.Entries)
	}

	outPath := decodeOutput
	if outPath == "" {
		outPath = defaultDecodeOutput(decodeInput)
	}
	out, err := sol.MarshalIndent(sol.NewDecodedDocument(decodeInput, inputType, res))
	if err != nil {
		return err
	}
	if err := writeDocument(outPath, out); err != nil {
		return err
	}

	logger.Info("decoded save entries",
		zap.String("input_type", inputType),
		zap.Int("entries", len(res.Entries)),
		zap.Int("failures", res.Failures),
		zap.String("output", outPath))
	if res.Failures > 0 {
		return fmt.Errorf("%d of %d entries failed to decode", res.Failures, len(res.Entries))
	}
	return nil
}

func defaultDecodeOutput(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+".sol.decoded.json")
}
