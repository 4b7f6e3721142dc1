package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bloonsbench/sol"
	"github.com/bloonsbench/sol/internal/observability"
)

var (
	encodeInput           string
	encodeOutput          string
	encodeIncludeDisabled bool
	encodeAllowRebuild    bool
	encodeApplyEdits      bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Re-encode a decoded document into an importable save JSON",
	Long: `Encode reads a decoded document, runs the integrity guard over each
entry and writes the flat key-to-base64 save map. Entries with captured
raw bytes are reused verbatim; hand-edited entries are rejected unless
--apply-edits requests a rebuild, and entries with no raw bytes are
rejected unless --allow-rebuild permits a non-lossless reconstruction.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeInput, "input", "i", "", "path to a decoded JSON document")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output path (default: <input>.reencoded.json)")
	encodeCmd.Flags().BoolVar(&encodeIncludeDisabled, "include-disabled", false, "include entries with enabled=false")
	encodeCmd.Flags().BoolVar(&encodeAllowRebuild, "allow-rebuild", false, "allow non-lossless rebuild of entries missing raw bytes")
	encodeCmd.Flags().BoolVar(&encodeApplyEdits, "apply-edits", false, "rebuild entries from edited profile/outer fields instead of raw bytes")
	encodeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()

	payload, err := os.ReadFile(encodeInput)
	if err != nil {
		return err
	}
	entries, err := sol.LoadDecodedEntries(payload, encodeIncludeDisabled || appConfig.IncludeDisabled)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries found in %s", encodeInput)
	}

	res, err := sol.EncodeBatch(entries, sol.EncodeOptions{
		GuardOptions: sol.GuardOptions{
			AllowRebuild: encodeAllowRebuild,
			ApplyEdits:   encodeApplyEdits,
		},
		ZlibLevel: appConfig.ZlibLevel,
	})
	if err != nil {
		return err
	}

	outPath := encodeOutput
	if outPath == "" {
		outPath = defaultEncodeOutput(encodeInput)
	}
	out, err := sol.MarshalIndent(res.SaveMap)
	if err != nil {
		return err
	}
	if err := writeDocument(outPath, out); err != nil {
		return err
	}

	logger.Info("wrote save JSON",
		zap.Int("entries", len(res.SaveMap)),
		zap.String("output", outPath))
	if res.Rebuilds > 0 {
		logger.Warn("rebuilt entries are not guaranteed byte-identical",
			zap.Int("rebuilt", res.Rebuilds))
	}
	return nil
}

func defaultEncodeOutput(input string) string {
	name := filepath.Base(input)
	if base, ok := strings.CutSuffix(name, ".sol.decoded.json"); ok {
		name = base
	} else {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return filepath.Join(filepath.Dir(input), name+".reencoded.json")
}
