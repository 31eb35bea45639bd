package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"finderinfo/internal/display"
	"finderinfo/internal/finderinfo"

	"github.com/spf13/cobra"
)

var (
	parseAsFolder bool
	parseAsFile   bool
)

var parseHexCmd = &cobra.Command{
	Use:   "parse-hex (-d | -f) <hex-data>",
	Short: "Decode a hex dump of the attribute",
	Long: `Decode 32 hex-encoded bytes as a file (-f) or folder (-d) record.
Whitespace and colons in the dump are ignored, so output of xattr -px can be
pasted directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParseHex,
}

func init() {
	rootCmd.AddCommand(parseHexCmd)
	parseHexCmd.Flags().BoolVarP(&parseAsFolder, "directory", "d", false, "Read FinderInfo as directory")
	parseHexCmd.Flags().BoolVarP(&parseAsFile, "file", "f", false, "Read FinderInfo as file")
	parseHexCmd.MarkFlagsMutuallyExclusive("directory", "file")
	parseHexCmd.MarkFlagsOneRequired("directory", "file")
}

func runParseHex(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, strings.Join(args, ""))

	buf, err := hex.DecodeString(cleaned)
	if err != nil {
		return fmt.Errorf("invalid hexadecimal string: %w", err)
	}

	kind := finderinfo.KindFile
	if parseAsFolder {
		kind = finderinfo.KindFolder
	}
	rec, err := finderinfo.Parse(buf, kind)
	if err != nil {
		return err
	}
	return display.Render(cmd.OutOrStdout(), "", rec, format)
}
