package cmd

import (
	"bytes"

	"finderinfo/internal/display"
	"finderinfo/internal/xattr"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <path>...",
	Short: "Show the FinderInfo attribute of files or folders",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	views := make([]*display.View, 0, len(args))
	for _, path := range args {
		log.Infof("Attempting to read FinderInfo from %s", path)
		kind, err := resolveKind(path)
		if err != nil {
			return err
		}
		rec, err := xattr.Load(attrStore, path, kind)
		if err != nil {
			return err
		}
		views = append(views, display.NewView(path, rec))
	}

	var buf bytes.Buffer
	if err := display.RenderAll(&buf, views, format); err != nil {
		return err
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}
