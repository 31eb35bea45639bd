package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"finderinfo/internal/finderinfo"
	"finderinfo/internal/xattr"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var readFileTypeCmd = &cobra.Command{
	Use:   "read-filetype <path>",
	Short: "Print the four character file type of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadFileType,
}

var writeFileTypeCmd = &cobra.Command{
	Use:   "write-filetype <path> <code>",
	Short: "Set the four character file type of a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWriteCode(cmd, args, func(fi *finderinfo.FileInfo) *finderinfo.OSType { return &fi.FileType }, "filetype")
	},
}

var writeCreatorCmd = &cobra.Command{
	Use:   "write-creator <path> <code>",
	Short: "Set the four character creator code of a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWriteCode(cmd, args, func(fi *finderinfo.FileInfo) *finderinfo.OSType { return &fi.FileCreator }, "creator")
	},
}

var setLabelCmd = &cobra.Command{
	Use:   "set-label <path> <color>",
	Short: "Set the label color (None, Gray, Green, Purple, Blue, Yellow, Red, Orange or 0-7)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSetLabel,
}

var setFlagCmd = &cobra.Command{
	Use:   "set-flag <path> <flag> <on|off>",
	Short: "Turn a Finder or extended Finder flag on or off",
	Long:  "Turn a Finder or extended Finder flag on or off.\n\nFinder flags: " + flagNameList(),
	Args:  cobra.ExactArgs(3),
	RunE:  runSetFlag,
}

func init() {
	rootCmd.AddCommand(readFileTypeCmd)
	rootCmd.AddCommand(writeFileTypeCmd)
	rootCmd.AddCommand(writeCreatorCmd)
	rootCmd.AddCommand(setLabelCmd)
	rootCmd.AddCommand(setFlagCmd)
}

func flagNameList() string {
	var names []string
	for _, f := range finderinfo.FinderFlagList() {
		names = append(names, f.String())
	}
	var ext []string
	for _, f := range finderinfo.ExtendedFlagList() {
		ext = append(ext, f.String())
	}
	return strings.Join(names, ", ") + "\nExtended flags: " + strings.Join(ext, ", ")
}

func runReadFileType(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.Infof("Attempting to read FinderInfo from %s", path)

	kind, err := resolveKind(path)
	if err != nil {
		return err
	}
	if kind != finderinfo.KindFile {
		return fmt.Errorf("%s is a directory and has no file type", path)
	}
	rec, err := xattr.Load(attrStore, path, kind)
	if err != nil {
		return err
	}
	fi, _ := rec.File()
	fmt.Fprintf(cmd.OutOrStdout(), "file type: %s\n", fi.FileType)
	return nil
}

func runWriteCode(cmd *cobra.Command, args []string, field func(*finderinfo.FileInfo) *finderinfo.OSType, what string) error {
	path := args[0]
	code, err := finderinfo.ParseOSType(args[1])
	if err != nil {
		return err
	}

	kind, err := resolveKind(path)
	if err != nil {
		return err
	}
	if kind != finderinfo.KindFile {
		return fmt.Errorf("attempted to set %s on a directory: %s", what, path)
	}

	rec, err := xattr.LoadOrNew(attrStore, path, kind)
	if err != nil {
		return err
	}
	fi, _ := rec.File()
	target := field(fi)
	log.Infof("Original %s: %s", what, *target)
	*target = code
	log.Infof("New %s: %s", what, code)

	if err := xattr.Save(attrStore, path, rec); err != nil {
		return err
	}
	log.Infoln("Successfully wrote FinderInfo")
	return nil
}

func runSetLabel(cmd *cobra.Command, args []string) error {
	path := args[0]
	color, err := finderinfo.ParseLabelColor(args[1])
	if err != nil {
		return err
	}

	return updateRecord(path, func(rec *finderinfo.Record) error {
		flags := rec.Flags()
		log.Infof("Label %s -> %s", flags.LabelColor(), color)
		flags.SetLabelColor(color)
		rec.SetFlags(flags)
		return nil
	})
}

func runSetFlag(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]
	on, err := parseSwitch(args[2])
	if err != nil {
		return err
	}

	if flag, err := finderinfo.ParseFinderFlag(name); err == nil {
		return updateRecord(path, func(rec *finderinfo.Record) error {
			flags := rec.Flags()
			flags.Set(flag, on)
			rec.SetFlags(flags)
			return nil
		})
	}
	flag, err := finderinfo.ParseExtendedFlag(name)
	if err != nil {
		return fmt.Errorf("unknown flag %q", name)
	}
	return updateRecord(path, func(rec *finderinfo.Record) error {
		rec.Extended.ExtendedFlags.Set(flag, on)
		return nil
	})
}

// updateRecord loads the attribute of path (or a zeroed record if there is
// none), applies fn and writes it back.
func updateRecord(path string, fn func(*finderinfo.Record) error) error {
	kind, err := resolveKind(path)
	if err != nil {
		return err
	}
	rec, err := xattr.LoadOrNew(attrStore, path, kind)
	if err != nil {
		return err
	}
	if err := fn(rec); err != nil {
		return err
	}
	if err := xattr.Save(attrStore, path, rec); err != nil {
		return err
	}
	log.Infof("Updated FinderInfo of %s", path)
	return nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "set", "yes":
		return true, nil
	case "off", "clear", "no":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid flag value %q (want on or off)", s)
	}
	return v, nil
}
