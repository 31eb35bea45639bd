package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"finderinfo/internal/display"
	"finderinfo/internal/storage"
	"finderinfo/internal/xattr"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	snapshotNote string
	restoreFrom  string
	restoreForce bool
	historyLimit int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <path>...",
	Short: "Save the raw FinderInfo attribute of paths to the snapshot database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSnapshot,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <path>",
	Short: "Write the latest snapshot back to the FinderInfo attribute",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var historyCmd = &cobra.Command{
	Use:   "history [path]",
	Short: "List saved snapshots, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(historyCmd)

	snapshotCmd.Flags().StringVar(&snapshotNote, "note", "", "Free-form note stored with the snapshot")
	restoreCmd.Flags().StringVar(&restoreFrom, "from", "", "Restore the snapshot taken of another path")
	restoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Restore even if the snapshot kind differs from the target")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of snapshots to list (0 for all)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, path := range args {
		kind, err := resolveKind(path)
		if err != nil {
			return err
		}
		rec, err := xattr.Load(attrStore, path, kind)
		if errors.Is(err, xattr.ErrNoAttribute) {
			log.Warnf("%s has no %s, skipping", path, xattr.FinderInfoName)
			continue
		}
		if err != nil {
			return err
		}

		snapshot := storage.NewSnapshot(path, rec)
		snapshot.Note = snapshotNote
		if err := store.SaveSnapshot(snapshot); err != nil {
			return fmt.Errorf("failed to save snapshot of %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: snapshot %d\n", path, snapshot.ID)
	}
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	path := args[0]
	source := path
	if restoreFrom != "" {
		source = restoreFrom
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	snapshot, err := store.LatestSnapshot(source)
	if err != nil {
		return err
	}
	rec, err := storage.Record(snapshot)
	if err != nil {
		return err
	}

	kind, err := resolveKind(path)
	if err != nil {
		return err
	}
	if kind != rec.Kind() && !restoreForce {
		return fmt.Errorf("snapshot %d describes a %s but %s is a %s (use --force)", snapshot.ID, rec.Kind(), path, kind)
	}

	if err := xattr.Save(attrStore, path, rec); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: restored snapshot %d taken %s\n", path, snapshot.ID, snapshot.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer store.Close()

	snapshots, err := store.ListSnapshots(path, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case display.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshots)
	case display.FormatYAML:
		return yaml.NewEncoder(out).Encode(snapshots)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAKEN\tPATH\tKIND\tTYPE\tCREATOR\tLABEL\tFLAGS\tNOTE")
	for _, s := range snapshots {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Path, s.Kind,
			s.FileType, s.Creator, s.Label, strings.Join(s.Flags, ","), s.Note)
	}
	return tw.Flush()
}
