// Package display renders decoded records for people and scripts.
package display

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"finderinfo/internal/finderinfo"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// View is the structured form of a record shared by the encoders.
type View struct {
	Path            string            `json:"path,omitempty" yaml:"path,omitempty"`
	Kind            string            `json:"kind" yaml:"kind"`
	Raw             string            `json:"raw" yaml:"raw"`
	FileType        string            `json:"file_type,omitempty" yaml:"file_type,omitempty"`
	FileCreator     string            `json:"file_creator,omitempty" yaml:"file_creator,omitempty"`
	WindowBounds    *finderinfo.Rect  `json:"window_bounds,omitempty" yaml:"window_bounds,omitempty"`
	FinderFlags     uint16            `json:"finder_flags" yaml:"finder_flags"`
	Label           string            `json:"label" yaml:"label"`
	Flags           map[string]bool   `json:"flags" yaml:"flags"`
	Location        finderinfo.Point  `json:"location" yaml:"location"`
	Reserved        string            `json:"reserved" yaml:"reserved"`
	ScrollPosition  *finderinfo.Point `json:"scroll_position,omitempty" yaml:"scroll_position,omitempty"`
	Reserved1       string            `json:"extended_reserved1" yaml:"extended_reserved1"`
	ExtendedFlags   uint16            `json:"extended_flags" yaml:"extended_flags"`
	ExtendedValid   bool              `json:"extended_flags_valid" yaml:"extended_flags_valid"`
	Extended        map[string]bool   `json:"extended" yaml:"extended"`
	Reserved2       string            `json:"extended_reserved2" yaml:"extended_reserved2"`
	PutAwayFolderID int32             `json:"put_away_folder_id" yaml:"put_away_folder_id"`
}

// NewView builds the structured form of rec.
func NewView(path string, rec *finderinfo.Record) *View {
	flags := rec.Flags()
	ext := rec.Extended.ExtendedFlags

	v := &View{
		Path:            path,
		Kind:            rec.Kind().String(),
		Raw:             hex.EncodeToString(rec.Bytes()),
		FinderFlags:     uint16(flags),
		Label:           flags.LabelColor().String(),
		Flags:           make(map[string]bool),
		Location:        rec.Legacy.Location(),
		Reserved1:       hex.EncodeToString(rec.Extended.Reserved1[:]),
		ExtendedFlags:   uint16(ext),
		ExtendedValid:   ext.Valid(),
		Extended:        make(map[string]bool),
		Reserved2:       hex.EncodeToString(rec.Extended.Reserved2[:]),
		PutAwayFolderID: rec.Extended.PutAwayFolderID,
	}
	for _, f := range finderinfo.FinderFlagList() {
		v.Flags[f.String()] = flags.Has(f)
	}
	for _, f := range finderinfo.ExtendedFlagList() {
		v.Extended[f.String()] = ext.Has(f)
	}

	switch l := rec.Legacy.(type) {
	case *finderinfo.FileInfo:
		v.FileType = l.FileType.String()
		v.FileCreator = l.FileCreator.String()
		v.Reserved = hex.EncodeToString(l.Reserved[:])
	case *finderinfo.FolderInfo:
		bounds := l.WindowBounds
		v.WindowBounds = &bounds
		v.Reserved = hex.EncodeToString(l.Reserved[:])
		scroll := rec.Extended.ScrollPosition()
		v.ScrollPosition = &scroll
	}
	return v
}

// Render writes rec to w in the requested format.
func Render(w io.Writer, path string, rec *finderinfo.Record, format Format) error {
	return RenderAll(w, []*View{NewView(path, rec)}, format)
}

// RenderAll writes views as one document: a JSON array (a bare object for a
// single view), a YAML stream with one document per view, or text blocks
// separated by a blank line.
func RenderAll(w io.Writer, views []*View, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(views) == 1 {
			return enc.Encode(views[0])
		}
		return enc.Encode(views)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, v := range views {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
		return enc.Close()
	default:
		for i, v := range views {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := renderText(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func renderText(w io.Writer, v *View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if v.Path != "" {
		fmt.Fprintf(tw, "Path:\t%s\n", v.Path)
	}
	fmt.Fprintf(tw, "Kind:\t%s\n", v.Kind)
	fmt.Fprintf(tw, "Raw:\t%s\n", v.Raw)
	if v.WindowBounds != nil {
		fmt.Fprintf(tw, "Window bounds:\t%s\n", v.WindowBounds)
	} else {
		fmt.Fprintf(tw, "File type:\t%s\n", v.FileType)
		fmt.Fprintf(tw, "Creator:\t%s\n", v.FileCreator)
	}
	fmt.Fprintf(tw, "Finder flags:\t0x%04x\n", v.FinderFlags)
	fmt.Fprintf(tw, "  label\t%s\n", v.Label)
	for _, f := range finderinfo.FinderFlagList() {
		fmt.Fprintf(tw, "  %s\t%t\n", f, v.Flags[f.String()])
	}
	fmt.Fprintf(tw, "Location:\t%s\n", v.Location)
	fmt.Fprintf(tw, "Reserved:\t%s\n", v.Reserved)
	if v.ScrollPosition != nil {
		fmt.Fprintf(tw, "Scroll position:\t%s\n", v.ScrollPosition)
	}
	fmt.Fprintf(tw, "Extended reserved1:\t%s\n", v.Reserved1)
	fmt.Fprintf(tw, "Extended flags:\t0x%04x\n", v.ExtendedFlags)
	fmt.Fprintf(tw, "  valid\t%t\n", v.ExtendedValid)
	for _, f := range finderinfo.ExtendedFlagList() {
		fmt.Fprintf(tw, "  %s\t%t\n", f, v.Extended[f.String()])
	}
	fmt.Fprintf(tw, "Extended reserved2:\t%s\n", v.Reserved2)
	fmt.Fprintf(tw, "Put away folder ID:\t%d\n", v.PutAwayFolderID)

	return tw.Flush()
}
