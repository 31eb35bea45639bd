package display

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"finderinfo/internal/finderinfo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleFile() *finderinfo.Record {
	rec := finderinfo.NewRecord(finderinfo.KindFile)
	fi, _ := rec.File()
	fi.FileType = finderinfo.OSType{'T', 'E', 'X', 'T'}
	fi.FileCreator = finderinfo.OSType{'R', '*', 'c', 'h'}
	fi.FinderFlags.Set(finderinfo.FlagIsInvisible, true)
	fi.FinderFlags.SetLabelColor(finderinfo.LabelGreen)
	fi.IconLocation = finderinfo.Point{V: 10, H: 20}
	rec.Extended.ExtendedFlags.Set(finderinfo.ExtFlagObjectIsBusy, true)
	return rec
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "/tmp/a.txt", sampleFile(), FormatText))
	out := buf.String()

	assert.Contains(t, out, "/tmp/a.txt")
	assert.Contains(t, out, "TEXT")
	assert.Contains(t, out, "R*ch")
	assert.Contains(t, out, "Green")
	assert.Contains(t, out, "(10, 20)")
	for _, f := range finderinfo.FinderFlagList() {
		assert.Contains(t, out, f.String())
	}
	for _, f := range finderinfo.ExtendedFlagList() {
		assert.Contains(t, out, f.String())
	}
	assert.NotContains(t, out, "Window bounds")
}

func TestRenderTextFolder(t *testing.T) {
	rec := finderinfo.NewRecord(finderinfo.KindFolder)
	fi, _ := rec.Folder()
	fi.WindowBounds = finderinfo.Rect{Top: 1, Left: 2, Bottom: 3, Right: 4}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", rec, FormatText))
	out := buf.String()

	assert.Contains(t, out, "Window bounds")
	assert.Contains(t, out, "(1, 2, 3, 4)")
	assert.Contains(t, out, "Scroll position")
	assert.NotContains(t, out, "File type")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", sampleFile(), FormatJSON))

	var v View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &v))
	assert.Equal(t, "file", v.Kind)
	assert.Equal(t, "TEXT", v.FileType)
	assert.Equal(t, "Green", v.Label)
	assert.True(t, v.Flags["invisible"])
	assert.False(t, v.Flags["alias"])
	assert.True(t, v.Extended["busy"])
	assert.True(t, v.ExtendedValid)
	assert.Len(t, v.Raw, 2*finderinfo.Size)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "/x", sampleFile(), FormatYAML))

	var v View
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &v))
	assert.Equal(t, "/x", v.Path)
	assert.Equal(t, "R*ch", v.FileCreator)
	assert.Equal(t, finderinfo.Point{V: 10, H: 20}, v.Location)
}

func TestRenderAllYAMLStream(t *testing.T) {
	views := []*View{
		NewView("/a", sampleFile()),
		NewView("/b", finderinfo.NewRecord(finderinfo.KindFolder)),
	}
	var buf bytes.Buffer
	require.NoError(t, RenderAll(&buf, views, FormatYAML))

	dec := yaml.NewDecoder(&buf)
	var got []View
	for {
		var v View
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "/a", got[0].Path)
	assert.Equal(t, "file", got[0].Kind)
	assert.Equal(t, "/b", got[1].Path)
	assert.Equal(t, "folder", got[1].Kind)
}

func TestRenderAllJSONArray(t *testing.T) {
	views := []*View{
		NewView("/a", sampleFile()),
		NewView("/b", finderinfo.NewRecord(finderinfo.KindFolder)),
	}
	var buf bytes.Buffer
	require.NoError(t, RenderAll(&buf, views, FormatJSON))

	var got []View
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "TEXT", got[0].FileType)
	assert.Equal(t, "/b", got[1].Path)
}

func TestRenderAllText(t *testing.T) {
	views := []*View{
		NewView("/a", sampleFile()),
		NewView("/b", sampleFile()),
	}
	var buf bytes.Buffer
	require.NoError(t, RenderAll(&buf, views, FormatText))
	out := buf.String()

	assert.Contains(t, out, "\n\nPath:")
	assert.Equal(t, 2, strings.Count(out, "Put away folder ID"))
}
