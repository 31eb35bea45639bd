package finderinfo

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// custom icon on
	customIconValue = [Size]byte{8: 0x04}
	// label Blue plus custom icon
	blueIconValue = [Size]byte{8: 0x04, 9: 0x08}
	// label Red
	redValue = [Size]byte{9: 0x0c}
	// label Red plus custom icon
	redIconValue = [Size]byte{8: 0x04, 9: 0x0c}
)

func TestSetGetFile(t *testing.T) {
	zero := make([]byte, Size)
	rec, err := Parse(zero, KindFile)
	require.NoError(t, err)
	assert.False(t, rec.Flags().Has(FlagHasCustomIcon))
	assert.Equal(t, LabelNone, rec.Flags().LabelColor())
	assert.Equal(t, zero, rec.Bytes())

	flags := rec.Flags()
	flags.SetLabelColor(LabelBlue)
	flags.Set(FlagHasCustomIcon, true)
	rec.SetFlags(flags)
	assert.Equal(t, blueIconValue[:], rec.Bytes())

	rec, err = Parse(redIconValue[:], KindFile)
	require.NoError(t, err)
	assert.True(t, rec.Flags().Has(FlagHasCustomIcon))
	assert.Equal(t, LabelRed, rec.Flags().LabelColor())
}

func TestSetGetFolder(t *testing.T) {
	zero := make([]byte, Size)
	rec, err := Parse(zero, KindFolder)
	require.NoError(t, err)
	assert.Equal(t, KindFolder, rec.Kind())
	assert.Equal(t, zero, rec.Bytes())

	fi, ok := rec.Folder()
	require.True(t, ok)
	fi.FinderFlags.Set(FlagHasCustomIcon, true)
	assert.Equal(t, customIconValue[:], rec.Bytes())

	fi.FinderFlags.SetLabelColor(LabelBlue)
	assert.Equal(t, blueIconValue[:], rec.Bytes())

	rec, err = Parse(redValue[:], KindFolder)
	require.NoError(t, err)
	assert.False(t, rec.Flags().Has(FlagHasCustomIcon))
	assert.Equal(t, LabelRed, rec.Flags().LabelColor())
}

func TestInvisibleFolderScenario(t *testing.T) {
	var raw [Size]byte
	raw[8] = 0x40

	rec, err := Read(bytes.NewReader(raw[:]), KindFolder)
	require.NoError(t, err)

	flags := rec.Flags()
	for _, f := range FinderFlagList() {
		assert.Equal(t, f == FlagIsInvisible, flags.Has(f), f.String())
	}
	assert.Equal(t, uint8(0), flags.Label())
	assert.Equal(t, []string{"invisible"}, flags.Names())

	assert.Equal(t, ExtendedInfo{}, rec.Extended)
	assert.True(t, rec.Extended.ExtendedFlags.Valid())
	assert.Empty(t, rec.Extended.ExtendedFlags.Names())

	assert.Equal(t, raw[:], rec.Bytes())
}

func TestRoundTripBytes(t *testing.T) {
	for _, kind := range []Kind{KindFile, KindFolder} {
		f := func(raw [Size]byte) bool {
			rec, err := Read(bytes.NewReader(raw[:]), kind)
			if err != nil {
				return false
			}
			return bytes.Equal(raw[:], rec.Bytes())
		}
		assert.NoError(t, quick.Check(f, nil), kind.String())
	}
}

func TestRoundTripStructured(t *testing.T) {
	rec := NewRecord(KindFile)
	fi, _ := rec.File()
	fi.FileType = OSType{'T', 'E', 'X', 'T'}
	fi.FileCreator = OSType{'t', 't', 'x', 't'}
	fi.FinderFlags.Set(FlagHasBundle, true)
	fi.FinderFlags.SetLabel(5)
	fi.IconLocation = Point{V: -12, H: 300}
	fi.Reserved = [2]byte{0xde, 0xad}
	rec.Extended.ExtendedFlags.Set(ExtFlagHasCustomBadge, true)
	rec.Extended.Reserved1 = [8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	rec.Extended.Reserved2 = [2]byte{0xbe, 0xef}
	rec.Extended.PutAwayFolderID = -2

	var buf bytes.Buffer
	n, err := rec.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(Size), n)

	got, err := Read(&buf, KindFile)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	folder := NewRecord(KindFolder)
	ffi, _ := folder.Folder()
	ffi.WindowBounds = Rect{Top: 40, Left: 50, Bottom: 400, Right: 650}
	ffi.IconLocation = Point{V: 8, H: 9}
	folder.Extended.SetScrollPosition(Point{V: -1, H: 2})

	got, err = Parse(folder.Bytes(), KindFolder)
	require.NoError(t, err)
	assert.Equal(t, folder, got)
	assert.Equal(t, Point{V: -1, H: 2}, got.Extended.ScrollPosition())
}

func TestVariantIndependence(t *testing.T) {
	raw := []byte{
		0x00, 0x10, 0x00, 0x20, 0x01, 0x00, 0x02, 0x00,
		0x84, 0x0a, 0xff, 0xfe, 0x00, 0x07, 0x12, 0x34,
	}

	file, err := DecodeFileInfo(raw)
	require.NoError(t, err)
	folder, err := DecodeFolderInfo(raw)
	require.NoError(t, err)

	assert.Equal(t, OSType{0x00, 0x10, 0x00, 0x20}, file.FileType)
	assert.Equal(t, OSType{0x01, 0x00, 0x02, 0x00}, file.FileCreator)
	assert.Equal(t, Rect{Top: 16, Left: 32, Bottom: 256, Right: 512}, folder.WindowBounds)

	assert.Equal(t, file.Flags(), folder.Flags())
	assert.Equal(t, file.Location(), folder.Location())
	assert.Equal(t, Point{V: -2, H: 7}, folder.Location())
	assert.Equal(t, file.Reserved, folder.Reserved)

	fb, _ := file.MarshalBinary()
	db, _ := folder.MarshalBinary()
	assert.Equal(t, raw, fb)
	assert.Equal(t, raw, db)
}

func TestTruncated(t *testing.T) {
	_, err := DecodeFileInfo(make([]byte, 15))
	require.ErrorIs(t, err, ErrTruncated)
	var te *TruncatedError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PartLegacy, te.Part)
	assert.Equal(t, 15, te.Got)

	_, err = DecodeFolderInfo(make([]byte, 16))
	assert.NoError(t, err)

	_, err = DecodeExtendedInfo(make([]byte, 3))
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PartExtended, te.Part)

	_, err = Read(bytes.NewReader(make([]byte, 31)), KindFile)
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PartExtended, te.Part)
	assert.Equal(t, 15, te.Got)

	_, err = Read(bytes.NewReader(make([]byte, 10)), KindFolder)
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PartLegacy, te.Part)

	_, err = Read(bytes.NewReader(nil), KindFile)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = Parse(make([]byte, 20), KindFile)
	require.ErrorAs(t, err, &te)
	assert.Equal(t, PartExtended, te.Part)
}

func TestReadLeavesRemainder(t *testing.T) {
	raw := make([]byte, Size+4)
	copy(raw[Size:], "tail")
	r := bytes.NewReader(raw)

	_, err := Read(r, KindFile)
	require.NoError(t, err)
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "tail", string(rest))
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestIOFailure(t *testing.T) {
	cause := errors.New("permission denied")

	_, err := Read(failingReader{cause}, KindFile)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTruncated)

	_, err = NewRecord(KindFile).WriteTo(failingWriter{cause})
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
}

func TestCloneIsDeep(t *testing.T) {
	rec := NewRecord(KindFile)
	c := rec.Clone()
	c.SetFlags(FinderFlags(FlagIsAlias))
	c.Extended.PutAwayFolderID = 9

	assert.True(t, rec.IsZero())
	assert.False(t, c.IsZero())
}

func TestZeroRecordReadsAsFile(t *testing.T) {
	var rec Record
	assert.Equal(t, KindFile, rec.Kind())
	assert.Equal(t, FinderFlags(0), rec.Flags())
	assert.Equal(t, make([]byte, Size), rec.Bytes())
	assert.True(t, rec.IsZero())
	assert.Nil(t, rec.Legacy)
	assert.Equal(t, Record{}, rec)

	rec.SetFlags(FinderFlags(FlagIsInvisible))
	_, ok := rec.File()
	require.True(t, ok)
	assert.Equal(t, byte(0x40), rec.Bytes()[8])
}
