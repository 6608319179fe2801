package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRecord(t *testing.T) map[string]string {
	t.Helper()
	return map[string]string{
		FieldSequence: "zzz999",
		FieldShot:     "zzz_1234",
		FieldVersion:  "01",
		FieldLocation: "/file/path",
	}
}

func TestNewRecord_RoundTrip(t *testing.T) {
	record, err := NewRecord(rawRecord(t))
	require.NoError(t, err)

	assert.Equal(t, "zzz999", record.Sequence())
	assert.Equal(t, "zzz_1234", record.Shot())
	assert.Equal(t, "01", record.Version())
	assert.Equal(t, "/file/path", record.Location())
}

func TestNewRecord_MissingField(t *testing.T) {
	for _, field := range RequiredFields() {
		t.Run(field, func(t *testing.T) {
			raw := rawRecord(t)
			delete(raw, field)

			_, err := NewRecord(raw)
			require.Error(t, err)

			var missing *FieldMissingError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, field, missing.Field)
		})
	}
}

func TestNewRecord_EmptyValueIsNotMissing(t *testing.T) {
	raw := rawRecord(t)
	raw[FieldLocation] = ""

	record, err := NewRecord(raw)
	require.NoError(t, err)
	assert.Equal(t, "", record.Location())
}

func TestNewFolderEntry_Valid(t *testing.T) {
	entry, err := NewFolderEntry("/shots", [][]map[string]string{
		{rawRecord(t)},
		{rawRecord(t)},
	})
	require.NoError(t, err)

	assert.Equal(t, "/shots", entry.Path)
	require.Len(t, entry.Groups, 2)
	assert.Equal(t, "zzz_1234", entry.Groups[0].Record().Shot())
}

func TestNewFolderEntry_EmptyGroupList(t *testing.T) {
	entry, err := NewFolderEntry("/empty", nil)
	require.NoError(t, err)
	assert.Empty(t, entry.Groups)
}

func TestNewFolderEntry_GroupSize(t *testing.T) {
	tests := []struct {
		name  string
		group []map[string]string
		size  int
	}{
		{name: "empty group", group: []map[string]string{}, size: 0},
		{name: "two records", group: []map[string]string{rawRecord(t), rawRecord(t)}, size: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFolderEntry("/shots", [][]map[string]string{tt.group})
			require.Error(t, err)

			var size *GroupSizeError
			require.True(t, errors.As(err, &size))
			assert.Equal(t, "/shots", size.Folder)
			assert.Equal(t, 0, size.Index)
			assert.Equal(t, tt.size, size.Size)
		})
	}
}

func TestNewFolderEntry_WrapsFieldMissing(t *testing.T) {
	raw := rawRecord(t)
	delete(raw, FieldShot)

	_, err := NewFolderEntry("/shots", [][]map[string]string{{raw}})
	require.Error(t, err)

	var missing *FieldMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, FieldShot, missing.Field)
}

func TestSample_Shape(t *testing.T) {
	src, err := Sample()
	require.NoError(t, err)

	entries, err := src.Folders()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "/folderOne", entries[0].Path)
	assert.Equal(t, "/folderTwo", entries[1].Path)
	assert.Equal(t, "/folderThree", entries[2].Path)

	assert.Len(t, entries[0].Groups, 1)
	assert.Len(t, entries[1].Groups, 2)
	assert.Len(t, entries[2].Groups, 4)

	// The source yields versions oldest first, so "05" is the last group.
	last := entries[2].Groups[3].Record()
	assert.Equal(t, "05", last.Version())
	assert.Equal(t, "abc111", last.Sequence())
}
