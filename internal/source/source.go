// Package source defines the contract with the external system that produces
// versioned shot data: a mapping from folder path to an ordered list of
// version groups, each group wrapping exactly one record. In production that
// producer would be a file-system query or a database; here it is a static
// snapshot injected at startup.
package source

import "fmt"

// Required record fields, in display order.
const (
	FieldSequence = "Sequence"
	FieldShot     = "Shot"
	FieldVersion  = "Version"
	FieldLocation = "Location"
)

// RequiredFields lists the fields every record must carry, in column order.
func RequiredFields() []string {
	return []string{FieldSequence, FieldShot, FieldVersion, FieldLocation}
}

// FieldMissingError reports a record that arrived without a required field.
type FieldMissingError struct {
	Field string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("record is missing required field %q", e.Field)
}

// GroupSizeError reports a version group that does not wrap exactly one record.
type GroupSizeError struct {
	Folder string
	Index  int
	Size   int
}

func (e *GroupSizeError) Error() string {
	return fmt.Sprintf("folder %q: version group %d holds %d records, want exactly 1", e.Folder, e.Index, e.Size)
}

// Record is one displayable version entry. Records are immutable once
// constructed; fields are read back through accessors.
type Record struct {
	sequence string
	shot     string
	version  string
	location string
}

// NewRecord validates raw field data and constructs a Record. Every required
// field must be present; missing fields fail with FieldMissingError rather
// than being defaulted.
func NewRecord(fields map[string]string) (Record, error) {
	for _, name := range RequiredFields() {
		if _, ok := fields[name]; !ok {
			return Record{}, &FieldMissingError{Field: name}
		}
	}

	return Record{
		sequence: fields[FieldSequence],
		shot:     fields[FieldShot],
		version:  fields[FieldVersion],
		location: fields[FieldLocation],
	}, nil
}

// Sequence returns the sequence identifier.
func (r Record) Sequence() string { return r.sequence }

// Shot returns the shot identifier.
func (r Record) Shot() string { return r.shot }

// Version returns the version label.
func (r Record) Version() string { return r.version }

// Location returns the file location.
func (r Record) Location() string { return r.location }

// Group wraps a single Record, mirroring the single-element lists the
// external producer yields per version.
type Group struct {
	record Record
}

// Record returns the group's sole record.
func (g Group) Record() Record { return g.record }

// FolderEntry is one folder path with its version groups in the order the
// producer queried them, oldest first.
type FolderEntry struct {
	Path   string
	Groups []Group
}

// NewFolderEntry validates one folder's worth of raw data. Each raw group must
// wrap exactly one record; anything else fails with GroupSizeError, and a
// record missing a field fails with FieldMissingError.
func NewFolderEntry(path string, rawGroups [][]map[string]string) (FolderEntry, error) {
	entry := FolderEntry{Path: path}

	for i, raw := range rawGroups {
		if len(raw) != 1 {
			return FolderEntry{}, &GroupSizeError{Folder: path, Index: i, Size: len(raw)}
		}

		record, err := NewRecord(raw[0])
		if err != nil {
			return FolderEntry{}, fmt.Errorf("folder %q: version group %d: %w", path, i, err)
		}

		entry.Groups = append(entry.Groups, Group{record: record})
	}

	return entry, nil
}

// VersionSource supplies the folder snapshot consumed by the tree builder.
type VersionSource interface {
	Folders() ([]FolderEntry, error)
}

// StaticSource is a VersionSource backed by a fixed in-memory snapshot.
type StaticSource struct {
	entries []FolderEntry
}

// NewStaticSource creates a StaticSource over the given entries.
func NewStaticSource(entries ...FolderEntry) *StaticSource {
	return &StaticSource{entries: entries}
}

// Folders returns the snapshot in insertion order.
func (s *StaticSource) Folders() ([]FolderEntry, error) {
	return s.entries, nil
}
