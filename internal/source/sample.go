package source

import "fmt"

// Sample returns the example snapshot a directory-query service would hand
// back in a real pipeline: three folders holding one, two and four versions.
func Sample() (*StaticSource, error) {
	raw := []struct {
		path   string
		groups [][]map[string]string
	}{
		{
			path: "/folderOne",
			groups: [][]map[string]string{
				{{FieldSequence: "zzz999", FieldShot: "zzz_1234", FieldVersion: "01", FieldLocation: "/file/path"}},
			},
		},
		{
			path: "/folderTwo",
			groups: [][]map[string]string{
				{{FieldSequence: "zzz999", FieldShot: "zzz999_000", FieldVersion: "01", FieldLocation: "/file/path"}},
				{{FieldSequence: "zzz999", FieldShot: "zzz999_000", FieldVersion: "02", FieldLocation: "/file/path"}},
			},
		},
		{
			path: "/folderThree",
			groups: [][]map[string]string{
				{{FieldSequence: "abc111", FieldShot: "abc111_5678", FieldVersion: "01", FieldLocation: "/file/path"}},
				{{FieldSequence: "abc111", FieldShot: "abc111_5678", FieldVersion: "02", FieldLocation: "/file/path"}},
				{{FieldSequence: "abc111", FieldShot: "abc111_5678", FieldVersion: "03", FieldLocation: "/file/path"}},
				{{FieldSequence: "abc111", FieldShot: "abc111_5678", FieldVersion: "05", FieldLocation: "/file/path"}},
			},
		},
	}

	entries := make([]FolderEntry, 0, len(raw))
	for _, folder := range raw {
		entry, err := NewFolderEntry(folder.path, folder.groups)
		if err != nil {
			return nil, fmt.Errorf("failed to build sample data: %w", err)
		}
		entries = append(entries, entry)
	}

	return NewStaticSource(entries...), nil
}
