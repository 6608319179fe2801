// Package tree shapes folder/version source data into the display tree shown
// by the UI: one root-level node per folder, one child per version record,
// newest version first. The package is pure data so the shaping logic can be
// tested without a display surface.
package tree

import (
	"fmt"

	"github.com/vfxpipeline/shot-version-browser/internal/source"
)

// VersionNode is a leaf bound to one version record. Its four display fields
// are independently readable, so callers can report individual values rather
// than a formatted row.
type VersionNode struct {
	uid    string
	folder string
	record source.Record
}

// UID returns the node's stable identifier within its tree.
func (n *VersionNode) UID() string { return n.uid }

// Folder returns the path of the folder node that owns this version.
func (n *VersionNode) Folder() string { return n.folder }

// Sequence returns the record's sequence identifier.
func (n *VersionNode) Sequence() string { return n.record.Sequence() }

// Shot returns the record's shot identifier.
func (n *VersionNode) Shot() string { return n.record.Shot() }

// Version returns the record's version label.
func (n *VersionNode) Version() string { return n.record.Version() }

// Location returns the record's file location.
func (n *VersionNode) Location() string { return n.record.Location() }

// FolderNode is a root-level grouping node owning an ordered list of version
// children. A folder with no versions is valid and simply has no children.
type FolderNode struct {
	path     string
	versions []*VersionNode
}

// Path returns the folder path that labels this node.
func (n *FolderNode) Path() string { return n.path }

// Versions returns the folder's children in display order, newest first.
func (n *FolderNode) Versions() []*VersionNode { return n.versions }

// Tree is the built display tree plus the uid lookup tables the tree widget
// drives its callbacks from.
type Tree struct {
	folders  []*FolderNode
	children map[string][]string
	versions map[string]*VersionNode
}

// Build constructs the display tree from a folder snapshot. Folders keep the
// snapshot's order; within each folder the version groups are walked in
// reverse, so the last-queried version becomes the first child. Nesting is
// flat: every version node hangs directly under its folder node.
func Build(entries []source.FolderEntry) *Tree {
	t := &Tree{
		children: make(map[string][]string),
		versions: make(map[string]*VersionNode),
	}

	for _, entry := range entries {
		folder := &FolderNode{path: entry.Path}
		// An entry in the children table marks the uid as a folder even
		// when the folder has no versions.
		t.children[folder.path] = []string{}

		for i := len(entry.Groups) - 1; i >= 0; i-- {
			node := &VersionNode{
				uid:    versionUID(entry.Path, len(entry.Groups)-1-i),
				folder: entry.Path,
				record: entry.Groups[i].Record(),
			}
			folder.versions = append(folder.versions, node)
			t.versions[node.uid] = node
			t.children[folder.path] = append(t.children[folder.path], node.uid)
		}

		t.folders = append(t.folders, folder)
		t.children[""] = append(t.children[""], folder.path)
	}

	return t
}

// versionUID derives a stable widget uid from the folder path and the node's
// display position.
func versionUID(path string, displayIndex int) string {
	return fmt.Sprintf("%s#%d", path, displayIndex)
}

// Folders returns the root-level folder nodes in snapshot order.
func (t *Tree) Folders() []*FolderNode { return t.folders }

// ChildUIDs returns the child uids of the given node, with the empty uid
// standing for the invisible root as the tree widget expects.
func (t *Tree) ChildUIDs(uid string) []string {
	return t.children[uid]
}

// IsBranch reports whether the uid names the root or a folder node.
func (t *Tree) IsBranch(uid string) bool {
	if uid == "" {
		return true
	}
	_, ok := t.children[uid]
	return ok
}

// Version looks up the version node for a uid. It reports false for folder
// uids and unknown uids.
func (t *Tree) Version(uid string) (*VersionNode, bool) {
	node, ok := t.versions[uid]
	return node, ok
}

// Folder looks up a folder node by path.
func (t *Tree) Folder(path string) (*FolderNode, bool) {
	for _, folder := range t.folders {
		if folder.path == path {
			return folder, true
		}
	}
	return nil, false
}

// NodeCount returns the total number of folder and version nodes.
func (t *Tree) NodeCount() int {
	return len(t.folders) + len(t.versions)
}
