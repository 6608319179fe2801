package render

import (
	"fmt"
	"strings"

	"github.com/vfxpipeline/shot-version-browser/internal/tree"
)

const (
	// Icons
	folderIcon  = "📁"
	versionIcon = "🎞"

	// Tree drawing characters
	treeBranch     = "├──"
	treeLastBranch = "└──"
)

// TreeRenderer defines the interface for rendering a version tree as text.
type TreeRenderer interface {
	RenderTree(t *tree.Tree) string
}

// TextTreeRenderer implements TreeRenderer for plain-text output, used by the
// copy-to-clipboard action.
type TextTreeRenderer struct{}

// RenderTree renders the version tree as a formatted string, folders in
// snapshot order and versions newest first, matching the on-screen tree.
func (r *TextTreeRenderer) RenderTree(t *tree.Tree) string {
	if t == nil {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Shot Versions\n")
	builder.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, folder := range t.Folders() {
		builder.WriteString(fmt.Sprintf("%s %s\n", folderIcon, folder.Path()))

		versions := folder.Versions()
		for i, version := range versions {
			connector := treeBranch
			if i == len(versions)-1 {
				connector = treeLastBranch
			}
			builder.WriteString(fmt.Sprintf("%s %s %s  %s  v%s  %s\n",
				connector, versionIcon,
				version.Sequence(), version.Shot(), version.Version(), version.Location()))
		}
	}

	return builder.String()
}
