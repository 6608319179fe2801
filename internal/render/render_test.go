package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfxpipeline/shot-version-browser/internal/source"
	"github.com/vfxpipeline/shot-version-browser/internal/tree"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()

	src, err := source.Sample()
	require.NoError(t, err)
	entries, err := src.Folders()
	require.NoError(t, err)

	return tree.Build(entries)
}

func TestRenderTree_Nil(t *testing.T) {
	r := &TextTreeRenderer{}
	assert.Equal(t, "", r.RenderTree(nil))
}

func TestRenderTree_Sample(t *testing.T) {
	r := &TextTreeRenderer{}
	text := r.RenderTree(sampleTree(t))

	assert.Contains(t, text, "Shot Versions")
	assert.Contains(t, text, "/folderOne")
	assert.Contains(t, text, "/folderTwo")
	assert.Contains(t, text, "/folderThree")

	// Title, separator, blank line, 3 folder rows, 7 version rows.
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Len(t, lines, 13)
}

func TestRenderTree_NewestFirst(t *testing.T) {
	r := &TextTreeRenderer{}
	text := r.RenderTree(sampleTree(t))

	v05 := strings.Index(text, "v05")
	v01 := strings.LastIndex(text, "v01")
	require.GreaterOrEqual(t, v05, 0)
	require.GreaterOrEqual(t, v01, 0)
	assert.Less(t, v05, v01, "folderThree renders v05 before v01")
}

func TestRenderTree_Connectors(t *testing.T) {
	r := &TextTreeRenderer{}
	text := r.RenderTree(sampleTree(t))

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, treeLastBranch), "last version row uses the closing connector")
	assert.Contains(t, text, treeBranch)
}
