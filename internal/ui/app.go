package ui

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/vfxpipeline/shot-version-browser/internal/clipboard"
	"github.com/vfxpipeline/shot-version-browser/internal/config"
	"github.com/vfxpipeline/shot-version-browser/internal/render"
	"github.com/vfxpipeline/shot-version-browser/internal/report"
	"github.com/vfxpipeline/shot-version-browser/internal/source"
	"github.com/vfxpipeline/shot-version-browser/internal/tree"
)

const (
	// Icons
	folderIcon = "📁"

	// Button captions
	btnShowCaption = "Select a row and see the printed data!"
	btnCopyCaption = "📋 Copy to Clipboard"

	// Messages
	msgReady       = "Ready. Select a row and press a button"
	msgNoSelection = "No row selected"
	msgCopySuccess = "Version tree copied to clipboard!"
)

// BrowserApp represents the main GUI application: one window hosting the
// version tree, the action buttons and a status line.
type BrowserApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config

	// Services
	renderer  render.TreeRenderer
	clipboard clipboard.Manager
	reporter  *report.Reporter

	// UI components
	tree        *widget.Tree
	showBtn     *widget.Button
	copyBtn     *widget.Button
	statusLabel *widget.Label

	// State - UI thread only, no synchronization needed
	versionTree *tree.Tree
	selectedUID string
}

// NewBrowserApp creates a BrowserApp over the given data source. The source
// snapshot is taken once at construction; a malformed snapshot surfaces here
// rather than being rendered with holes.
func NewBrowserApp(cfg *config.Config, src source.VersionSource) (*BrowserApp, error) {
	fyneApp := app.New()
	fyneApp.SetIcon(theme.FolderIcon())

	return newBrowserApp(fyneApp, cfg, src)
}

// newBrowserApp wires the app against an existing fyne.App so tests can drive
// it with the headless test driver.
func newBrowserApp(fyneApp fyne.App, cfg *config.Config, src source.VersionSource) (*BrowserApp, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	entries, err := src.Folders()
	if err != nil {
		return nil, fmt.Errorf("failed to query version source: %w", err)
	}

	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	return &BrowserApp{
		app:         fyneApp,
		window:      window,
		config:      cfg,
		renderer:    &render.TextTreeRenderer{},
		clipboard:   clipboard.NewFyneManager(fyneApp.Clipboard()),
		reporter:    report.NewReporter(os.Stdout, nil),
		versionTree: tree.Build(entries),
		statusLabel: widget.NewLabel(msgReady),
	}, nil
}

// Run starts the application and blocks until the window is closed.
func (a *BrowserApp) Run() {
	a.window.SetContent(a.createMainContent())
	a.window.ShowAndRun()
}

// createMainContent creates the main UI content.
func (a *BrowserApp) createMainContent() fyne.CanvasObject {
	a.tree = a.createTree()

	a.showBtn = widget.NewButton(btnShowCaption, a.handleShowSelection)
	a.copyBtn = widget.NewButton(btnCopyCaption, a.handleCopyToClipboard)

	bottom := container.NewVBox(
		container.NewGridWithColumns(2, a.showBtn, a.copyBtn),
	)
	if a.config.ShowStatus {
		bottom.Add(a.statusLabel)
	}

	var header fyne.CanvasObject
	if a.config.ShowHeaders {
		header = a.createHeaderRow()
	}

	return container.NewBorder(header, bottom, nil, nil, a.tree)
}

// createHeaderRow creates the bold column-header row above the tree.
func (a *BrowserApp) createHeaderRow() fyne.CanvasObject {
	headers := source.RequiredFields()
	labels := make([]fyne.CanvasObject, 0, len(headers))
	for _, name := range headers {
		label := widget.NewLabel(name)
		label.TextStyle.Bold = true
		labels = append(labels, label)
	}
	return container.NewGridWithColumns(len(headers), labels...)
}

// createTree creates the tree widget over the built version tree.
func (a *BrowserApp) createTree() *widget.Tree {
	t := widget.NewTree(
		a.childUIDs,
		a.isBranch,
		a.createTreeNode,
		a.updateTreeNode,
	)
	t.OnSelected = func(uid widget.TreeNodeID) {
		a.selectedUID = uid
	}
	t.OnUnselected = func(uid widget.TreeNodeID) {
		if a.selectedUID == uid {
			a.selectedUID = ""
		}
	}
	t.OpenAllBranches()
	return t
}

// childUIDs returns child UIDs for the tree widget.
func (a *BrowserApp) childUIDs(uid string) []string {
	// Always on UI thread, safe
	return a.versionTree.ChildUIDs(uid)
}

// isBranch determines if a tree node is a branch (folder).
func (a *BrowserApp) isBranch(uid string) bool {
	return a.versionTree.IsBranch(uid)
}

// createTreeNode creates the template widget for a tree row: a single label
// for folder rows, one label per display column for version rows.
func (a *BrowserApp) createTreeNode(branch bool) fyne.CanvasObject {
	if branch {
		return widget.NewLabel(folderIcon + " Folder")
	}

	columns := make([]fyne.CanvasObject, len(source.RequiredFields()))
	for i := range columns {
		columns[i] = widget.NewLabel("")
	}
	return container.NewGridWithColumns(len(columns), columns...)
}

// updateTreeNode binds a tree row widget to its node's display values.
func (a *BrowserApp) updateTreeNode(uid string, branch bool, obj fyne.CanvasObject) {
	if branch {
		label, ok := obj.(*widget.Label)
		if !ok {
			return
		}
		label.SetText(folderIcon + " " + uid)
		return
	}

	grid, ok := obj.(*fyne.Container)
	if !ok {
		return
	}
	node, ok := a.versionTree.Version(uid)
	if !ok {
		return
	}

	values := []string{node.Sequence(), node.Shot(), node.Version(), node.Location()}
	for i, object := range grid.Objects {
		label, ok := object.(*widget.Label)
		if !ok || i >= len(values) {
			continue
		}
		label.SetText(values[i])
	}
}

// selectedVersions returns the version nodes currently highlighted. Folder
// rows carry no record fields and do not count as a selection.
func (a *BrowserApp) selectedVersions() []*tree.VersionNode {
	if a.selectedUID == "" {
		return nil
	}
	node, ok := a.versionTree.Version(a.selectedUID)
	if !ok {
		return nil
	}
	return []*tree.VersionNode{node}
}

// handleShowSelection prints the selected row's field values to the console.
func (a *BrowserApp) handleShowSelection() {
	count := a.reporter.Show(a.selectedVersions()...)
	if count == 0 {
		a.setStatus(msgNoSelection)
		return
	}
	a.setStatus(fmt.Sprintf("Printed %d selected row(s)", count))
}

// handleCopyToClipboard copies the rendered version tree to the clipboard.
func (a *BrowserApp) handleCopyToClipboard() {
	text := a.renderer.RenderTree(a.versionTree)

	if err := a.clipboard.SetContent(text); err != nil {
		a.showError("Clipboard Error", err)
		a.setStatus("Copy failed")
		return
	}

	a.setStatus(msgCopySuccess)
}

// setStatus updates the status line.
func (a *BrowserApp) setStatus(text string) {
	a.statusLabel.SetText(text)
	log.Println(text)
}

// showError shows an error dialog.
func (a *BrowserApp) showError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}
