package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Manager defines the interface for clipboard operations.
type Manager interface {
	SetContent(content string) error
}

// FyneManager implements Manager using Fyne's clipboard.
type FyneManager struct {
	clipboard fyne.Clipboard
}

// NewFyneManager creates a Manager backed by the given Fyne clipboard.
func NewFyneManager(clipboard fyne.Clipboard) *FyneManager {
	return &FyneManager{clipboard: clipboard}
}

// SetContent sets the clipboard content.
func (m *FyneManager) SetContent(content string) error {
	if m.clipboard == nil {
		return fmt.Errorf("clipboard is not available")
	}
	m.clipboard.SetContent(content)
	return nil
}
