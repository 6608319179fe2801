// Package report emits the field values of selected version nodes to the
// console, which is the program's only output beyond the rendered tree.
package report

import (
	"fmt"
	"io"
	"log"

	"github.com/vfxpipeline/shot-version-browser/internal/tree"
)

// MsgNoSelection is logged when the show-selection action fires with nothing
// selected.
const MsgNoSelection = "Please select a row"

// Reporter writes selection reports to an output stream. The writer and
// logger are injected so the action can be exercised in tests.
type Reporter struct {
	out    io.Writer
	logger *log.Logger
}

// NewReporter creates a Reporter writing field lines to out. A nil logger
// falls back to the standard logger.
func NewReporter(out io.Writer, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{out: out, logger: logger}
}

// Show emits the four display fields of every selected node, one line per
// field in Sequence, Shot, Version, Location order, and returns the number of
// nodes reported. With no selection it logs MsgNoSelection and emits nothing.
func (r *Reporter) Show(selected ...*tree.VersionNode) int {
	if len(selected) == 0 {
		r.logger.Println(MsgNoSelection)
		return 0
	}

	for _, node := range selected {
		fmt.Fprintf(r.out, ">> Sequence: %s\n", node.Sequence())
		fmt.Fprintf(r.out, ">> Shot: %s\n", node.Shot())
		fmt.Fprintf(r.out, ">> Version: %s\n", node.Version())
		fmt.Fprintf(r.out, ">> Location: %s\n", node.Location())
	}

	return len(selected)
}
