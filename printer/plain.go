package printer

import (
	"fmt"
	"io"

	"github.com/typesig/apisearch/engine"
)

// Plain renders results with fmt alone, no color codes — the right
// choice for piping to a file or a non-terminal consumer.
type Plain struct {
	Out io.Writer
}

// Print writes one line per result: "assembly  distance  signature".
func (p Plain) Print(results []engine.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(p.Out, "%-20s %3d  %s\n", r.AssemblyName, r.Distance, SignatureText(r.Api)); err != nil {
			return err
		}
	}
	return nil
}
