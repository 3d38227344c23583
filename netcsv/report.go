// Package netcsv: plain-text report rendering.

package netcsv

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/triad/balance"
)

// reportRule is the banner line framing every report.
const reportRule = "*********************************************"

// WriteReport renders a triad census to w in the classic banner format:
// stable/unstable summary first, then the four raw buckets by positive-edge
// count. The format is stable and intended for diffing across runs.
// Complexity: O(1). Errors: ErrIO on write failures.
func WriteReport(w io.Writer, c balance.Counts) error {
	_, err := fmt.Fprintf(w,
		"%s\nStable triads: %d\nUnstable triads: %d\n\nCounts by positive edges:\n3: %d\n2: %d\n1: %d\n0: %d\n%s\n",
		reportRule,
		c.Stable(), c.Unstable(),
		c.ThreePositive, c.TwoPositive, c.OnePositive, c.ZeroPositive,
		reportRule,
	)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrIO)
	}

	return nil
}

// WriteReportFile creates (or truncates) path and writes the report there.
// Errors: ErrIO on create/write/close failures.
func WriteReportFile(path string, c balance.Counts) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, ErrIO)
	}

	if err = WriteReport(f, c); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, ErrIO)
	}

	return nil
}
