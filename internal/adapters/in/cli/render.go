package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"courierdesk/internal/core/application/usecases/queries"
)

// TimeLayout matches the date format operators know from the snapshot file.
const TimeLayout = "02/01/2006 15:04"

type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	t.row(header...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func minutes(v float64) string {
	return fmt.Sprintf("%.1f min", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return queries.NotAvailable
	}
	return t.Format(TimeLayout)
}

func optionalTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return timestamp(*t)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
