package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"inndiff/internal"
	"inndiff/internal/inn"
)

// WriteText prints the counts followed by the removed and added lists, one identifier
// per line. With checkSums, identifiers failing INN control digits are flagged.
func WriteText(w io.Writer, report internal.CompareReport, checkSums bool) error {
	res := report.Result
	var b strings.Builder
	fmt.Fprintf(&b, "old file count: %d\n", res.OldCount)
	fmt.Fprintf(&b, "new file count: %d\n", res.NewCount)
	fmt.Fprintf(&b, "added: %d\n", len(res.Added))
	fmt.Fprintf(&b, "removed: %d\n", len(res.Removed))

	writeList(&b, "removed", res.Removed, checkSums)
	writeList(&b, "added", res.Added, checkSums)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, ids []string, checkSums bool) {
	fmt.Fprintf(b, "\n[%s]\n", title)
	for _, id := range ids {
		b.WriteString(id)
		if checkSums && !inn.Valid(id) {
			b.WriteString("\tbad checksum")
		}
		b.WriteByte('\n')
	}
}

type jsonReport struct {
	internal.CompareReport
	InvalidChecksums []string `json:"invalidChecksums,omitempty"`
}

func WriteJSON(w io.Writer, report internal.CompareReport, checkSums bool) error {
	out := jsonReport{CompareReport: report}
	if checkSums {
		out.InvalidChecksums = InvalidChecksums(report.Result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// InvalidChecksums lists identifiers from both lists whose control digits do not match.
func InvalidChecksums(res internal.ReconciliationResult) []string {
	out := []string{}
	for _, ids := range [][]string{res.Removed, res.Added} {
		for _, id := range ids {
			if !inn.Valid(id) {
				out = append(out, id)
			}
		}
	}
	return out
}

// Clipboard joins identifiers by newline, the form they are pasted elsewhere in.
func Clipboard(ids []string) string {
	return strings.Join(ids, "\n")
}
