package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/trknhr/pursuit/internal/sim"
	"github.com/trknhr/pursuit/internal/store"
)

// WriteLexicon prints one "[lex <trial>] <word>: <meaning>" line per entry,
// followed by a blank separator line.
func WriteLexicon(w io.Writer, r sim.TrialResult) error {
	for _, e := range r.Lexicon {
		if _, err := fmt.Fprintf(w, "[lex %d] %s: %s\n", r.Trial, e.Word, e.Meaning); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteSummary prints the averaged scores in the three-line text format.
func WriteSummary(w io.Writer, s sim.Summary) error {
	_, err := fmt.Fprintf(w, "precision: %s\nrecall   : %s\nf        : %s\n",
		formatFloat(s.Precision), formatFloat(s.Recall), formatFloat(s.F))
	return err
}

// Write prints every trial's lexicon and then the summary.
func Write(w io.Writer, s sim.Summary) error {
	for _, r := range s.Trials {
		if err := WriteLexicon(w, r); err != nil {
			return err
		}
	}
	return WriteSummary(w, s)
}

// SummaryTable renders per-trial scores with the averages as footer.
func SummaryTable(s sim.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Trial", "Seed", "Lexicon", "Correct", "Precision", "Recall"})
	for _, r := range s.Trials {
		precision := "n/a"
		if r.PrecisionDefined {
			precision = fmt.Sprintf("%.4f", r.Precision)
		}
		t.AppendRow(table.Row{r.Trial, r.Seed, len(r.Lexicon), r.Correct, precision, fmt.Sprintf("%.4f", r.Recall)})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("F %.4f", s.F), fmt.Sprintf("%.4f", s.Precision), fmt.Sprintf("%.4f", s.Recall)})
	t.SetColumnConfigs(rightAligned(2, 3, 4, 5, 6))
	return t.Render()
}

// RunsTable renders a listing of saved runs.
func RunsTable(runs []store.RunInfo) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Created", "Trials", "Precision", "Recall", "F"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Trials,
			fmt.Sprintf("%.4f", r.Precision),
			fmt.Sprintf("%.4f", r.Recall),
			fmt.Sprintf("%.4f", r.F),
		})
	}
	t.SetColumnConfigs(rightAligned(3, 4, 5, 6))
	return t.Render()
}

func rightAligned(cols ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	return cfgs
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
