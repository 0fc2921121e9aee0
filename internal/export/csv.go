// Package export renders report output into portable artifacts.
package export

import (
	"io"
	"strings"

	"github.com/iho/fintrack/internal/domain"
)

// csvHeader is the fixed column set of the transactions export.
const csvHeader = "Date,Description,Category,Amount,Type"

// csvDateLayout is how dates render in the export.
const csvDateLayout = "2006-01-02"

// WriteRecentCSV writes the recent-transactions export: the fixed
// header, then one row per transaction with values joined by commas.
// Values are not quoted, so embedded commas in descriptions break the
// column layout. Known limitation, kept for compatibility with the
// existing artifact format.
func WriteRecentCSV(w io.Writer, txs []domain.Transaction) error {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, tx := range txs {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			tx.Date.Format(csvDateLayout),
			tx.Description,
			tx.Category(),
			tx.Amount.StringFixed(2),
			string(tx.Type),
		}, ","))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
