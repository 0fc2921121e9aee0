package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/export"
)

func TestWriteRecentCSV_RoundTrip(t *testing.T) {
	txs := []domain.Transaction{
		{
			Description:  "Rent June",
			Amount:       decimal.RequireFromString("850.00"),
			Type:         domain.TransactionExpense,
			Date:         time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			CategoryName: "Housing",
		},
		{
			Description: "Salary",
			Amount:      decimal.RequireFromString("2400.5"),
			Type:        domain.TransactionIncome,
			Date:        time.Date(2024, 6, 28, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf strings.Builder
	if err := export.WriteRecentCSV(&buf, txs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(txs)+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(txs)+1)
	}
	if lines[0] != "Date,Description,Category,Amount,Type" {
		t.Errorf("header = %q", lines[0])
	}

	// Re-splitting by comma must yield the original fields for inputs
	// without embedded commas.
	for i, tx := range txs {
		fields := strings.Split(lines[i+1], ",")
		if len(fields) != 5 {
			t.Fatalf("row %d has %d fields: %q", i+1, len(fields), lines[i+1])
		}
		if fields[1] != tx.Description {
			t.Errorf("row %d description = %q, want %q", i+1, fields[1], tx.Description)
		}
		if fields[2] != tx.Category() {
			t.Errorf("row %d category = %q, want %q", i+1, fields[2], tx.Category())
		}
		if fields[3] != tx.Amount.StringFixed(2) {
			t.Errorf("row %d amount = %q, want %q", i+1, fields[3], tx.Amount.StringFixed(2))
		}
		if fields[4] != string(tx.Type) {
			t.Errorf("row %d type = %q, want %q", i+1, fields[4], tx.Type)
		}
	}

	if !strings.Contains(lines[2], "Uncategorized") {
		t.Errorf("uncategorized fallback missing in row: %q", lines[2])
	}
	if !strings.Contains(lines[2], "2400.50") {
		t.Errorf("amount should render with two fractional digits: %q", lines[2])
	}
}

func TestWriteRecentCSV_Empty(t *testing.T) {
	var buf strings.Builder
	if err := export.WriteRecentCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Date,Description,Category,Amount,Type\n" {
		t.Errorf("empty export = %q", buf.String())
	}
}
