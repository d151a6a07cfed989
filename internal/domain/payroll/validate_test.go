package payroll

import (
	"errors"
	"strings"
	"testing"

	"paystubs/internal/domain/tabular"
)

const validHeader = "full_name,email,position,health_discount_amount,social_discount_amount,taxes_discount_amount,other_discount_amount,gross_salary,gross_payment,net_payment,period"

func mustTable(t *testing.T, csv string) *tabular.Table {
	t.Helper()
	table, err := tabular.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return table
}

func TestValidateTableHappyPath(t *testing.T) {
	csv := validHeader + "\n" +
		"Jane Doe,jane@example.com,Engineer,80.0,100.0,50.0,20.0,3000,2900,2650,01/01/2024\n" +
		"John Roe,john@example.com,Analyst,10.5,20.5,30.5,0,2000,1950,1888.5,2024-02-15\n"

	records, err := ValidateTable(mustTable(t, csv))
	if err != nil {
		t.Fatalf("ValidateTable failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.FullName != "Jane Doe" || first.Email != "jane@example.com" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Period != "2024-01-01" {
		t.Fatalf("period not normalized, got %q", first.Period)
	}
	if first.GrossSalary != 3000 || first.HealthDiscountAmount != 80 {
		t.Fatalf("numeric fields not parsed: %+v", first)
	}
	if got := first.TotalDiscounts(); got != 250 {
		t.Fatalf("TotalDiscounts = %v, want 250", got)
	}
	if records[1].FullName != "John Roe" {
		t.Fatal("row order not preserved")
	}
}

func TestValidateTableDateErrorBeforeSchema(t *testing.T) {
	// The email column is also invalid; the date failure must win
	// because normalization runs first.
	csv := validHeader + "\n" +
		"Jane Doe,not-an-email,Engineer,1,1,1,1,1,1,1,20-20-20\n"

	_, err := ValidateTable(mustTable(t, csv))
	var dfe *DateFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("expected *DateFormatError, got %v", err)
	}
	if dfe.Raw != "20-20-20" {
		t.Fatalf("error should name the raw value, got %q", dfe.Raw)
	}
}

func TestValidateTableRejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		wantField string
	}{
		{
			name:      "bad email",
			row:       "Jane Doe,nope,Engineer,1,1,1,1,1,1,1,2024-01-01",
			wantField: "email",
		},
		{
			name:      "email without dot",
			row:       "Jane Doe,jane@host,Engineer,1,1,1,1,1,1,1,2024-01-01",
			wantField: "email",
		},
		{
			name:      "non-numeric amount",
			row:       "Jane Doe,jane@example.com,Engineer,abc,1,1,1,1,1,1,2024-01-01",
			wantField: "health_discount_amount",
		},
		{
			name:      "missing name",
			row:       ",jane@example.com,Engineer,1,1,1,1,1,1,1,2024-01-01",
			wantField: "full_name",
		},
		{
			name:      "missing amount",
			row:       "Jane Doe,jane@example.com,Engineer,1,1,1,1,,1,1,2024-01-01",
			wantField: "gross_salary",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			csv := validHeader + "\n" +
				"Good Row,good@example.com,Engineer,1,1,1,1,1,1,1,2024-01-01\n" +
				tc.row + "\n"

			records, err := ValidateTable(mustTable(t, csv))
			if records != nil {
				t.Fatal("expected no records from a malformed batch")
			}
			var serr *SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("expected *SchemaError, got %v", err)
			}
			if serr.Field != tc.wantField {
				t.Fatalf("SchemaError.Field = %q, want %q", serr.Field, tc.wantField)
			}
			if serr.Row != 2 {
				t.Fatalf("SchemaError.Row = %d, want 2", serr.Row)
			}
		})
	}
}

func TestValidateTableMissingColumn(t *testing.T) {
	csv := "full_name,email\nJane Doe,jane@example.com\n"

	_, err := ValidateTable(mustTable(t, csv))
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if serr.Row != 0 || serr.Field != "position" {
		t.Fatalf("unexpected violation: %+v", serr)
	}
}
