package payroll

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"paystubs/internal/domain/tabular"
)

// SchemaError reports the first field violation found in a batch. Any
// single violation rejects the whole upload.
type SchemaError struct {
	Row    int // 1-based data row; 0 for table-level violations
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("column %q %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("row %d: field %q %s", e.Row, e.Field, e.Reason)
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)+$`)

const (
	colFullName       = "full_name"
	colEmail          = "email"
	colPosition       = "position"
	colHealthDiscount = "health_discount_amount"
	colSocialDiscount = "social_discount_amount"
	colTaxesDiscount  = "taxes_discount_amount"
	colOtherDiscount  = "other_discount_amount"
	colGrossSalary    = "gross_salary"
	colGrossPayment   = "gross_payment"
	colNetPayment     = "net_payment"
	colPeriod         = "period"
)

var requiredColumns = []string{
	colFullName,
	colEmail,
	colPosition,
	colHealthDiscount,
	colSocialDiscount,
	colTaxesDiscount,
	colOtherDiscount,
	colGrossSalary,
	colGrossPayment,
	colNetPayment,
	colPeriod,
}

// ValidateTable normalizes the period column, then checks every row
// against the payroll record schema. All-or-nothing: the first
// violation fails the whole batch, and no records are returned.
//
// A period value that matches none of the accepted date layouts aborts
// with a *DateFormatError before schema validation runs.
func ValidateTable(table *tabular.Table) ([]Record, error) {
	if err := table.Transform(colPeriod, NormalizeDate); err != nil {
		return nil, err
	}

	for _, column := range requiredColumns {
		if !table.HasColumn(column) {
			return nil, &SchemaError{Field: column, Reason: "is missing"}
		}
	}

	records := make([]Record, 0, table.Len())
	for row := 0; row < table.Len(); row++ {
		record, err := validateRow(table, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func validateRow(table *tabular.Table, row int) (Record, error) {
	text := func(column string) (string, *SchemaError) {
		value, _ := table.Value(row, column)
		value = strings.TrimSpace(value)
		if value == "" {
			return "", &SchemaError{Row: row + 1, Field: column, Reason: "is required"}
		}
		return value, nil
	}
	amount := func(column string) (float64, *SchemaError) {
		value, serr := text(column)
		if serr != nil {
			return 0, serr
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, &SchemaError{Row: row + 1, Field: column, Reason: "must be a number"}
		}
		return parsed, nil
	}

	var record Record
	var serr *SchemaError

	if record.FullName, serr = text(colFullName); serr != nil {
		return Record{}, serr
	}
	if record.Email, serr = text(colEmail); serr != nil {
		return Record{}, serr
	}
	if !emailPattern.MatchString(record.Email) {
		return Record{}, &SchemaError{Row: row + 1, Field: colEmail, Reason: "must be a valid email address"}
	}
	if record.Position, serr = text(colPosition); serr != nil {
		return Record{}, serr
	}
	if record.HealthDiscountAmount, serr = amount(colHealthDiscount); serr != nil {
		return Record{}, serr
	}
	if record.SocialDiscountAmount, serr = amount(colSocialDiscount); serr != nil {
		return Record{}, serr
	}
	if record.TaxesDiscountAmount, serr = amount(colTaxesDiscount); serr != nil {
		return Record{}, serr
	}
	if record.OtherDiscountAmount, serr = amount(colOtherDiscount); serr != nil {
		return Record{}, serr
	}
	if record.GrossSalary, serr = amount(colGrossSalary); serr != nil {
		return Record{}, serr
	}
	if record.GrossPayment, serr = amount(colGrossPayment); serr != nil {
		return Record{}, serr
	}
	if record.NetPayment, serr = amount(colNetPayment); serr != nil {
		return Record{}, serr
	}

	period, serr := text(colPeriod)
	if serr != nil {
		return Record{}, serr
	}
	if _, err := time.Parse(CanonicalDateLayout, period); err != nil {
		return Record{}, &SchemaError{Row: row + 1, Field: colPeriod, Reason: "must be a date in YYYY-MM-DD format"}
	}
	record.Period = period

	return record, nil
}
