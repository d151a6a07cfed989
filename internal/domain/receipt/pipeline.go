package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"paystubs/internal/domain/payroll"
)

// DeliverFunc hands one finished receipt to the delivery collaborator.
type DeliverFunc func(ctx context.Context, email string, pdf []byte, filename string) error

// BatchReport is the result of a fully successful batch: every
// recipient address in table order plus the completion time.
type BatchReport struct {
	SentTo    []string
	Timestamp time.Time
}

// DeliveryError names the recipient whose delivery failed. Its message
// deliberately omits the underlying cause; that detail goes to the log
// only.
type DeliveryError struct {
	Email string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("error sending to %s", e.Email)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// DeliverBatch composes and delivers one receipt per record, in table
// order. The batch is all-or-nothing in its reporting but fail-fast in
// execution: the first delivery failure aborts the loop, and receipts
// already sent are not recalled.
func (c *Composer) DeliverBatch(ctx context.Context, companyName string, records []payroll.Record, countryCode string, deliver DeliverFunc) (BatchReport, error) {
	sent := make([]string, 0, len(records))
	for _, record := range records {
		pdf, err := c.Compose(companyName, record, countryCode)
		if err != nil {
			slog.Error("receipt compose failed", "email", record.Email, "err", err)
			return BatchReport{}, &DeliveryError{Email: record.Email, Err: err}
		}
		filename := attachmentFilename(record.FullName)
		if err := deliver(ctx, record.Email, pdf, filename); err != nil {
			slog.Error("paystub delivery failed", "email", record.Email, "err", err)
			return BatchReport{}, &DeliveryError{Email: record.Email, Err: err}
		}
		sent = append(sent, record.Email)
	}
	return BatchReport{SentTo: sent, Timestamp: time.Now()}, nil
}

func attachmentFilename(fullName string) string {
	return "paystub_" + strings.ReplaceAll(fullName, " ", "_") + ".pdf"
}
