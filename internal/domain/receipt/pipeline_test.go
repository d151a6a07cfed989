package receipt

import (
	"context"
	"errors"
	"testing"

	"paystubs/internal/domain/payroll"
)

func batchRecords() []payroll.Record {
	first := sampleRecord()
	second := sampleRecord()
	second.FullName = "John Roe"
	second.Email = "john@example.com"
	return []payroll.Record{first, second}
}

func TestDeliverBatchSuccess(t *testing.T) {
	composer := NewComposer(t.TempDir())

	type delivery struct {
		email    string
		filename string
	}
	var deliveries []delivery
	deliver := func(_ context.Context, email string, pdf []byte, filename string) error {
		if len(pdf) == 0 {
			t.Fatal("expected composed PDF bytes")
		}
		deliveries = append(deliveries, delivery{email: email, filename: filename})
		return nil
	}

	report, err := composer.DeliverBatch(context.Background(), "ACME", batchRecords(), "do", deliver)
	if err != nil {
		t.Fatalf("DeliverBatch failed: %v", err)
	}

	if len(report.SentTo) != 2 || report.SentTo[0] != "jane@example.com" || report.SentTo[1] != "john@example.com" {
		t.Fatalf("unexpected report order: %v", report.SentTo)
	}
	if report.Timestamp.IsZero() {
		t.Fatal("expected completion timestamp")
	}
	if deliveries[0].filename != "paystub_Jane_Doe.pdf" || deliveries[1].filename != "paystub_John_Roe.pdf" {
		t.Fatalf("unexpected filenames: %+v", deliveries)
	}
}

func TestDeliverBatchFailFast(t *testing.T) {
	composer := NewComposer(t.TempDir())

	records := batchRecords()
	third := sampleRecord()
	third.Email = "never@example.com"
	records = append(records, third)

	var attempted []string
	deliver := func(_ context.Context, email string, _ []byte, _ string) error {
		attempted = append(attempted, email)
		if email == "john@example.com" {
			return errors.New("smtp unavailable")
		}
		return nil
	}

	report, err := composer.DeliverBatch(context.Background(), "ACME", records, "do", deliver)

	var derr *DeliveryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DeliveryError, got %v", err)
	}
	if derr.Email != "john@example.com" {
		t.Fatalf("DeliveryError should name the failing recipient, got %q", derr.Email)
	}
	if len(report.SentTo) != 0 {
		t.Fatalf("failed batch must not report successes, got %v", report.SentTo)
	}
	// Fail-fast: the third record is never attempted.
	if len(attempted) != 2 {
		t.Fatalf("expected delivery to stop after the failure, attempted %v", attempted)
	}
}

func TestAttachmentFilename(t *testing.T) {
	if got := attachmentFilename("Jane Doe"); got != "paystub_Jane_Doe.pdf" {
		t.Fatalf("attachmentFilename = %q", got)
	}
	if got := attachmentFilename("Ana Maria De La Cruz"); got != "paystub_Ana_Maria_De_La_Cruz.pdf" {
		t.Fatalf("attachmentFilename = %q", got)
	}
}
