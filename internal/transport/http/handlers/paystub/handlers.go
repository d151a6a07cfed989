package paystubhandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paystubs/internal/domain/credentials"
	"paystubs/internal/domain/labels"
	"paystubs/internal/domain/payroll"
	"paystubs/internal/domain/receipt"
	"paystubs/internal/domain/tabular"
	"paystubs/internal/platform/email"
	"paystubs/internal/platform/metrics"
	"paystubs/internal/transport/http/api"
)

const (
	mailSubject = "Your Paystub"
	mailBody    = "Here is your paystub attached."
)

type Handler struct {
	Account  *credentials.Account
	Composer *receipt.Composer
	Mailer   email.Mailer
	From     string
	Metrics  *metrics.Collector
}

func NewHandler(account *credentials.Account, composer *receipt.Composer, mailer email.Mailer, from string, collector *metrics.Collector) *Handler {
	return &Handler{
		Account:  account,
		Composer: composer,
		Mailer:   mailer,
		From:     from,
		Metrics:  collector,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/send_paystub/", h.handleSendPaystub)
}

// handleSendPaystub runs the whole batch synchronously: credentials,
// country, upload parsing, validation, then one compose+send per row.
func (h *Handler) handleSendPaystub(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials.Parse(param(r, "credentials"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid 'credentials' format. Use 'user:pwd'.")
		return
	}
	if err := h.Account.Verify(username, password); err != nil {
		if errors.Is(err, credentials.ErrUnknownUser) {
			api.Fail(w, http.StatusNotFound, "User not found")
			return
		}
		api.Fail(w, http.StatusBadRequest, "Incorrect password")
		return
	}

	country := param(r, "country")
	if country == "" {
		country = "DO"
	}
	if !labels.Supported(country) {
		api.Fail(w, http.StatusBadRequest, "Invalid country code ('do', 'usa')")
		return
	}
	company := param(r, "company")

	file, header, err := r.FormFile("csv")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Missing 'csv' file upload")
		return
	}
	defer file.Close()

	table, err := tabular.Parse(header.Filename, file)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid CSV: "+err.Error())
		return
	}

	records, err := payroll.ValidateTable(table)
	if err != nil {
		var dfe *payroll.DateFormatError
		if errors.As(err, &dfe) {
			api.Fail(w, http.StatusBadRequest, "Date parsing error: "+dfe.Error())
			return
		}
		api.Fail(w, http.StatusBadRequest, "Invalid CSV: "+err.Error())
		return
	}

	report, err := h.Composer.DeliverBatch(r.Context(), company, records, country, h.deliver)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordBatch(len(report.SentTo))
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"message":   "Paystubs sent successfully",
		"sent_to":   report.SentTo,
		"timestamp": report.Timestamp.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) deliver(ctx context.Context, to string, pdf []byte, filename string) error {
	return h.Mailer.Send(ctx, h.From, to, mailSubject, mailBody, email.Attachment{
		Filename:    filename,
		ContentType: "application/pdf",
		Content:     pdf,
	})
}

// param reads a request parameter from the query string first, then
// the (multipart) form body.
func param(r *http.Request, key string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return r.FormValue(key)
}
