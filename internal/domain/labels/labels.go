package labels

import "strings"

// Set holds the localized display strings printed on a paystub.
type Set struct {
	Title        string
	GrossSalary  string
	GrossPayment string
	NetPayment   string
	Discounts    string
	SFS          string
	AFP          string
	ISR          string
	Other        string
	Total        string
}

const defaultCode = "do"

var sets = map[string]Set{
	"do": {
		Title:        "Comprobante de pago",
		GrossSalary:  "Salario bruto",
		GrossPayment: "Pago bruto",
		NetPayment:   "Pago neto",
		Discounts:    "Descuentos",
		SFS:          "SFS",
		AFP:          "AFP",
		ISR:          "ISR",
		Other:        "Otros",
		Total:        "Total",
	},
	"usa": {
		Title:        "Paystub Payment",
		GrossSalary:  "Gross Salary",
		GrossPayment: "Gross Payment",
		NetPayment:   "Net Payment",
		Discounts:    "Deductions",
		SFS:          "Health Insurance",
		AFP:          "Social Security",
		ISR:          "Taxes",
		Other:        "Others",
		Total:        "Total",
	},
}

// Resolve maps a country code to its label set. The lookup is
// case-insensitive and total: unknown codes fall back to the
// default domestic locale.
func Resolve(countryCode string) Set {
	if set, ok := sets[strings.ToLower(strings.TrimSpace(countryCode))]; ok {
		return set
	}
	return sets[defaultCode]
}

// Supported reports whether the country code has its own label set.
func Supported(countryCode string) bool {
	_, ok := sets[strings.ToLower(strings.TrimSpace(countryCode))]
	return ok
}
