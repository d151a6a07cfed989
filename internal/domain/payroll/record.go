package payroll

import "math"

// Record is one validated row of an uploaded payroll table. Built once
// by ValidateTable and immutable afterwards.
type Record struct {
	FullName             string
	Email                string
	Position             string
	HealthDiscountAmount float64
	SocialDiscountAmount float64
	TaxesDiscountAmount  float64
	OtherDiscountAmount  float64
	GrossSalary          float64
	GrossPayment         float64
	NetPayment           float64
	Period               string // canonical YYYY-MM-DD
}

// TotalDiscounts sums the four discount amounts, rounded to 2 decimals.
func (r Record) TotalDiscounts() float64 {
	sum := r.SocialDiscountAmount + r.HealthDiscountAmount + r.TaxesDiscountAmount + r.OtherDiscountAmount
	return math.Round(sum*100) / 100
}
