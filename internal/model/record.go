package model

import "strings"

// Record is the decoded form of one 158-character reimbursement line:
// one drug's dispensing and payment figures for a calendar-year quarter.
// Records are values and are never mutated after decoding.
type Record struct {
	// Code is the legacy drug identifier, trimmed.
	Code string
	// Name is the brand name with strength and form, trimmed.
	// It is the sort key for ordered output.
	Name string
	// NDC is the national drug code, trimmed.
	NDC string

	// PackageSize and Unit come from a single 14-character column:
	// the trailing 2 characters are the unit, the rest is the size.
	PackageSize float64
	Unit        string

	Quantity                float64
	LowestAcceptablePrice   float64
	IngredientCost          float64
	ClaimsWithAuthorization int64
	TotalPaid               float64
	AveragePaid             float64
	DaysSupply              int64
	ClaimLines              int64
}

// Compare orders records by drug name. It returns a negative number,
// zero, or a positive number when r sorts before, equal to, or after other.
func (r Record) Compare(other Record) int {
	return strings.Compare(r.Name, other.Name)
}
