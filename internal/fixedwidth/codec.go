// Package fixedwidth encodes and decodes the 158-character fixed-width
// lines of a quarterly pharmacy-reimbursement file.
//
// Each line carries one drug's figures for the quarter in twelve
// space-padded, left-justified columns:
//
//	[0,7)     legacy code
//	[7,37)    drug name (brand, strength, form)
//	[37,50)   national drug code
//	[50,64)   package size + 2-char unit
//	[64,80)   quantity dispensed
//	[80,90)   lowest acceptable price
//	[90,102)  ingredient cost
//	[102,110) claims with authorization
//	[110,124) total paid
//	[124,134) average paid
//	[134,148) days supply
//	[148,158) claim lines
//
// Decoding is all-or-nothing per line: a single malformed column rejects
// the whole line with a *FieldError naming the column. Encoding reproduces
// the layout byte-for-byte for field values; original intra-column
// whitespace is not preserved, only the declared widths.
package fixedwidth

import (
	"math"
	"strconv"
	"strings"

	"github.com/gyeh/rxreimb/internal/model"
)

// Decode parses one fixed-width line into a Record. The line must be
// exactly LineLength characters or Decode fails with *LengthError; any
// column that does not parse as its declared type fails the whole decode
// with *FieldError. Decode has no side effects.
func Decode(line string) (model.Record, error) {
	if len(line) != LineLength {
		return model.Record{}, &LengthError{Length: len(line)}
	}

	rec := model.Record{
		Code: strings.TrimSpace(line[codeStart:codeEnd]),
		Name: strings.TrimSpace(line[nameStart:nameEnd]),
		NDC:  strings.TrimSpace(line[ndcStart:ndcEnd]),
	}

	sizeUnit := strings.TrimSpace(line[sizeUnitStart:sizeUnitEnd])
	if len(sizeUnit) < unitWidth {
		return model.Record{}, &FieldError{Field: "unit", Raw: sizeUnit, Err: errUnitTooShort}
	}
	rec.Unit = sizeUnit[len(sizeUnit)-unitWidth:]

	var err error
	if rec.PackageSize, err = parseDecimal("packageSize", sizeUnit[:len(sizeUnit)-unitWidth]); err != nil {
		return model.Record{}, err
	}
	if rec.Quantity, err = parseDecimal("quantity", line[quantityStart:quantityEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.LowestAcceptablePrice, err = parseDecimal("lowestAcceptablePrice", line[lowestStart:lowestEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.IngredientCost, err = parseDecimal("ingredientCost", line[ingredientStart:ingredientEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.ClaimsWithAuthorization, err = parseCount("claimsWithAuthorization", line[claimsAuthStart:claimsAuthEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.TotalPaid, err = parseDecimal("totalPaid", line[totalPaidStart:totalPaidEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.AveragePaid, err = parseDecimal("averagePaid", line[averagePaidStart:averagePaidEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.DaysSupply, err = parseDaysSupply(line[daysSupplyStart:daysSupplyEnd]); err != nil {
		return model.Record{}, err
	}
	if rec.ClaimLines, err = parseCount("claimLines", line[claimLinesStart:claimLinesEnd]); err != nil {
		return model.Record{}, err
	}

	return rec, nil
}

// Encode renders a Record back into the 158-character layout. Field values
// round-trip exactly; padding and decimal places are normalized. Encode
// fails with *FieldError if a formatted value does not fit its column.
func Encode(rec model.Record) (string, error) {
	fields := []struct {
		name  string
		text  string
		width int
	}{
		{"code", rec.Code, codeEnd - codeStart},
		{"name", rec.Name, nameEnd - nameStart},
		{"ndc", rec.NDC, ndcEnd - ndcStart},
		{"packageSize", formatFixed(rec.PackageSize, 3) + rec.Unit, sizeUnitEnd - sizeUnitStart},
		{"quantity", formatFixed(rec.Quantity, 0), quantityEnd - quantityStart},
		{"lowestAcceptablePrice", formatFixed(rec.LowestAcceptablePrice, 4), lowestEnd - lowestStart},
		{"ingredientCost", formatFixed(rec.IngredientCost, 2), ingredientEnd - ingredientStart},
		{"claimsWithAuthorization", formatCount(rec.ClaimsWithAuthorization), claimsAuthEnd - claimsAuthStart},
		{"totalPaid", formatFixed(rec.TotalPaid, 2), totalPaidEnd - totalPaidStart},
		{"averagePaid", formatFixed(rec.AveragePaid, 2), averagePaidEnd - averagePaidStart},
		{"daysSupply", formatDaysSupply(rec.DaysSupply), daysSupplyEnd - daysSupplyStart},
		{"claimLines", formatCount(rec.ClaimLines), claimLinesEnd - claimLinesStart},
	}

	var b strings.Builder
	b.Grow(LineLength)
	for _, f := range fields {
		if len(f.text) > f.width {
			return "", &FieldError{Field: f.name, Raw: f.text, Err: errFieldOverflow}
		}
		b.WriteString(f.text)
		for i := len(f.text); i < f.width; i++ {
			b.WriteByte(' ')
		}
	}
	return b.String(), nil
}

func parseDecimal(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Raw: raw, Err: err}
	}
	return v, nil
}

func parseCount(field, raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Raw: raw, Err: err}
	}
	return v, nil
}

// parseDaysSupply accepts both plain integers and the exponential form used
// at or above ExpThreshold. The column is an integer count, so a fractional
// value or one outside int64 range rejects the line.
func parseDaysSupply(raw string) (int64, error) {
	v, err := parseDecimal("daysSupply", raw)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, &FieldError{Field: "daysSupply", Raw: raw, Err: errNotInteger}
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, &FieldError{Field: "daysSupply", Raw: raw, Err: strconv.ErrRange}
	}
	return int64(v), nil
}
