package fixedwidth

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gyeh/rxreimb/internal/model"
)

// buildLine assembles a well-formed 158-character line from column texts.
func buildLine(t *testing.T, code, name, ndc, sizeUnit, quantity, lowest, ingredient, claimsAuth, totalPaid, averagePaid, daysSupply, claimLines string) string {
	t.Helper()
	line := fmt.Sprintf("%-7s%-30s%-13s%-14s%-16s%-10s%-12s%-8s%-14s%-10s%-14s%-10s",
		code, name, ndc, sizeUnit, quantity, lowest, ingredient, claimsAuth, totalPaid, averagePaid, daysSupply, claimLines)
	if len(line) != LineLength {
		t.Fatalf("test line is %d characters, want %d", len(line), LineLength)
	}
	return line
}

func exampleLine(t *testing.T) string {
	t.Helper()
	return buildLine(t,
		"AB12345", "TESTDRUG", "0000000000000", "100.000ML",
		"50", "-1.2345", "3.00", "2", "100.00", "2.50", "10", "4")
}

func TestDecode_ExampleLine(t *testing.T) {
	rec, err := Decode(exampleLine(t))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := model.Record{
		Code:                    "AB12345",
		Name:                    "TESTDRUG",
		NDC:                     "0000000000000",
		PackageSize:             100.0,
		Unit:                    "ML",
		Quantity:                50,
		LowestAcceptablePrice:   -1.2345,
		IngredientCost:          3.00,
		ClaimsWithAuthorization: 2,
		TotalPaid:               100.00,
		AveragePaid:             2.50,
		DaysSupply:              10,
		ClaimLines:              4,
	}
	if rec != want {
		t.Errorf("Decode mismatch:\n got %+v\nwant %+v", rec, want)
	}
}

func TestDecode_EncodeRoundTrip(t *testing.T) {
	rec, err := Decode(exampleLine(t))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	line, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(line) != LineLength {
		t.Fatalf("encoded line is %d characters, want %d", len(line), LineLength)
	}

	again, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode of encoded line: %v", err)
	}
	if again != rec {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again, rec)
	}
}

func TestDecode_WrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 157, 159, 300} {
		_, err := Decode(strings.Repeat("x", n))
		var le *LengthError
		if !errors.As(err, &le) {
			t.Errorf("length %d: got %v, want *LengthError", n, err)
			continue
		}
		if le.Length != n {
			t.Errorf("length %d: error reports %d", n, le.Length)
		}
	}
}

func TestDecode_MalformedField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*testing.T) string
		field    string
	}{
		{
			name: "non-numeric quantity",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "100.000ML",
					"fifty", "-1.2345", "3.00", "2", "100.00", "2.50", "10", "4")
			},
			field: "quantity",
		},
		{
			name: "fractional claim count",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "100.000ML",
					"50", "-1.2345", "3.00", "2.5", "100.00", "2.50", "10", "4")
			},
			field: "claimsWithAuthorization",
		},
		{
			name: "unparseable package size",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "bottleML",
					"50", "-1.2345", "3.00", "2", "100.00", "2.50", "10", "4")
			},
			field: "packageSize",
		},
		{
			name: "size column shorter than unit",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "M",
					"50", "-1.2345", "3.00", "2", "100.00", "2.50", "10", "4")
			},
			field: "unit",
		},
		{
			name: "fractional days supply",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "100.000ML",
					"50", "-1.2345", "3.00", "2", "100.00", "2.50", "10.5", "4")
			},
			field: "daysSupply",
		},
		{
			name: "days supply beyond int64",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "100.000ML",
					"50", "-1.2345", "3.00", "2", "100.00", "2.50", "1E+19", "4")
			},
			field: "daysSupply",
		},
		{
			name: "blank total paid",
			mutate: func(t *testing.T) string {
				return buildLine(t, "AB12345", "TESTDRUG", "0000000000000", "100.000ML",
					"50", "-1.2345", "3.00", "2", "", "2.50", "10", "4")
			},
			field: "totalPaid",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.mutate(t))
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("got %v, want *FieldError", err)
			}
			if fe.Field != tc.field {
				t.Errorf("error names field %q, want %q", fe.Field, tc.field)
			}
		})
	}
}

func TestEncode_FixedWidth(t *testing.T) {
	recs := []model.Record{
		{Code: "A", Name: "X", NDC: "1", Unit: "EA"},
		{
			Code: "ZZ99999", Name: strings.Repeat("N", 30), NDC: "9999999999999",
			PackageSize: 9999.999, Unit: "GM", Quantity: 123456,
			LowestAcceptablePrice: -9999.9999, IngredientCost: -1234567.89,
			ClaimsWithAuthorization: 1234567, TotalPaid: 99999999.99,
			AveragePaid: -999999.99, DaysSupply: 999999999, ClaimLines: 999999999,
		},
	}
	for i, rec := range recs {
		line, err := Encode(rec)
		if err != nil {
			t.Fatalf("record %d: Encode: %v", i, err)
		}
		if len(line) != LineLength {
			t.Errorf("record %d: encoded %d characters, want %d", i, len(line), LineLength)
		}
	}
}

func TestEncode_ValueRoundTrip(t *testing.T) {
	recs := []model.Record{
		{
			Code: "AB12345", Name: "TESTDRUG 10MG TAB", NDC: "0001112223334",
			PackageSize: 30.5, Unit: "EA", Quantity: 1200,
			LowestAcceptablePrice: 0.0825, IngredientCost: 45.67,
			ClaimsWithAuthorization: 17, TotalPaid: 5432.10,
			AveragePaid: 4.53, DaysSupply: 36000, ClaimLines: 1199,
		},
		{
			Code: "NEG0001", Name: "CLAWBACK DRUG", NDC: "5556667778889",
			PackageSize: 0.125, Unit: "ML", Quantity: 3,
			LowestAcceptablePrice: -0.0001, IngredientCost: -12.50,
			ClaimsWithAuthorization: 0, TotalPaid: -250.00,
			AveragePaid: -83.33, DaysSupply: 2500000, ClaimLines: 3,
		},
	}

	for i, rec := range recs {
		line, err := Encode(rec)
		if err != nil {
			t.Fatalf("record %d: Encode: %v", i, err)
		}
		got, err := Decode(line)
		if err != nil {
			t.Fatalf("record %d: Decode: %v", i, err)
		}
		if got != rec {
			t.Errorf("record %d: round trip mismatch:\n got %+v\nwant %+v", i, got, rec)
		}
	}
}

func TestEncode_DaysSupplyThreshold(t *testing.T) {
	tests := []struct {
		days int64
		want string
	}{
		{999999, "999999"},
		{1000000, "1E+06"},
	}
	for _, tc := range tests {
		rec := model.Record{Code: "C", Name: "N", NDC: "1", Unit: "EA", DaysSupply: tc.days}
		line, err := Encode(rec)
		if err != nil {
			t.Fatalf("days %d: Encode: %v", tc.days, err)
		}
		col := strings.TrimSpace(line[daysSupplyStart:daysSupplyEnd])
		if col != tc.want {
			t.Errorf("days %d: column %q, want %q", tc.days, col, tc.want)
		}
		got, err := Decode(line)
		if err != nil {
			t.Fatalf("days %d: Decode: %v", tc.days, err)
		}
		if got.DaysSupply != tc.days {
			t.Errorf("days %d: decoded %d", tc.days, got.DaysSupply)
		}
	}
}

func TestEncode_NegativePrices(t *testing.T) {
	rec := model.Record{
		Code: "C", Name: "N", NDC: "1", Unit: "EA",
		LowestAcceptablePrice: -1.2345, IngredientCost: -3, TotalPaid: -100, AveragePaid: -2.5,
	}
	line, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	checks := []struct {
		field      string
		start, end int
		want       string
	}{
		{"lowestAcceptablePrice", lowestStart, lowestEnd, "-1.2345"},
		{"ingredientCost", ingredientStart, ingredientEnd, "-3.00"},
		{"totalPaid", totalPaidStart, totalPaidEnd, "-100.00"},
		{"averagePaid", averagePaidStart, averagePaidEnd, "-2.50"},
	}
	for _, c := range checks {
		if got := strings.TrimSpace(line[c.start:c.end]); got != c.want {
			t.Errorf("%s column %q, want %q", c.field, got, c.want)
		}
	}
}

func TestEncode_FieldOverflow(t *testing.T) {
	rec := model.Record{
		Code: "TOOLONGCODE", Name: "N", NDC: "1", Unit: "EA",
	}
	_, err := Encode(rec)
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FieldError", err)
	}
	if fe.Field != "code" {
		t.Errorf("error names field %q, want %q", fe.Field, "code")
	}
}
