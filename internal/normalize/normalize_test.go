package normalize

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/rxreimb/internal/model"
)

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		dollars float64
		cents   int64
	}{
		{0, 0},
		{3.00, 300},
		{45.67, 4567},
		{-12.50, -1250},
		{100.004, 10000},
	}
	for _, tc := range tests {
		if got := DollarsToCents(tc.dollars); got != tc.cents {
			t.Errorf("DollarsToCents(%v) = %d, want %d", tc.dollars, got, tc.cents)
		}
	}
}

func TestDollarsToMicros_RoundTrip(t *testing.T) {
	// Four-decimal prices must survive the micros representation exactly.
	for _, v := range []float64{0, 0.0001, -1.2345, 9999.9999, -0.0825} {
		m := DollarsToMicros(v)
		if got := MicrosToDollars(m); got != v {
			t.Errorf("MicrosToDollars(DollarsToMicros(%v)) = %v", v, got)
		}
	}
}

func TestNormalizeNDC(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0000-0000-00", "0000000000"},
		{" 00071015523 ", "00071015523"},
		{"ab-123", "AB123"},
		{"  ", ""},
		{"--", ""},
	}
	for _, tc := range tests {
		if got := NormalizeNDC(tc.in); got != tc.want {
			t.Errorf("NormalizeNDC(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  ASPIRIN  81MG   TAB ", "aspirin 81mg tab"},
		{"TestDrug", "testdrug"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLineHash_Stable(t *testing.T) {
	a := LineHash(7, "some line")
	b := LineHash(7, "some line")
	if !bytes.Equal(a, b) {
		t.Error("identical inputs hash differently")
	}
	if bytes.Equal(a, LineHash(8, "some line")) {
		t.Error("line number does not affect hash")
	}
	if bytes.Equal(a, LineHash(7, "other line")) {
		t.Error("line content does not affect hash")
	}
}

func TestToStagingRow(t *testing.T) {
	rec := model.Record{
		Code: "AB12345", Name: "TESTDRUG 10MG  TAB", NDC: "0001-1122-33",
		PackageSize: 100, Unit: "ML", Quantity: 50,
		LowestAcceptablePrice: -1.2345, IngredientCost: 3.00,
		ClaimsWithAuthorization: 2, TotalPaid: 100.00, AveragePaid: 2.50,
		DaysSupply: 10, ClaimLines: 4,
	}
	batchID := uuid.New()

	row := ToStagingRow(rec, batchID, 42, 7, "raw line")

	if row.IngestBatchID != batchID || row.SourceFileID != 42 || row.SourceLineNumber != 7 {
		t.Errorf("provenance fields wrong: %+v", row)
	}
	if len(row.SourceLineHash) == 0 {
		t.Error("missing source line hash")
	}
	if row.DrugNameNorm != "testdrug 10mg tab" {
		t.Errorf("DrugNameNorm = %q", row.DrugNameNorm)
	}
	if row.NDCCode != "0001112233" {
		t.Errorf("NDCCode = %q", row.NDCCode)
	}
	if row.LowestAcceptablePriceMicros != -1234500 {
		t.Errorf("LowestAcceptablePriceMicros = %d", row.LowestAcceptablePriceMicros)
	}
	if row.IngredientCostCents != 300 || row.TotalPaidCents != 10000 || row.AveragePaidCents != 250 {
		t.Errorf("cents conversion wrong: %+v", row)
	}
	if got := len(row.CopyValues()); got != len(model.StagingColumns()) {
		t.Errorf("CopyValues has %d values, StagingColumns has %d", got, len(model.StagingColumns()))
	}
}
