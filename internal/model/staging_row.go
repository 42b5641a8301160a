package model

import "github.com/google/uuid"

// StagingRow is the normalized, DB-ready form of one decoded line. Money
// values are stored as fixed-point integers: cents for the two-decimal
// columns, micros for the four-decimal lowest acceptable price.
type StagingRow struct {
	IngestBatchID    uuid.UUID
	SourceFileID     int64
	SourceLineNumber int64
	SourceLineHash   []byte

	LegacyCode   string
	DrugName     string
	DrugNameNorm string
	NDCCode      string

	PackageSize float64
	Unit        string
	Quantity    float64

	LowestAcceptablePriceMicros int64
	IngredientCostCents         int64
	ClaimsWithAuthorization     int64
	TotalPaidCents              int64
	AveragePaidCents            int64
	DaysSupply                  int64
	ClaimLines                  int64
}

// StagingColumns returns the ordered column names for COPY into
// rx.stage_reimbursements.
func StagingColumns() []string {
	return []string{
		"ingest_batch_id",
		"source_file_id",
		"source_line_number",
		"source_line_hash",
		"legacy_code",
		"drug_name",
		"drug_name_norm",
		"ndc_code",
		"package_size",
		"unit",
		"quantity",
		"lowest_acceptable_price_micros",
		"ingredient_cost_cents",
		"claims_with_authorization",
		"total_paid_cents",
		"average_paid_cents",
		"days_supply",
		"claim_lines",
	}
}

// CopyValues returns the row values in StagingColumns order, suitable for a
// pgx CopyFromSource.
func (r *StagingRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.SourceFileID,
		r.SourceLineNumber,
		r.SourceLineHash,
		r.LegacyCode,
		r.DrugName,
		r.DrugNameNorm,
		r.NDCCode,
		r.PackageSize,
		r.Unit,
		r.Quantity,
		r.LowestAcceptablePriceMicros,
		r.IngredientCostCents,
		r.ClaimsWithAuthorization,
		r.TotalPaidCents,
		r.AveragePaidCents,
		r.DaysSupply,
		r.ClaimLines,
	}
}
