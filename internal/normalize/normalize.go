package normalize

import (
	"github.com/google/uuid"

	"github.com/gyeh/rxreimb/internal/model"
)

// ToStagingRow converts a decoded Record into a DB-ready StagingRow, tagged
// with the ingest batch and its source line for provenance.
func ToStagingRow(rec model.Record, batchID uuid.UUID, sourceFileID, lineNum int64, line string) *model.StagingRow {
	return &model.StagingRow{
		IngestBatchID:    batchID,
		SourceFileID:     sourceFileID,
		SourceLineNumber: lineNum,
		SourceLineHash:   LineHash(lineNum, line),

		LegacyCode:   rec.Code,
		DrugName:     rec.Name,
		DrugNameNorm: NormalizeName(rec.Name),
		NDCCode:      NormalizeNDC(rec.NDC),

		PackageSize: rec.PackageSize,
		Unit:        rec.Unit,
		Quantity:    rec.Quantity,

		LowestAcceptablePriceMicros: DollarsToMicros(rec.LowestAcceptablePrice),
		IngredientCostCents:         DollarsToCents(rec.IngredientCost),
		ClaimsWithAuthorization:     rec.ClaimsWithAuthorization,
		TotalPaidCents:              DollarsToCents(rec.TotalPaid),
		AveragePaidCents:            DollarsToCents(rec.AveragePaid),
		DaysSupply:                  rec.DaysSupply,
		ClaimLines:                  rec.ClaimLines,
	}
}
