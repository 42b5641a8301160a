package model

// ReimbursementRow mirrors the Parquet schema for one exported record.
// Money fields stay float64 dollars in the Parquet representation; the
// fixed-point conversion only applies on the Postgres path.
type ReimbursementRow struct {
	Quarter string `parquet:"quarter"`

	LegacyCode string `parquet:"legacy_code"`
	DrugName   string `parquet:"drug_name"`
	NDCCode    string `parquet:"ndc_code"`

	PackageSize float64 `parquet:"package_size"`
	Unit        string  `parquet:"unit"`
	Quantity    float64 `parquet:"quantity"`

	LowestAcceptablePrice   float64 `parquet:"lowest_acceptable_price"`
	IngredientCost          float64 `parquet:"ingredient_cost"`
	ClaimsWithAuthorization int64   `parquet:"claims_with_authorization"`
	TotalPaid               float64 `parquet:"total_paid"`
	AveragePaid             float64 `parquet:"average_paid"`
	DaysSupply              int64   `parquet:"days_supply"`
	ClaimLines              int64   `parquet:"claim_lines"`
}

// ToParquetRow converts a decoded Record into its Parquet representation,
// stamped with the quarter label from config.
func ToParquetRow(rec Record, quarter string) ReimbursementRow {
	return ReimbursementRow{
		Quarter:                 quarter,
		LegacyCode:              rec.Code,
		DrugName:                rec.Name,
		NDCCode:                 rec.NDC,
		PackageSize:             rec.PackageSize,
		Unit:                    rec.Unit,
		Quantity:                rec.Quantity,
		LowestAcceptablePrice:   rec.LowestAcceptablePrice,
		IngredientCost:          rec.IngredientCost,
		ClaimsWithAuthorization: rec.ClaimsWithAuthorization,
		TotalPaid:               rec.TotalPaid,
		AveragePaid:             rec.AveragePaid,
		DaysSupply:              rec.DaysSupply,
		ClaimLines:              rec.ClaimLines,
	}
}
