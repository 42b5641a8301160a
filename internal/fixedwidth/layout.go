package fixedwidth

// LineLength is the exact character count of an encoded reimbursement line.
const LineLength = 158

// Column boundaries in character offsets, [start, end). The NDC and
// average-paid widths follow the observed file layout, which is two
// characters wider than the published documentation for both columns.
const (
	codeStart, codeEnd               = 0, 7
	nameStart, nameEnd               = 7, 37
	ndcStart, ndcEnd                 = 37, 50
	sizeUnitStart, sizeUnitEnd       = 50, 64
	quantityStart, quantityEnd       = 64, 80
	lowestStart, lowestEnd           = 80, 90
	ingredientStart, ingredientEnd   = 90, 102
	claimsAuthStart, claimsAuthEnd   = 102, 110
	totalPaidStart, totalPaidEnd     = 110, 124
	averagePaidStart, averagePaidEnd = 124, 134
	daysSupplyStart, daysSupplyEnd   = 134, 148
	claimLinesStart, claimLinesEnd   = 148, 158
)

// unitWidth is the number of trailing characters of the size+unit column
// that hold the unit of measure.
const unitWidth = 2
