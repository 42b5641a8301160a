// mkfixture writes a synthetic fixed-width quarter file for tests and local
// runs. Drug names repeat so sorted output exercises the duplicate-key path,
// and one record per 50 gets a days supply large enough for exponential form.
// Usage: go run ./cmd/mkfixture --out testdata/quarter-small.txt --rows 200
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gyeh/rxreimb/internal/fixedwidth"
	"github.com/gyeh/rxreimb/internal/model"
)

var drugNames = []string{
	"ASPIRIN 81MG TAB",
	"IBUPROFEN 200MG TAB",
	"AMOXICILLIN 500MG CAP",
	"METFORMIN 1000MG TAB",
	"LISINOPRIL 10MG TAB",
	"ATORVASTATIN 20MG TAB",
	"OMEPRAZOLE 20MG CAP",
	"AMLODIPINE 5MG TAB",
	"INSULIN GLARGINE 100U/ML",
	"ALBUTEROL 90MCG INH",
}

var units = []string{"EA", "ML", "GM"}

func main() {
	out := flag.String("out", "testdata/quarter-small.txt", "output path")
	rows := flag.Int("rows", 200, "number of well-formed lines")
	malformed := flag.Int("malformed", 0, "number of trailing malformed lines")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	for i := 0; i < *rows; i++ {
		rec := randomRecord(rng, i)
		line, err := fixedwidth.Encode(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode row %d: %v\n", i, err)
			os.Exit(1)
		}
		fmt.Fprintln(w, line)
	}
	for i := 0; i < *malformed; i++ {
		fmt.Fprintln(w, "THIS LINE IS NOT A VALID RECORD")
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows (%d malformed) to %s\n", *rows, *malformed, *out)
}

func randomRecord(rng *rand.Rand, i int) model.Record {
	days := int64(rng.Intn(90) + 1)
	if i%50 == 49 {
		days = int64(rng.Intn(9)+1) * 1_000_000
	}
	totalPaid := float64(rng.Intn(1_000_000)) / 100
	if i%25 == 24 {
		totalPaid = -totalPaid // clawback
	}
	return model.Record{
		Code:                    fmt.Sprintf("RX%05d", rng.Intn(100000)),
		Name:                    drugNames[rng.Intn(len(drugNames))],
		NDC:                     fmt.Sprintf("%013d", rng.Int63n(1_000_000_000)),
		PackageSize:             float64(rng.Intn(100000)) / 1000,
		Unit:                    units[rng.Intn(len(units))],
		Quantity:                float64(rng.Intn(5000) + 1),
		LowestAcceptablePrice:   float64(rng.Intn(100000)) / 10000,
		IngredientCost:          float64(rng.Intn(100000)) / 100,
		ClaimsWithAuthorization: int64(rng.Intn(100)),
		TotalPaid:               totalPaid,
		AveragePaid:             float64(rng.Intn(10000)) / 100,
		DaysSupply:              days,
		ClaimLines:              int64(rng.Intn(2000) + 1),
	}
}
