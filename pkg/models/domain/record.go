package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one cleaned transaction row. Columns outside the required set are
// carried through in Extra, keyed by their normalized header names.
type Record struct {
	Sales        decimal.Decimal
	Profit       decimal.Decimal
	OrderDate    time.Time
	Region       string
	Category     string
	SubCategory  string
	CustomerName string
	Extra        map[string]string
}

// DatasetSource identifies the resource a Dataset was loaded from. Path plus
// modification time acts as the cache key for the memoized load.
type DatasetSource struct {
	Path    string
	ModTime time.Time
}

// Dataset is the full cleaned, validated collection of records. Treated as a
// value after load; downstream stages never mutate it.
type Dataset struct {
	Source  DatasetSource
	Columns []string
	Records []Record
}
