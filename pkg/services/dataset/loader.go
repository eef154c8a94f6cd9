package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// FileName is the transactions resource the loader probes for.
const FileName = "superstore.csv"

// RequiredColumns is the post-normalization schema the loader validates
// against before any field access.
var RequiredColumns = []string{
	"Sales",
	"Profit",
	"Order Date",
	"Region",
	"Category",
	"Sub-Category",
	"Customer Name",
}

// Order Date layouts, tried in order. Values matching none are treated as
// null and the row is dropped.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2-1-2006",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

var requiredSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(RequiredColumns))
	for _, col := range RequiredColumns {
		set[col] = struct{}{}
	}
	return set
}()

// Loader locates and parses the transactions CSV. The zero-value path means
// probing the fixed candidate locations.
type Loader struct {
	path string
}

func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithPath skips path probing and reads the given file directly.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Candidates returns the probed locations in priority order: alongside the
// executable, its data/ subfolder, then the same pair under the working
// directory. First existing path wins.
func Candidates() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, FileName),
			filepath.Join(dir, "data", FileName),
		)
	}
	paths = append(paths, FileName, filepath.Join("data", FileName))
	return paths
}

// Load reads, normalizes, validates and cleans the transactions CSV. The
// result is immutable; callers share it through a Cache.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	path, err := l.resolve()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// The source files ship as ISO-8859-1, not UTF-8.
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	columns := NormalizeColumns(header)
	index := columnIndex(columns)

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Found: columns}
	}

	var records []domain.Record
	dropped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}

		record, ok := parseRecord(columns, index, row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}

	logger.Debug().
		Str("path", path).
		Int("records", len(records)).
		Int("dropped", dropped).
		Msg("dataset loaded")

	return &domain.Dataset{
		Source:  domain.DatasetSource{Path: path, ModTime: info.ModTime()},
		Columns: columns,
		Records: records,
	}, nil
}

func (l *Loader) resolve() (string, error) {
	if l.path != "" {
		if _, err := os.Stat(l.path); err != nil {
			return "", &UnavailableError{FileName: filepath.Base(l.path), Candidates: []string{l.path}}
		}
		return l.path, nil
	}

	candidates := Candidates()
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &UnavailableError{FileName: FileName, Candidates: candidates}
}

// NormalizeColumn canonicalizes one header cell: literal dots become spaces,
// whitespace runs collapse to a single space, surrounding whitespace is
// trimmed. "Sub Category" is renamed to "Sub-Category" to unify a known
// naming variant. Idempotent.
func NormalizeColumn(name string) string {
	name = strings.ReplaceAll(name, ".", " ")
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "Sub Category" {
		name = "Sub-Category"
	}
	return name
}

func NormalizeColumns(header []string) []string {
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = NormalizeColumn(name)
	}
	return columns
}

func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	return index
}

// parseRecord builds a Record from one CSV row. Rows with a missing or
// unparseable Sales, Profit or Order Date are reported as not ok and dropped
// by the caller.
func parseRecord(columns []string, index map[string]int, row []string) (domain.Record, bool) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	sales, err := parseAmount(cell("Sales"))
	if err != nil {
		return domain.Record{}, false
	}
	profit, err := parseAmount(cell("Profit"))
	if err != nil {
		return domain.Record{}, false
	}
	orderDate, ok := parseDate(cell("Order Date"))
	if !ok {
		return domain.Record{}, false
	}

	var extra map[string]string
	for i, col := range columns {
		if _, ok := requiredSet[col]; ok || i >= len(row) {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[col] = row[i]
	}

	return domain.Record{
		Sales:        sales,
		Profit:       profit,
		OrderDate:    orderDate,
		Region:       cell("Region"),
		Category:     cell("Category"),
		SubCategory:  cell("Sub-Category"),
		CustomerName: cell("Customer Name"),
		Extra:        extra,
	}, true
}

func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(value)
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			// Date precision only; drop any time-of-day component.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
