// Package series reads price samples from files and thins them to the
// point count a chart should show.
package series

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/buffos/go-sparkline/sparkline"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	ErrNoSamples         = errors.New("no samples found")
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// FormatFromPath guesses the input format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	}
	return FormatAuto
}

// Load decodes samples from r. FormatAuto sniffs the first non-blank byte:
// '{' or '[' means JSON, anything else CSV.
func Load(r io.Reader, format Format) ([]sparkline.Sample, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	if format == FormatAuto {
		format = sniff(data)
	}

	var samples []sparkline.Sample
	switch format {
	case FormatJSON:
		samples, err = decodeJSON(data)
	case FormatCSV:
		samples, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	return samples, nil
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatCSV
}

// jsonSample accepts both [index, value] pairs and {"index":..,"value":..}
// objects. Objects may leave the index out.
type jsonSample struct {
	sparkline.Sample
	indexed bool
}

func (s *jsonSample) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("sample pair must have 2 elements, got %d", len(pair))
		}
		*s = jsonSample{Sample: sparkline.Sample{Index: pair[0], Value: pair[1]}, indexed: true}
		return nil
	}
	var obj struct {
		Index *float64 `json:"index"`
		Time  *float64 `json:"t"`
		Value *float64 `json:"value"`
		Price *float64 `json:"price"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("sample must be a [index, value] pair or an object: %w", err)
	}
	value := obj.Value
	if value == nil {
		value = obj.Price
	}
	if value == nil {
		return errors.New(`sample object has no "value" or "price"`)
	}
	index := obj.Index
	if index == nil {
		index = obj.Time
	}
	*s = jsonSample{Sample: sparkline.Sample{Value: *value}}
	if index != nil {
		s.Index = *index
		s.indexed = true
	}
	return nil
}

// seriesFile is the object form: {"prices": [...]} as market-chart APIs
// return it, or {"entries": [...]}.
type seriesFile struct {
	Prices  []jsonSample `json:"prices"`
	Entries []jsonSample `json:"entries"`
}

func decodeJSON(data []byte) ([]sparkline.Sample, error) {
	// Attempt parsing as a root object first
	var file seriesFile
	err := json.Unmarshal(data, &file)
	if err == nil {
		entries := file.Prices
		if len(entries) == 0 {
			entries = file.Entries
		}
		return fromJSON(entries), nil
	}

	// Fallback: Try parsing directly as an array [...]
	var direct []jsonSample
	if errDirect := json.Unmarshal(data, &direct); errDirect != nil {
		// Report the object error when the input looked like an object.
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			return nil, fmt.Errorf("parsing JSON samples: %w", err)
		}
		return nil, fmt.Errorf("parsing JSON samples: %w", errDirect)
	}
	return fromJSON(direct), nil
}

// fromJSON fills in missing indexes with the sample position.
func fromJSON(in []jsonSample) []sparkline.Sample {
	out := make([]sparkline.Sample, len(in))
	for i, s := range in {
		out[i] = s.Sample
		if !s.indexed {
			out[i].Index = float64(i)
		}
	}
	return out
}

// decodeCSV reads "index,value" rows, or bare "value" rows that get their
// position as index. A non-numeric first row is treated as a header.
func decodeCSV(data []byte) ([]sparkline.Sample, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV samples: %w", err)
	}

	samples := make([]sparkline.Sample, 0, len(records))
	for row, rec := range records {
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		s, err := parseRecord(rec, len(samples))
		if err != nil {
			if row == 0 {
				continue // header
			}
			return nil, fmt.Errorf("CSV row %d: %w", row+1, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func parseRecord(rec []string, position int) (sparkline.Sample, error) {
	switch len(rec) {
	case 1:
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return sparkline.Sample{}, fmt.Errorf("value: %w", err)
		}
		return sparkline.Sample{Index: float64(position), Value: v}, nil
	default:
		idx, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return sparkline.Sample{}, fmt.Errorf("index: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return sparkline.Sample{}, fmt.Errorf("value: %w", err)
		}
		return sparkline.Sample{Index: idx, Value: v}, nil
	}
}
