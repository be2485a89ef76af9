package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// csvHeader names the columns of one metrics CSV record.
var csvHeader = []string{
	"variables", "clauses", "backtracking", "decimation_fraction",
	"sp_max_it", "sp_epsilon", "ws_noise", "ws_max_tries", "ws_max_flip_c",
	"seed", "result", "total_time", "sp_total_it", "sid_total_it", "ws_total_flips",
}

// Row is one run's metrics CSV record.
type Row struct {
	Variables          int
	Clauses            int
	Backtracking       bool
	DecimationFraction float64
	SPMaxIterations    int
	SPEpsilon          float64
	WSNoise            float64
	WSMaxTries         int
	WSMaxFlipCoef      int
	Seed               int64
	Result             string
	TotalTime          time.Duration
	SPTotalIterations  int
	SIDTotalIterations int
	WSTotalFlips       int
}

func (r Row) strings() []string {
	return []string{
		strconv.Itoa(r.Variables),
		strconv.Itoa(r.Clauses),
		strconv.FormatBool(r.Backtracking),
		strconv.FormatFloat(r.DecimationFraction, 'g', -1, 64),
		strconv.Itoa(r.SPMaxIterations),
		strconv.FormatFloat(r.SPEpsilon, 'g', -1, 64),
		strconv.FormatFloat(r.WSNoise, 'g', -1, 64),
		strconv.Itoa(r.WSMaxTries),
		strconv.Itoa(r.WSMaxFlipCoef),
		strconv.FormatInt(r.Seed, 10),
		r.Result,
		r.TotalTime.String(),
		strconv.Itoa(r.SPTotalIterations),
		strconv.Itoa(r.SIDTotalIterations),
		strconv.Itoa(r.WSTotalFlips),
	}
}

// AppendRow appends one Row to the CSV file at path, writing csvHeader
// first if the file is being created.
func AppendRow(path string, row Row) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("metrics: opening %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("metrics: writing header: %w", err)
		}
	}
	if err := w.Write(row.strings()); err != nil {
		return fmt.Errorf("metrics: writing row: %w", err)
	}
	w.Flush()
	return w.Error()
}
