package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sidsat/core"
	"github.com/katalvlaran/sidsat/dimacs"
	"github.com/katalvlaran/sidsat/metrics"
	"github.com/katalvlaran/sidsat/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a DIMACS CNF file with Survey-Inspired Decimation",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringP("cnf-file", "f", "", "input DIMACS CNF path (required)")
	f.Float64P("decimation-fraction", "d", 0.0, "SID decimation fraction f; 0 fixes one variable at a time")
	f.IntP("sp-iterations", "i", 1000, "Survey Propagation iteration cap")
	f.Float64P("sp-epsilon", "e", 0.001, "Survey Propagation convergence threshold")
	f.Float64P("ws-noise", "n", 0.57, "WalkSAT noise parameter")
	f.IntP("ws-tries", "t", 100, "WalkSAT maximum tries")
	f.IntP("ws-flips-coeficient", "c", 100, "WalkSAT maxFlips = coefficient * N")
	f.Int64P("seed", "s", 0, "RNG seed (0 = nondeterministic)")
	f.String("metrics-csv", "", "append one metrics row to this CSV path (optional)")
	f.String("metrics-addr", "", "expose Prometheus metrics on this address while solving, e.g. :9090 (optional)")
	_ = solveCmd.MarkFlagRequired("cnf-file")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	cnfPath, _ := f.GetString("cnf-file")
	fraction, _ := f.GetFloat64("decimation-fraction")
	spIterations, _ := f.GetInt("sp-iterations")
	spEpsilon, _ := f.GetFloat64("sp-epsilon")
	wsNoise, _ := f.GetFloat64("ws-noise")
	wsTries, _ := f.GetInt("ws-tries")
	wsFlipsCoef, _ := f.GetInt("ws-flips-coeficient")
	seed, _ := f.GetInt64("seed")
	metricsCSV, _ := f.GetString("metrics-csv")
	metricsAddr, _ := f.GetString("metrics-addr")

	logger := newLogger()

	if metricsAddr != "" {
		metrics.Register()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn().Err(err).Msg("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	file, err := os.Open(cnfPath)
	if err != nil {
		return fmt.Errorf("sidsat: opening %s: %w", cnfPath, err)
	}
	defer file.Close()

	numVars, clauses, err := dimacs.Parse(file)
	if err != nil {
		return fmt.Errorf("sidsat: %w", err)
	}

	g, err := core.NewFactorGraph(numVars, clauses)
	if err != nil {
		return fmt.Errorf("sidsat: %w", err)
	}

	start := time.Now()
	res := solver.SID(g, logger,
		solver.WithDecimationFraction(fraction),
		solver.WithSPMaxIterations(spIterations),
		solver.WithSPEpsilon(spEpsilon),
		solver.WithWalksatNoise(wsNoise),
		solver.WithWalksatTries(wsTries),
		solver.WithWalksatFlipsCoef(wsFlipsCoef),
		solver.WithSeed(seed),
	)
	elapsed := time.Since(start)

	if metricsAddr != "" {
		// solver.Stats carries no count of decimation fixes, so the
		// decimation counter is not advanced here.
		metrics.ObserveResult(res.Stats.SPTotalIterations, res.Stats.SIDTotalIterations, res.Stats.WalksatTotalFlips, 0)
	}
	if metricsCSV != "" {
		row := metrics.Row{
			Variables: numVars, Clauses: len(clauses), Backtracking: false,
			DecimationFraction: fraction, SPMaxIterations: spIterations, SPEpsilon: spEpsilon,
			WSNoise: wsNoise, WSMaxTries: wsTries, WSMaxFlipCoef: wsFlipsCoef, Seed: seed,
			Result: res.Outcome.String(), TotalTime: elapsed,
			SPTotalIterations: res.Stats.SPTotalIterations, SIDTotalIterations: res.Stats.SIDTotalIterations,
			WSTotalFlips: res.Stats.WalksatTotalFlips,
		}
		if err := metrics.AppendRow(metricsCSV, row); err != nil {
			logger.Warn().Err(err).Msg("failed to append metrics row")
		}
	}

	return reportOutcome(cmd.OutOrStdout(), g, res)
}

func reportOutcome(w io.Writer, g *core.Graph, res solver.Result) error {
	switch res.Outcome {
	case solver.Sat, solver.SatViaWalksat:
		fmt.Fprintln(w, "SAT")
		return g.StoreAssignment(w)
	case solver.Contradiction:
		fmt.Fprintln(w, "UNSAT")
		return nil
	case solver.Unconverged:
		fmt.Fprintln(w, "UNCONVERGED")
		return nil
	default: // solver.Indeterminate
		fmt.Fprintln(w, "INDETERMINATE")
		return nil
	}
}

func newLogger() zerolog.Logger {
	var output io.Writer = os.Stderr
	if logFormat != "json" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	switch logLevel {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
