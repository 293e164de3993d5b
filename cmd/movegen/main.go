package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-movegen/batch"
	"chess-movegen/diagram"
	"chess-movegen/movegen"
)

func parseKinds(list string) ([]movegen.PieceKind, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var kinds []movegen.PieceKind
	for _, name := range strings.Split(list, ",") {
		k, err := movegen.ParsePieceKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func main() {
	fen := flag.String("fen", movegen.FENStartPos, "FEN string (defaults to initial position)")
	file := flag.String("file", "", "Read FEN/EPD positions from file, one per line ('-' for stdin)")
	side := flag.String("side", "", "Generate for 'w' or 'b' instead of the side to move")
	kindList := flag.String("kinds", "", "Comma-separated piece kinds to generate (default all)")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
	verify := flag.Bool("verify", false, "Cross-check against reference move generators")
	svgPath := flag.String("svg", "", "Write an SVG diagram of the first position and its targets")
	verbose := flag.Bool("v", false, "Print each board")
	quiet := flag.Bool("q", false, "Only print the summary line")
	repeat := flag.Int("repeat", 1, "Repeat generation N times and report aggregate timing")
	label := flag.String("label", "", "Optional label prefix for the summary line")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	logLevel := flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-loglevel: %v\n", err)
		os.Exit(2)
	}
	log.SetLevel(lvl)

	kinds, err := parseKinds(*kindList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "-kinds: %v\n", err)
		os.Exit(2)
	}
	if *repeat < 1 {
		fmt.Fprintln(os.Stderr, "-repeat must be > 0")
		os.Exit(2)
	}

	positions := []string{*fen}
	if *file != "" {
		positions, err = loadPositions(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", *file, err)
			os.Exit(2)
		}
	}

	opts := []batch.Option{batch.WithWorkers(*workers), batch.WithVerify(*verify)}
	if kinds != nil {
		opts = append(opts, batch.WithKinds(kinds...))
	}
	switch *side {
	case "":
	case "w":
		opts = append(opts, batch.WithSide(movegen.White))
	case "b":
		opts = append(opts, batch.WithSide(movegen.Black))
	default:
		fmt.Fprintln(os.Stderr, "-side must be 'w' or 'b'")
		os.Exit(2)
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var results []batch.Result
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		results, err = batch.Run(ctx, positions, opts...)
		if err != nil {
			log.WithError(err).Error("generation interrupted")
			break
		}
	}
	elapsed := time.Since(start)

	if !*quiet {
		for _, r := range results {
			printResult(r, *verbose)
		}
	}

	s := batch.Summarize(results)
	total := 0
	for _, n := range s.ByKind {
		total += n
	}
	pps := float64(len(positions) * *repeat) / elapsed.Seconds()
	fmt.Printf("%s \t%d positions \t%d moves \t%s \t%.0f pos/s\n", *label, s.Positions, total, elapsed, pps)

	if *svgPath != "" && len(results) > 0 {
		if err := writeDiagram(*svgPath, results[0], kinds); err != nil {
			log.WithError(err).WithField("path", *svgPath).Error("writing diagram")
		}
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}

	if s.Failed > 0 || s.Mismatched > 0 {
		log.WithFields(log.Fields{"failed": s.Failed, "mismatched": s.Mismatched}).Warn("some positions did not pass")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func loadPositions(path string) ([]string, error) {
	if path == "-" {
		return readPositions(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readPositions(f)
}

func printResult(r batch.Result, verbose bool) {
	fmt.Printf("position %d: %s (%v)\n", r.Index+1, r.FEN, r.Side)
	if r.Err != nil && r.Moves == nil {
		fmt.Printf("  error: %v\n", r.Err)
		return
	}
	if verbose {
		if b, err := movegen.ParseFEN(r.FEN); err == nil {
			fmt.Print(b.String())
		}
	}
	kinds := maps.Keys(r.Moves)
	slices.Sort(kinds)
	for _, k := range kinds {
		ms := r.Moves[k]
		names := make([]string, len(ms))
		for i, m := range ms {
			names[i] = m.String()
		}
		fmt.Printf("  %-6s %3d: %s\n", k, len(ms), strings.Join(names, " "))
	}
	fmt.Printf("  total %d\n", r.Count())
	switch {
	case r.Err != nil:
		fmt.Printf("  verify: %v\n", r.Err)
	case r.Report != nil:
		fmt.Println("  verify: ok")
	}
}

func writeDiagram(path string, r batch.Result, kinds []movegen.PieceKind) error {
	b, err := movegen.ParseFEN(r.FEN)
	if err != nil {
		return err
	}
	if kinds == nil {
		kinds = movegen.PieceKinds[:]
	}
	var targets movegen.Bitboard
	for _, k := range kinds {
		targets |= movegen.Targets(b, r.Side, k)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.Write(f, b, targets, diagram.WithTitle(r.FEN)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
