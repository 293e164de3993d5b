package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command, echoes its combined output and returns its exit code.
func run(name string, args ...string) int {
	out, err := exec.Command(name, args...).CombinedOutput()
	_, _ = os.Stdout.Write(out)
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func main() {
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./movegen", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Whole-program throughput through the batch pipeline.
	fmt.Println("\nGeneration throughput:")
	fmt.Println("LABEL \t\tPositions \tMoves \t\tTime \tRate")
	run("go", "run", "./cmd/movegen", "-q", "-repeat", "10000", "-workers", "1", "-label", "Initial")
	run("go", "run", "./cmd/movegen", "-q", "-repeat", "10000", "-label", "Initial-par")
	_ = run("go", "run", "./cmd/movegen", "-q", "-fen",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"-repeat", "10000", "-label", "Kiwipete")
	os.Exit(0)
}
