package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// readPositions reads one position per line. Blank lines and lines starting
// with '#' are skipped. EPD lines keep only their four position fields, and a
// trailing training label such as "[0.5]" is dropped.
func readPositions(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '['); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, normalizeEPD(line))
	}
	return out, sc.Err()
}

// normalizeEPD drops EPD operations ("bm Nf3; id ...") after the position
// fields, keeping the move counters when both are present.
func normalizeEPD(line string) string {
	fields := strings.Fields(line)
	if len(fields) <= 4 {
		return line
	}
	keep := 4
	if len(fields) >= 6 && isCounter(fields[4]) && isCounter(fields[5]) {
		keep = 6
	}
	return strings.Join(fields[:keep], " ")
}

func isCounter(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
