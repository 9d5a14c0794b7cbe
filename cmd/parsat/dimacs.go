package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parsat-project/parsat/lit"
)

type cnf struct {
	nVars   int
	clauses [][]lit.Lit
}

func pathToReader(p string) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(p, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{gz, f}, nil
	}
	return f, nil
}

// readDimacs parses a DIMACS CNF stream: "c" comment lines, one "p cnf
// nvars nclauses" header, and clause lines of whitespace-separated
// literals terminated by 0. DIMACS parsing sits outside the
// coordination core proper (spec.md §1) and gets no more than this
// minimal reader needs.
func readDimacs(r io.Reader) (*cnf, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	f := &cnf{}
	var cur []lit.Lit
	sawHeader := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) < 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("malformed header %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("malformed header %q: %w", line, err)
			}
			f.nVars = n
			sawHeader = true
			continue
		}
		for _, tok := range strings.Fields(line) {
			x, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("malformed literal %q: %w", tok, err)
			}
			if x == 0 {
				f.clauses = append(f.clauses, cur)
				cur = nil
				continue
			}
			cur = append(cur, lit.Dimacs2Lit(x))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("missing 'p cnf' header")
	}
	if len(cur) > 0 {
		f.clauses = append(f.clauses, cur)
	}
	return f, nil
}
