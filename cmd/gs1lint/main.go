// Command gs1lint validates GS1 Application Identifier component
// values read from standard input, one per line, against a named
// linter from the registry.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	gs1lint "github.com/gs1dict/gs1lint"
)

var CmdLog = log.New(os.Stderr, filepath.Base(os.Args[0])+": ", 0)

var (
	linterFlag = flag.String("linter", "", "Name of the `linter` to run, e.g. gcppos1 or yymmdd.")
	gcpFlag    = flag.String("gcp-file", "", "Optional `path` to a two-column CSV of allocated GCP"+
		"\nprefixes (prefix,offline) used to answer gcppos1/gcppos2 lookups.")
	traceFlag = flag.Bool("trace", false, "Tag each diagnostic line with a random correlation ID.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *linterFlag == "" {
		CmdLog.Fatal("-linter is required")
	}

	var opts []gs1lint.Option
	if *gcpFlag != "" {
		hook, err := loadGCPHook(*gcpFlag)
		if err != nil {
			CmdLog.Fatal(err)
		}
		opts = append(opts, gs1lint.WithGCPHook(hook))
	}
	reg := gs1lint.NewRegistry(opts...)

	lint, ok := reg.Lookup(*linterFlag)
	if !ok {
		CmdLog.Fatalf("no such linter %q", *linterFlag)
	}

	scanner := bufio.NewScanner(os.Stdin)
	exitCode := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		kind, pos, length := lint(line)

		var prefix string
		if *traceFlag {
			prefix = uuid.NewString() + " "
		}

		if kind == gs1lint.Ok {
			fmt.Printf("%sok\t%s\n", prefix, line)
			continue
		}
		exitCode = 1
		fmt.Printf("%s%s\n", prefix, gs1lint.Locate(line, kind, pos, length))
	}
	if err := scanner.Err(); err != nil {
		CmdLog.Fatal(err)
	}
	os.Exit(exitCode)
}

// loadGCPHook reads a CSV file of "prefix,offline" rows into an
// in-memory GCPHook. offline is any non-empty value in the second
// column; data that begins with none of the listed prefixes is reported
// invalid rather than offline.
func loadGCPHook(path string) (gs1lint.GCPHook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type entry struct{ offline bool }
	known := make(map[string]entry)

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		if len(rec) == 0 {
			continue
		}
		var e entry
		if len(rec) > 1 && rec[1] != "" {
			e.offline = true
		}
		known[rec[0]] = e
	}

	return func(data []byte) (valid, offline bool) {
		for prefix, e := range known {
			if prefix != "" && len(data) >= len(prefix) && string(data[:len(prefix)]) == prefix {
				return true, e.offline
			}
		}
		return false, false
	}, nil
}
