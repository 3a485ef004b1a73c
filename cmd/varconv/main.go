package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/SethHamilton/var/config"
	"github.com/SethHamilton/var/conformance"
	"github.com/SethHamilton/var/trace"
	"github.com/SethHamilton/var/types"
)

// errSuiteFailed is returned when a conformance run has failing cases
var errSuiteFailed = errors.New("conformance cases failed")

func main() {
	kindName := flag.String("kind", "string", "Kind to store -value as (int32, int64, float32, float64, string, bool)")
	value := flag.String("value", "", "Literal to coerce through every accessor")
	suiteDir := flag.String("suite", "", "Run the YAML conformance suites in this directory")
	configPath := flag.String("config", "", "Dump the scalars of a .yaml/.yml/.toml config file")

	// Trace flags
	traceEnabled := flag.Bool("trace", false, "Enable tracing to stderr")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob on case names or config keys, e.g. 'server.*')")

	flag.Parse()

	// Initialize tracer
	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	switch {
	case *suiteDir != "":
		if err := runSuites(os.Stdout, *suiteDir); err != nil {
			if errors.Is(err, errSuiteFailed) {
				os.Exit(1)
			}
			log.Fatalf("Failed to run suites: %v", err)
		}
	case *configPath != "":
		if err := dumpConfig(os.Stdout, *configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	default:
		if err := coerce(os.Stdout, *kindName, *value); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// coerce stores literal as kind (parsing it through the string accessors)
// and prints the result of every accessor
func coerce(w io.Writer, kindName, literal string) error {
	kind, ok := types.ParseKind(kindName)
	if !ok {
		return fmt.Errorf("unknown kind: %q", kindName)
	}

	src := types.NewString(literal)
	var v types.Variant
	switch kind {
	case types.KindInt32:
		v.SetInt32(src.Int32())
	case types.KindInt64:
		v.SetInt64(src.Int64())
	case types.KindFloat32:
		v.SetFloat32(src.Float32())
	case types.KindFloat64:
		v.SetFloat64(src.Float64())
	case types.KindString:
		v.Set(src)
	case types.KindBool:
		v.SetBool(src.Bool())
	}

	fmt.Fprintf(w, "kind:    %s\n", v.Kind())
	fmt.Fprintf(w, "int32:   %d\n", v.Int32())
	fmt.Fprintf(w, "int64:   %d\n", v.Int64())
	fmt.Fprintf(w, "float32: %s\n", types.NewFloat32(v.Float32()))
	fmt.Fprintf(w, "float64: %s\n", types.NewFloat64(v.Float64()))
	fmt.Fprintf(w, "bool:    %t\n", v.Bool())
	fmt.Fprintf(w, "string:  %q\n", v.String())
	return nil
}

// runSuites runs every suite under dir and prints failures and a summary
func runSuites(w io.Writer, dir string) error {
	tests, err := conformance.LoadAllTests(dir)
	if err != nil {
		return err
	}

	results := conformance.NewRunner().RunAll(tests)
	for _, r := range results {
		if !r.Skipped && !r.Passed {
			fmt.Fprintf(w, "FAIL %s: %s: %v\n", r.Test.File, r.Test.Test.Name, r.Error)
		}
	}

	stats := conformance.ComputeStats(results)
	fmt.Fprintln(w, conformance.FormatStats(stats))
	if stats.Failed > 0 {
		return errSuiteFailed
	}
	return nil
}

// dumpConfig prints every scalar of a config file as key (kind) = value
func dumpConfig(w io.Writer, path string) error {
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	for _, key := range c.Keys() {
		v, _ := c.Get(key)
		fmt.Fprintf(w, "%s (%s) = ", key, v.Kind())
		if _, err := v.WriteTo(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	for _, key := range c.Skipped() {
		fmt.Fprintf(w, "# skipped %s\n", key)
	}
	return nil
}
