// Command crimes loads a CSV export of crime data and prints the crimes, or the
// result of a query, to stdout.
//
//	crimes [--code IUCR] [--descr TEXT] [--id ID] [--html] [--nocolor] FILE
//
// Tracing output is controlled by the environment variable CRIMES_TRACE,
// which may be set to one of "debug", "info" or "error".
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/npillmayer/crimeset"
	"github.com/npillmayer/crimeset/crimefile"
	"github.com/npillmayer/crimeset/report"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type args struct {
	File    string `arg:"positional,required" help:"CSV file with a header row"`
	Code    string `arg:"--code" help:"select crimes with this IUCR code"`
	Descr   string `arg:"--descr" help:"select crimes whose description contains this text"`
	ID      int64  `arg:"--id" help:"select the crime with this ID"`
	HTML    bool   `arg:"--html" help:"output an HTML table"`
	NoColor bool   `arg:"--nocolor" help:"do not highlight rows"`
	Trace   string `arg:"--trace,env:CRIMES_TRACE" default:"error" help:"trace level: debug, info or error"`
}

func (args) Description() string {
	return "crimes prints an ordered set of crime records"
}

func main() {
	if err := mainErr(); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func mainErr() error {
	var a args
	arg.MustParse(&a)
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(a.Trace))
	//
	set, err := load(a.File)
	if err != nil {
		return err
	}
	result := query(set, a)
	if a.HTML {
		return report.WriteHTML(result, os.Stdout)
	}
	con := report.NewConsole(nil)
	if a.NoColor {
		con.DisableColors()
	}
	if err := con.Print(result, nil); err != nil {
		return err
	}
	if result.IsEmpty() {
		fmt.Fprintln(os.Stderr, "no crimes found")
	} else {
		fmt.Fprintf(os.Stderr, "%d of %d crimes\n", result.Len(), set.Len())
	}
	return nil
}

func load(name string) (*crimeset.Set, error) {
	loader := crimefile.NewLoader(10000)
	defer loader.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if sub, ok := loader.Subscribe(ctx); ok {
		go func() {
			for msg := range sub {
				if p, ok := msg.(crimefile.Progress); ok {
					gtrace.CoreTracer.Infof("%s: %d records read", p.Name, p.Stats.Read)
				}
			}
		}()
	}
	set, stats, err := loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	if stats.Duplicates > 0 || stats.Malformed > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d duplicate and %d malformed records\n",
			stats.Duplicates, stats.Malformed)
	}
	return set, nil
}

// query narrows the set down by the selections given on the command line.
// Selections are combined.
func query(set *crimeset.Set, a args) *crimeset.Set {
	result := set
	if a.ID > 0 {
		it := result.FindID(a.ID)
		if it.Equal(result.End()) {
			result = crimeset.New()
		} else {
			end := it
			end.Next()
			result = crimeset.FromRange(it, end)
		}
	}
	if a.Code != "" {
		result = result.FindByCode(a.Code)
	}
	if a.Descr != "" {
		result = result.FindByDescription(a.Descr)
	}
	return result
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
