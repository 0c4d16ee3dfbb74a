package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/crimeset"
	"github.com/npillmayer/crimeset/crime"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
)

func sampleSet(t *testing.T) *crimeset.Set {
	t.Helper()
	s := crimeset.New()
	for _, c := range []crime.Crime{
		{ID: 20, IUCR: "0486", PrimaryType: "BATTERY", Description: "DOMESTIC BATTERY SIMPLE", Domestic: true},
		{ID: 3, IUCR: "0460", PrimaryType: "BATTERY", Description: "SIMPLE"},
		{ID: 100, IUCR: "2023", PrimaryType: "NARCOTICS", Description: "POSS: HEROIN <BRN/TAN>", Arrest: true},
	} {
		if !s.Insert(c) {
			t.Fatalf("setup: cannot insert crime %d", c.ID)
		}
	}
	return s
}

func TestConsoleOutput(t *testing.T) {
	teardown := redirectTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	con := NewConsole(nil)
	con.DisableColors()
	var buf bytes.Buffer
	if err := con.Output(sampleSet(t), &buf, &Config{LineWidth: 80}); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  3  0460") {
		t.Errorf("first line should be crime 3, right aligned: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "100  2023") {
		t.Errorf("last line should be crime 100: %q", lines[2])
	}
	if !strings.HasSuffix(lines[1], "DOMESTIC BATTERY SIMPLE") {
		t.Errorf("description missing in %q", lines[1])
	}
}

func TestConsoleTruncatesDescriptions(t *testing.T) {
	con := NewConsole(nil)
	con.DisableColors()
	var buf bytes.Buffer
	// fixed columns take 3+4+16+9+8 = 40 ens, leaving the minimum for descriptions
	if err := con.Output(sampleSet(t), &buf, &Config{LineWidth: 30}); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if strings.Contains(line, "DOMESTIC BATTERY SIMPLE") {
			t.Errorf("long description should have been truncated: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "DOMESTI…") {
		t.Errorf("expected truncated description with ellipsis, got\n%s", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	setup()
	ctx := uax11.LatinContext
	if s := truncate("SIMPLE", 10, ctx); s != "SIMPLE" {
		t.Errorf("short text should not be truncated, got %q", s)
	}
	if s := truncate("SIMPLE", 4, ctx); s != "SIM…" {
		t.Errorf("expected 'SIM…', got %q", s)
	}
	if s := truncate("SIMPLE", 0, ctx); s != "" {
		t.Errorf("expected empty string for zero width, got %q", s)
	}
	if s := pad("AB", 4, ctx); s != "AB  " {
		t.Errorf("expected padding to 4 ens, got %q", s)
	}
}

func TestConsoleNilSet(t *testing.T) {
	if err := NewConsole(nil).Output(nil, &bytes.Buffer{}, nil); err != crimeset.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(sampleSet(t), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, `<table class="crimes"><thead><tr><th>ID</th>`) {
		t.Errorf("unexpected table head: %s", out)
	}
	if strings.Count(out, "<tr") != 4 {
		t.Errorf("expected header row and 3 data rows")
	}
	if !strings.Contains(out, `<tr class="arrest"><td>100</td>`) {
		t.Errorf("arrest row not marked")
	}
	if !strings.Contains(out, `<tr class="domestic"><td>20</td>`) {
		t.Errorf("domestic row not marked")
	}
	if !strings.Contains(out, "POSS: HEROIN &lt;BRN/TAN&gt;") {
		t.Errorf("description text not escaped")
	}
	if strings.Index(out, "<td>3</td>") > strings.Index(out, "<td>20</td>") {
		t.Errorf("rows not in ascending ID order")
	}
}
