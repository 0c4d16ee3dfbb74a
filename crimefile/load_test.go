package crimefile

import (
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

func TestLoad(t *testing.T) {
	teardown := redirectTracing(t, tracing.LevelDebug)
	defer teardown()
	//
	set, stats, err := Load("testdata/crimes_small.csv")
	if err != nil {
		t.Fatal(err.Error())
	}
	want := Stats{Read: 9, Inserted: 7, Duplicates: 1, Malformed: 1}
	if stats != want {
		t.Errorf("expected stats %+v, got %+v", want, stats)
	}
	if set.Len() != 7 {
		t.Errorf("expected 7 crimes in set, have %d", set.Len())
	}
	if err := set.Check(); err != nil {
		t.Error(err)
	}
	if set.Element(0).ID != 10224738 {
		t.Errorf("expected smallest ID first, got %d", set.Element(0).ID)
	}
	if battery := set.FindByCode("0486"); battery.Len() != 1 {
		t.Errorf("expected 1 domestic battery, got %d", battery.Len())
	}
	if simple := set.FindByDescription("SIMPLE"); simple.Len() != 3 {
		t.Errorf("expected 3 crimes described as SIMPLE, got %d", simple.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load("testdata/no-such-file.csv"); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, _, err := Load("testdata"); err == nil {
		t.Errorf("expected error for directory")
	}
}

func TestLoaderProgress(t *testing.T) {
	teardown := redirectTracing(t, tracing.LevelInfo)
	defer teardown()
	//
	l := NewLoader(1)
	defer l.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub, ok := l.Subscribe(ctx)
	if !ok {
		t.Fatalf("cannot subscribe to loader")
	}
	input := "ID,IUCR,Description\n1,0460,SIMPLE\n2,0486,DOMESTIC BATTERY SIMPLE\n"
	set, stats, err := l.LoadFrom(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 || stats.Inserted != 2 {
		t.Errorf("expected 2 crimes loaded, got %d", set.Len())
	}
	// messages are delivered on a best-effort basis; check the ones we got
	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				return
			}
			p, isProgress := msg.(Progress)
			if !isProgress {
				t.Errorf("unexpected message type %T", msg)
				continue
			}
			t.Logf("progress: %+v", p)
			if p.Stats.Read > 2 {
				t.Errorf("progress reports %d records read, only 2 present", p.Stats.Read)
			}
		default:
			return
		}
	}
}

func TestLoadFromNil(t *testing.T) {
	l := NewLoader(0)
	defer l.Close()
	if _, _, err := l.LoadFrom(nil); err == nil {
		t.Errorf("expected error for nil reader")
	}
}
