package harness

import (
	"testing"
)

func TestRunFixtureDir(t *testing.T) {
	r := NewRunner()
	res, err := r.RunDir("testdata")
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}
	if res.Failed != 0 {
		for _, m := range res.Mismatches {
			t.Error(m.String())
		}
		t.Fatalf("%d fixture cases failed", res.Failed)
	}
	if res.Passed != 3 {
		t.Errorf("passed = %d, want 3", res.Passed)
	}
}

func TestMismatchReporting(t *testing.T) {
	rec := &Record{
		Name: "a9 42 bad",
		Initial: Snapshot{
			PC: 0x8000, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0xA9}, {0x8001, 0x42}},
		},
		Final: Snapshot{
			PC: 0x8002, S: 0xFD, A: 0x43, P: 0x24,
			RAM: [][2]int{{0x8000, 0xA9}, {0x8001, 0x42}},
		},
	}

	r := NewRunner()
	bad := r.Run(rec)
	if len(bad) != 1 {
		t.Fatalf("got %d mismatches, want 1: %v", len(bad), bad)
	}
	m := bad[0]
	if m.Field != "a" || m.Want != 0x43 || m.Got != 0x42 {
		t.Errorf("unexpected mismatch: %+v", m)
	}
	if m.Record != "a9 42 bad" {
		t.Errorf("mismatch record = %q", m.Record)
	}
}

func TestJamRecordChecksHalt(t *testing.T) {
	// KIL cases constrain only the registers the corpus names, but the
	// runner must still confirm the processor stopped.
	rec := &Record{
		Name: "02 jam",
		Initial: Snapshot{
			PC: 0x8000, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0x02}},
		},
		Final: Snapshot{
			PC: 0x8000, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0x02}},
		},
	}

	r := NewRunner()
	if bad := r.Run(rec); len(bad) != 0 {
		t.Fatalf("jam case failed: %v", bad)
	}
	if !r.cpu.Halted() {
		t.Error("runner CPU should be halted after a jam case")
	}

	// The next case reloads full state, so the halt must not leak into it
	// and a running processor must not be reported as halted.
	next := &Record{
		Name: "ea after jam",
		Initial: Snapshot{
			PC: 0x8000, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0xEA}},
		},
		Final: Snapshot{
			PC: 0x8001, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0xEA}},
		},
	}
	if bad := r.Run(next); len(bad) != 0 {
		t.Errorf("halt leaked into the following case: %v", bad)
	}
}

func TestRunnerIsolatesCases(t *testing.T) {
	// RAM left over from one case must not leak into the next.
	rec := &Record{
		Name: "isolation",
		Initial: Snapshot{
			PC: 0x8000, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0xEA}},
		},
		Final: Snapshot{
			PC: 0x8001, S: 0xFD, P: 0x24,
			RAM: [][2]int{{0x8000, 0xEA}, {0x1234, 0x00}},
		},
	}

	r := NewRunner()
	r.ram.Write(0x1234, 0xFF)
	if bad := r.Run(rec); len(bad) != 0 {
		t.Errorf("stale memory leaked into the run: %v", bad)
	}
}

func TestRunDirMissing(t *testing.T) {
	r := NewRunner()
	if _, err := r.RunDir(t.TempDir()); err == nil {
		t.Error("RunDir on an empty directory should fail")
	}
}
