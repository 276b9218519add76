// Package harness validates the CPU core against per-instruction trace
// fixtures. Each fixture record gives a full machine state before one
// instruction, the expected state after it, and the bus cycles the real
// chip performs in between.
package harness

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"nes6502/bus"
	"nes6502/cpu"
)

// Record is one trace case: a starting state, the expected final state,
// and the per-cycle bus activity. Only the cycle count is checked; the
// core retires whole instructions.
type Record struct {
	Name    string            `json:"name"`
	Initial Snapshot          `json:"initial"`
	Final   Snapshot          `json:"final"`
	Cycles  []json.RawMessage `json:"cycles"`
}

// Snapshot is the register file plus the RAM cells the case touches.
type Snapshot struct {
	PC  uint16   `json:"pc"`
	S   byte     `json:"s"`
	A   byte     `json:"a"`
	X   byte     `json:"x"`
	Y   byte     `json:"y"`
	P   byte     `json:"p"`
	RAM [][2]int `json:"ram"`
}

// Mismatch reports one field that diverged from the expected final state.
type Mismatch struct {
	Record string
	Field  string
	Want   uint64
	Got    uint64
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s = %02X, want %02X", m.Record, m.Field, m.Got, m.Want)
}

// Runner drives a CPU over a flat 64KiB memory, the layout trace
// fixtures are written against.
type Runner struct {
	cpu *cpu.CPU
	ram *bus.FlatRAM
}

func NewRunner() *Runner {
	r := &Runner{
		cpu: cpu.New(),
		ram: bus.NewFlatRAM(),
	}
	r.cpu.ConnectBus(r.ram)
	return r
}

// Run executes one record and returns every field that diverged. An
// empty slice means the case passed.
func (r *Runner) Run(rec *Record) []Mismatch {
	r.ram.Clear()
	for _, cell := range rec.Initial.RAM {
		r.ram.Write(uint16(cell[0]), byte(cell[1]))
	}
	opcode := r.ram.Read(rec.Initial.PC)
	c := r.cpu
	c.LoadState(cpu.State{
		PC: rec.Initial.PC,
		SP: rec.Initial.S,
		A:  rec.Initial.A,
		X:  rec.Initial.X,
		Y:  rec.Initial.Y,
		P:  rec.Initial.P,
	})

	cycles := c.Step()

	var bad []Mismatch
	check := func(field string, want, got uint64) {
		if want != got {
			bad = append(bad, Mismatch{rec.Name, field, want, got})
		}
	}
	check("pc", uint64(rec.Final.PC), uint64(c.PC))
	check("s", uint64(rec.Final.S), uint64(c.SP))
	check("a", uint64(rec.Final.A), uint64(c.A))
	check("x", uint64(rec.Final.X), uint64(c.X))
	check("y", uint64(rec.Final.Y), uint64(c.Y))
	check("p", uint64(rec.Final.P), uint64(c.P))
	for _, cell := range rec.Final.RAM {
		addr := uint16(cell[0])
		check(fmt.Sprintf("ram[%04X]", addr), uint64(byte(cell[1])), uint64(r.ram.Read(addr)))
	}
	if len(rec.Cycles) > 0 {
		check("cycles", uint64(len(rec.Cycles)), uint64(cycles))
	}

	// JAM cases constrain little else, but the processor must stop.
	wantHalt := cpu.Mnemonic(opcode) == "JAM"
	check("halted", boolBit(wantHalt), boolBit(c.Halted()))
	return bad
}

// Result aggregates a run over many records.
type Result struct {
	Passed     int
	Failed     int
	Mismatches []Mismatch
}

// RunFile loads a fixture file (a JSON array of records) and runs every
// record in it.
func (r *Runner) RunFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	res := &Result{}
	for i := range records {
		if bad := r.Run(&records[i]); len(bad) > 0 {
			res.Failed++
			res.Mismatches = append(res.Mismatches, bad...)
		} else {
			res.Passed++
		}
	}
	return res, nil
}

// RunDir runs every .json fixture under dir, one file per opcode in the
// usual corpus layout, and logs a line per file.
func (r *Runner) RunDir(dir string) (*Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixtures in %s", dir)
	}
	sort.Strings(paths)

	total := &Result{}
	for _, path := range paths {
		res, err := r.RunFile(path)
		if err != nil {
			return nil, err
		}
		total.Passed += res.Passed
		total.Failed += res.Failed
		total.Mismatches = append(total.Mismatches, res.Mismatches...)
		if res.Failed > 0 {
			log.Printf("%s: %d passed, %d FAILED", filepath.Base(path), res.Passed, res.Failed)
		} else {
			log.Printf("%s: %d passed", filepath.Base(path), res.Passed)
		}
	}
	return total, nil
}
