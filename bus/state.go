package bus

import (
	"encoding/gob"
	"os"

	"nes6502/cpu"
)

type State struct {
	Ram          [2048]byte
	Ext          [0x10000 - 0x2000]byte
	SystemClocks uint64
	CPU          cpu.State
}

// SaveState saves the entire machine state to a file.
func (b *Bus) SaveState(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	s := State{
		Ram:          b.ram,
		Ext:          b.ext,
		SystemClocks: b.SystemClocks,
		CPU:          b.CPU.SaveState(),
	}
	return gob.NewEncoder(file).Encode(s)
}

// LoadState loads the machine state from a file.
func (b *Bus) LoadState(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var s State
	if err := gob.NewDecoder(file).Decode(&s); err != nil {
		return err
	}

	b.ram = s.Ram
	b.ext = s.Ext
	b.SystemClocks = s.SystemClocks
	b.CPU.LoadState(s.CPU)
	return nil
}
