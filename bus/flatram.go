package bus

// FlatRAM is an unmirrored 64KiB memory. Trace fixtures address raw
// memory directly, so the harness attaches the CPU to one of these
// instead of the console map.
type FlatRAM struct {
	mem [65536]byte
}

func NewFlatRAM() *FlatRAM {
	return &FlatRAM{}
}

func (r *FlatRAM) Read(addr uint16) byte {
	return r.mem[addr]
}

func (r *FlatRAM) Write(addr uint16, data byte) {
	r.mem[addr] = data
}

// Clear zeroes the whole array.
func (r *FlatRAM) Clear() {
	r.mem = [65536]byte{}
}
