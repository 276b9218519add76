package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"google.golang.org/grpc"

	"nes6502/api"
)

// Machine defines the methods required from the system bus.
type Machine interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
	Reset()
	SetPaused(bool)
	RequestStep()
	Clock() int
	GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles uint64, halted bool)
	SetCPUState(a, x, y, sp, p byte, pc uint16)
	SetInterrupt(nmi, asserted bool)
	GetMemoryBlock(addr uint16, size int) []byte
}

// GRPCServer serves the Debugger service over a TCP listener.
type GRPCServer struct {
	api.UnimplementedDebuggerServer
	mu       sync.Mutex
	listener net.Listener
	server   *grpc.Server
	machine  Machine
}

// NewGRPCServer creates a Debugger server for the given machine.
func NewGRPCServer(m Machine) *GRPCServer {
	return &GRPCServer{machine: m}
}

// GetCpuState returns the CPU register values.
func (s *GRPCServer) GetCpuState(ctx context.Context, in *api.Empty) (*api.CpuState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, x, y, sp, p, pc, cycles, halted := s.machine.GetCPUState()
	return &api.CpuState{
		A:      uint32(a),
		X:      uint32(x),
		Y:      uint32(y),
		Sp:     uint32(sp),
		P:      uint32(p),
		Pc:     uint32(pc),
		Cycles: cycles,
		Halted: halted,
	}, nil
}

// SetCpuState overwrites the CPU register values.
func (s *GRPCServer) SetCpuState(ctx context.Context, in *api.CpuState) (*api.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.SetCPUState(
		byte(in.A), byte(in.X), byte(in.Y),
		byte(in.Sp), byte(in.P), uint16(in.Pc),
	)
	return &api.Empty{}, nil
}

// ReadMemory returns a block of memory starting at the requested address.
func (s *GRPCServer) ReadMemory(ctx context.Context, in *api.MemoryRequest) (*api.MemoryBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := int(in.Size)
	if size == 0 {
		size = 1
	}
	if size > 0x10000 {
		return nil, fmt.Errorf("block size %d exceeds the address space", size)
	}
	data := s.machine.GetMemoryBlock(uint16(in.Address), size)
	return &api.MemoryBlock{Data: data}, nil
}

// WriteMemory stores one byte into memory.
func (s *GRPCServer) WriteMemory(ctx context.Context, in *api.WriteRequest) (*api.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Write(uint16(in.Address), byte(in.Value))
	return &api.Empty{}, nil
}

// Step advances the machine by one instruction.
func (s *GRPCServer) Step(ctx context.Context, in *api.Empty) (*api.StepReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.RequestStep()
	cycles := s.machine.Clock()
	_, _, _, _, _, _, _, halted := s.machine.GetCPUState()
	return &api.StepReply{Cycles: uint32(cycles), Halted: halted}, nil
}

// Reset triggers a hardware reset.
func (s *GRPCServer) Reset(ctx context.Context, in *api.Empty) (*api.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.Reset()
	return &api.Empty{}, nil
}

// SetInterrupt drives the NMI or IRQ line.
func (s *GRPCServer) SetInterrupt(ctx context.Context, in *api.InterruptRequest) (*api.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.machine.SetInterrupt(in.Nmi, in.Asserted)
	return &api.Empty{}, nil
}

// Start begins listening for gRPC connections on the given port.
func (s *GRPCServer) Start(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = lis
	s.server = grpc.NewServer()
	api.RegisterDebuggerServer(s.server, s)

	log.Printf("debugger listening on :%d", port)

	go func() {
		if err := s.server.Serve(lis); err != nil {
			log.Printf("debugger server error: %v", err)
		}
	}()

	return nil
}

// Serve runs the Debugger service on an existing listener and blocks
// until the server stops.
func (s *GRPCServer) Serve(lis net.Listener) error {
	s.listener = lis
	s.server = grpc.NewServer()
	api.RegisterDebuggerServer(s.server, s)
	return s.server.Serve(lis)
}

// Stop shuts the server down gracefully.
func (s *GRPCServer) Stop() {
	if s.server != nil {
		s.server.GracefulStop()
	}
}
