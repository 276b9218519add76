package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"nes6502/api"
	"nes6502/cpu"
)

func main() {
	addr := flag.String("connect", "localhost:50051", "debugger service address")
	flag.Parse()

	fmt.Println("NDB - nes6502 debugger")
	fmt.Printf("Connecting to %s...\n", *addr)

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := api.NewDebuggerClient(conn)
	fmt.Println("Connected. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("(ndb) ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]

		switch {
		case cmd == "help" || cmd == "h":
			fmt.Println("Commands:")
			fmt.Println("  step, s          - Step one instruction")
			fmt.Println("  regs, r          - Print CPU registers")
			fmt.Println("  x <addr>         - Examine memory (x 0200 or x/16 0200)")
			fmt.Println("  w <addr> <val>   - Write one byte")
			fmt.Println("  pc <addr>        - Set the program counter")
			fmt.Println("  nmi / irq [0]    - Assert (or deassert) an interrupt line")
			fmt.Println("  reset            - Hardware reset")
			fmt.Println("  quit, q          - Exit debugger")
		case cmd == "quit" || cmd == "q" || cmd == "exit":
			return
		case cmd == "step" || cmd == "s":
			reply, err := client.Step(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if reply.Halted {
				fmt.Println("Processor is jammed; only reset recovers.")
			}
			printRegs(client)
		case cmd == "regs" || cmd == "r":
			printRegs(client)
		case cmd == "reset":
			if _, err := client.Reset(context.Background(), &api.Empty{}); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			printRegs(client)
		case cmd == "nmi" || cmd == "irq":
			asserted := true
			if len(parts) > 1 && parts[1] == "0" {
				asserted = false
			}
			_, err := client.SetInterrupt(context.Background(), &api.InterruptRequest{
				Nmi:      cmd == "nmi",
				Asserted: asserted,
			})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "pc":
			if len(parts) < 2 {
				fmt.Println("Usage: pc <addr>")
				continue
			}
			pc, err := parseHex(parts[1])
			if err != nil {
				fmt.Printf("Invalid address: %s\n", parts[1])
				continue
			}
			state, err := client.GetCpuState(context.Background(), &api.Empty{})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			state.Pc = uint32(pc)
			if _, err := client.SetCpuState(context.Background(), state); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "w":
			if len(parts) < 3 {
				fmt.Println("Usage: w <addr> <val>")
				continue
			}
			addr, err := parseHex(parts[1])
			if err != nil {
				fmt.Printf("Invalid address: %s\n", parts[1])
				continue
			}
			val, err := parseHex(parts[2])
			if err != nil || val > 0xFF {
				fmt.Printf("Invalid value: %s\n", parts[2])
				continue
			}
			_, err = client.WriteMemory(context.Background(), &api.WriteRequest{
				Address: uint32(addr),
				Value:   uint32(val),
			})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case cmd == "x" || strings.HasPrefix(cmd, "x/"):
			count := 1
			if strings.HasPrefix(cmd, "x/") {
				n, err := strconv.ParseInt(strings.TrimPrefix(cmd, "x/"), 10, 32)
				if err == nil && n > 0 {
					count = int(n)
				}
			}
			if len(parts) < 2 {
				fmt.Println("Usage: x <addr> or x/<count> <addr>")
				continue
			}
			addr, err := parseHex(parts[1])
			if err != nil {
				fmt.Printf("Invalid address: %s\n", parts[1])
				continue
			}
			res, err := client.ReadMemory(context.Background(), &api.MemoryRequest{
				Address: uint32(addr),
				Size:    uint32(count),
			})
			if err != nil {
				fmt.Printf("Error reading memory: %v\n", err)
				continue
			}
			printHexDump(uint16(addr), res.Data)
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func parseHex(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseUint(s, 16, 32)
}

func printRegs(client api.DebuggerClient) {
	state, err := client.GetCpuState(context.Background(), &api.Empty{})
	if err != nil {
		fmt.Printf("Error getting CPU state: %v\n", err)
		return
	}
	fmt.Printf("A: %02X  X: %02X  Y: %02X  SP: %02X  PC: %04X  P: %08b  Cycles: %d\n",
		state.A, state.X, state.Y, state.Sp, state.Pc, state.P, state.Cycles)

	res, err := client.ReadMemory(context.Background(), &api.MemoryRequest{Address: state.Pc, Size: 3})
	if err != nil || len(res.Data) == 0 {
		return
	}
	op := res.Data[0]
	size := 1 + cpu.OperandBytes(cpu.ModeOf(op))
	fmt.Printf("  -> %04X: % X  %s\n", state.Pc, res.Data[:size], cpu.Mnemonic(op))
}

func printHexDump(startAddr uint16, data []byte) {
	for i := 0; i < len(data); i += 16 {
		fmt.Printf("%04X:", startAddr+uint16(i))
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		for j := i; j < end; j++ {
			fmt.Printf(" %02X", data[j])
		}
		fmt.Println()
	}
}
