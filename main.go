package main

import (
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"nes6502/bus"
	"nes6502/harness"
	"nes6502/remote"
	"nes6502/server"
)

func main() {
	traceDir := flag.String("trace", "", "run trace fixtures from this directory and exit")
	snapshot := flag.String("load", "", "restore a machine snapshot before starting")
	grpcPort := flag.Int("port", 50051, "debugger service port")
	tcpAddr := flag.String("remote-tcp", "", "serve the remote debug protocol on this TCP address")
	wsAddr := flag.String("remote-ws", "", "serve the remote debug protocol over WebSocket on this address")
	paused := flag.Bool("paused", false, "start with the clock paused")
	flag.Parse()

	if *traceDir != "" {
		runTraces(*traceDir)
		return
	}

	b := bus.New()
	if *snapshot != "" {
		if err := b.LoadState(*snapshot); err != nil {
			log.Fatalf("load snapshot: %v", err)
		}
		log.Printf("restored snapshot from %s", *snapshot)
	} else {
		b.Reset()
	}
	b.SetPaused(*paused)

	srv := server.NewGRPCServer(b)
	if err := srv.Start(*grpcPort); err != nil {
		log.Fatal(err)
	}
	defer srv.Stop()

	if *tcpAddr != "" {
		lis, err := net.Listen("tcp", *tcpAddr)
		if err != nil {
			log.Fatalf("remote tcp: %v", err)
		}
		go func() {
			if err := remote.ServeTCP(lis, b); err != nil {
				log.Printf("remote tcp: %v", err)
			}
		}()
	}
	if *wsAddr != "" {
		go func() {
			log.Fatal(http.ListenAndServe(*wsAddr, remote.WSHandler(b)))
		}()
	}

	for {
		if b.Clock() == 0 {
			// Paused or jammed; yield until a debugger pokes us.
			time.Sleep(time.Millisecond)
		}
	}
}

func runTraces(dir string) {
	runner := harness.NewRunner()
	res, err := runner.RunDir(dir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("total: %d passed, %d failed", res.Passed, res.Failed)
	shown := res.Mismatches
	if len(shown) > 20 {
		shown = shown[:20]
		log.Printf("showing first 20 of %d mismatches", len(res.Mismatches))
	}
	for _, m := range shown {
		log.Print(m.String())
	}
	if res.Failed > 0 {
		os.Exit(1)
	}
}
