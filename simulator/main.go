package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/clockface/internal/app"
	"github.com/rook-computer/clockface/internal/display"
	"github.com/rook-computer/clockface/internal/state"
	"github.com/rook-computer/clockface/internal/web"
)

func main() {
	serverCfg, err := web.ServerConfigFromEnv()
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	serverCfg.RegisterFlags(flag.CommandLine)
	out := flag.String("out", "", "also write every frame to this PNG file")
	once := flag.Bool("once", false, "render a single frame to -out and exit")
	debug := flag.Bool("debug", false, "log to stdout")
	showQR := flag.Bool("qr", false, "print a QR code of the frame URL")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := serverCfg.Validate(); err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		logger = app.NewFileLogger(os.Stdout)
	}

	if *once {
		if *out == "" {
			fmt.Println("-once needs -out")
			os.Exit(2)
		}
		a := app.New(cfg, display.PNGFile{Path: *out}, nil)
		a.Logger = logger
		if err := a.RenderOnce(); err != nil {
			fmt.Println("render error:", err)
			os.Exit(1)
		}
		fmt.Println("Frame written to", *out)
		return
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	latest := &display.Latest{}
	sinks := display.Multi{latest}
	if *out != "" {
		sinks = append(sinks, display.PNGFile{Path: *out})
	}

	server := web.NewHTTPServer(serverCfg, web.NewMux(store, latest))
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}
	defer func() { _ = server.Stop() }()

	fmt.Println("Clockface simulator listening on", server.Addr)
	frameURL := "http://" + displayAddr(server.Addr) + "/frame.png"
	fmt.Println("Frame:", frameURL)
	if *showQR {
		if qr, err := web.TerminalQR(frameURL); err == nil {
			fmt.Print(qr)
		} else {
			fmt.Println("qr error:", err)
		}
	}

	a := app.New(cfg, sinks, store)
	a.Logger = logger
	if err := a.Run(processCtx); err != nil {
		fmt.Println("clock error:", err)
		_ = server.Stop()
		os.Exit(1)
	}
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	return addr
}
