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
	"github.com/rook-computer/clockface/internal/system"
)

func main() {
	cfg, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	fbPath := flag.String("fb", display.DefaultFramebuffer, "framebuffer device for -display fb")
	output := flag.String("display", "fb", "output device: fb | ssd1306")
	i2cBus := flag.String("i2c", "", "I²C bus for -display ssd1306; empty selects the first bus")
	debug := flag.Bool("debug", false, "enable debug logging to ./clockface-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via CLOCKFACE_STDIO_LOG")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("CLOCKFACE_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./clockface-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink display.Sink
	var console app.Console
	switch *output {
	case "fb":
		fb, err := display.OpenFramebuffer(*fbPath)
		if err != nil {
			fmt.Println("framebuffer error:", err)
			os.Exit(1)
		}
		sink = fb
		console = system.Console{Logger: logger}
	case "ssd1306":
		panel, err := display.OpenSSD1306(*i2cBus)
		if err != nil {
			fmt.Println("ssd1306 error:", err)
			os.Exit(1)
		}
		sink = panel
	default:
		fmt.Printf("unknown display %q (want fb or ssd1306)\n", *output)
		os.Exit(2)
	}

	a := app.New(cfg, sink, state.NewStore())
	a.Logger = logger
	a.Console = console
	if err := a.Run(ctx); err != nil {
		fmt.Println("clock error:", err)
		os.Exit(1)
	}
}
