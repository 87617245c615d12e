// cmd/bloontui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"go-bloon-defense/internal/app"
	"go-bloon-defense/internal/audio"
	"go-bloon-defense/internal/config"
	"go-bloon-defense/internal/event"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (built-in level when empty)")
	logPath := flag.String("log", "", "write log output to this file (discarded when empty)")
	mute := flag.Bool("mute", false, "disable the pop sound")
	flag.Parse()

	// Лог в терминал испортит экран tcell
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sc := config.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := config.LoadScenario(*scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		sc = loaded
	}
	sim, err := app.NewFromScenario(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if !*mute {
		player := audio.NewPlayer(audio.SampleRate)
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			speaker.Play(player)
			defer speaker.Close()
			sim.EventDispatcher.Subscribe(event.BloonPopped, event.ListenerFunc(func(e event.Event) {
				if data, ok := e.Data.(event.PopData); ok {
					player.Pop(data.Tier)
				}
			}))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Возвращаем терминал в нормальное состояние даже при панике
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "bloontui crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	v := newViewer(screen, sim, sc)
	v.run()
}
