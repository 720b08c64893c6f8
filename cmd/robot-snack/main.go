package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/robot-snack/audio"
	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/lixenwraith/robot-snack/events"
	"github.com/lixenwraith/robot-snack/game"
	"github.com/lixenwraith/robot-snack/input"
	"github.com/lixenwraith/robot-snack/render"
)

var (
	catalogFlag = flag.String("catalog", "", "Path to a food catalog YAML file (default: "+catalog.DefaultConfigPath+" if present, else built-in)")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 for time-based")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	muteFlag    = flag.Bool("mute", false, "Start with sound off")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	foods, source, err := catalog.LoadAuto(*catalogFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load food catalog: %v\n", err)
		os.Exit(1)
	}
	log.Printf("main: loaded %d foods from %s", foods.Len(), source)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("main: seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mROBOT-SNACK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager()
	sound.SetEnabled(!*muteFlag)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("main: audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	layout := render.NewLayout()
	renderer := render.NewTerminalRenderer(screen, layout)
	renderer.Resize()

	bus := events.NewBus()
	session, err := game.NewSession(game.Config{
		Catalog:  foods,
		Rand:     rand.New(rand.NewSource(seed)),
		Target:   layout,
		Bus:      bus,
		Feedback: sound,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	// Releases held listeners on every exit path, including panics
	defer session.Close()

	inputHandler := input.NewInputHandler(bus, session, layout, sound, func() {
		renderer.Resize()
		screen.Sync()
	})

	run(screen, renderer, inputHandler, session, sound)
}

// run owns every state transition: events are polled on a separate goroutine
// and handled here one at a time
func run(screen tcell.Screen, renderer *render.TerminalRenderer, h *input.InputHandler, s *game.Session, sound *audio.SoundManager) {
	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	renderer.RenderFrame(render.ViewFrom(s, sound.Enabled()))

	for ev := range eventChan {
		if !h.HandleEvent(ev) {
			log.Printf("main: exit requested")
			return
		}
		renderer.RenderFrame(render.ViewFrom(s, sound.Enabled()))
	}
}
