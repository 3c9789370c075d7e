package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

// command is a user request coming from the frontend
type command int

const (
	cmdQuit command = iota
	cmdPause
	cmdStep
	cmdRestart
)

// frontend draws frames and delivers user commands to the run loop
type frontend interface {
	Draw(g *model.Grid, status string) error
	Commands() <-chan command
	Close()
}

// screenFrontend drives a full-screen tcell terminal
type screenFrontend struct {
	screen   tcell.Screen
	renderer *render.ScreenRenderer
	commands chan command
}

func newScreenFrontend() (*screenFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newScreenFrontend] creating screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[newScreenFrontend] initializing screen")
	}
	screen.Clear()

	f := &screenFrontend{
		screen:   screen,
		renderer: render.NewScreenRenderer(screen),
		commands: make(chan command, 8),
	}
	go f.pollEvents()
	return f, nil
}

// pollEvents translates key presses until the screen is finalized
func (f *screenFrontend) pollEvents() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case keyEv.Key() == tcell.KeyEscape || keyEv.Key() == tcell.KeyCtrlC || keyEv.Rune() == 'q':
			f.commands <- cmdQuit
		case keyEv.Rune() == ' ':
			f.commands <- cmdPause
		case keyEv.Rune() == 'n':
			f.commands <- cmdStep
		case keyEv.Rune() == 'r':
			f.commands <- cmdRestart
		}
	}
}

func (f *screenFrontend) Draw(g *model.Grid, status string) error {
	f.renderer.Draw(g, status)
	return nil
}

func (f *screenFrontend) Commands() <-chan command { return f.commands }

func (f *screenFrontend) Close() { f.screen.Fini() }

// plainFrontend prints frames as text; it has no input
type plainFrontend struct {
	renderer *render.TextRenderer
}

func (f *plainFrontend) Draw(g *model.Grid, status string) error {
	if err := f.renderer.Clear(); err != nil {
		return err
	}
	return f.renderer.Display(g, status)
}

func (f *plainFrontend) Commands() <-chan command { return nil }

func (f *plainFrontend) Close() {}

func main() {
	var plain bool
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:], func(fs *flag.FlagSet) {
		fs.BoolVar(&plain, "plain", false, "print frames as text instead of driving the terminal")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("loading configuration: %+v", err)
	}

	game, err := initializeGame(config)
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	var ui frontend
	if plain {
		ui = &plainFrontend{renderer: &render.TextRenderer{Out: os.Stdout}}
	} else if ui, err = newScreenFrontend(); err != nil {
		log.Fatalf("starting terminal: %+v", err)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	reason := run(game, ui, sigChan)
	ui.Close()

	fmt.Printf("\n%s\n", reason)
	fmt.Println(game.finalReport())
}

// run is the main game loop; it returns why the loop stopped
func run(g *game, ui frontend, sigChan <-chan os.Signal) string {
	ticker := time.NewTicker(max(g.config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		if err := ui.Draw(g.grid, g.status); err != nil {
			return fmt.Sprintf("Render failed: %v", err)
		}

		select {
		case <-sigChan:
			return "Shutting down gracefully..."
		case cmd := <-ui.Commands():
			switch cmd {
			case cmdQuit:
				return "Quit requested"
			case cmdPause:
				g.togglePause()
			case cmdStep:
				if g.advance() {
					return fmt.Sprintf("Reached maximum generations limit (%d)", g.config.MaxGenerations)
				}
			case cmdRestart:
				if err := g.restart("requested"); err != nil {
					return fmt.Sprintf("Restart failed: %v", err)
				}
			}
		case <-ticker.C:
			if g.paused {
				continue
			}
			if g.advance() {
				return fmt.Sprintf("Reached maximum generations limit (%d)", g.config.MaxGenerations)
			}
		}
	}
}
