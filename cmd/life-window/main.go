//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("loading configuration: %+v", err)
	}

	grid, stepper, initializer, err := config.Build()
	if err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	reseed := func() (*model.Grid, error) {
		return initializer(config.Width, config.Height)
	}
	layout := render.NewLayout(config.WindowWidth, config.WindowHeight, config.Width, config.Height)
	game := render.NewWindow(grid, stepper, layout, reseed)

	ebiten.SetWindowTitle(fmt.Sprintf("go-life %dx%d %s", config.Width, config.Height, stepper.Rule()))
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	if config.FrameRate > 0 {
		ebiten.SetTPS(max(1, int(time.Second/config.FrameRate)))
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
