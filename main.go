package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/game"
	"github.com/iburimskiy/pendulum-animation/internal/hum"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Pendulum Animation")

	h, err := hum.Open()
	if err != nil {
		// Non-fatal, the animation can run without sound.
		log.Printf("audio unavailable, continuing without sound: %v", err)
	} else {
		defer h.Close()
	}

	g := game.New(scene.New(time.Now().UnixNano()), h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "pendulum: %v\n", err)
		_ = zenity.Error(err.Error(), zenity.Title("Pendulum Animation"))
		os.Exit(1)
	}
}
