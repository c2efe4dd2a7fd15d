package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
	"github.com/iburimskiy/pendulum-animation/internal/termview"
)

type app struct {
	screen tcell.Screen
	scene  *scene.Scene
	proj   termview.Projection
}

func newApp() (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	return &app{
		screen: screen,
		scene:  scene.New(time.Now().UnixNano()),
		proj:   termview.NewProjection(cols, rows),
	}, nil
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		cols, rows := a.screen.Size()
		a.proj = termview.NewProjection(cols, rows)
		a.screen.Sync()
	}
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.scene.Advance()
			termview.Draw(a.screen, a.scene, a.proj)
			if a.scene.Done() {
				return
			}
		}
	}
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
