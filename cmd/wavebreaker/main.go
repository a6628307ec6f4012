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

	"wavebreaker/config"
	"wavebreaker/engine"
	"wavebreaker/game"
	"wavebreaker/parameter"
)

var (
	configFlag = flag.String("config", "", "Path to YAML configuration (built-in defaults when empty)")
	seedFlag   = flag.Int64("seed", 0, "Spawn placement seed (0 = time-based)")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

// cellsPerUnit maps simulation units to terminal cells; terminal cells are
// roughly twice as tall as wide, so X gets double density
const (
	cellsPerUnitX = 2.0
	cellsPerUnitY = 1.0
	frameInterval = 33 * time.Millisecond
)

func main() {
	flag.Parse()

	logFile, err := os.OpenFile("wavebreaker.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg := config.Default()
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := game.NewSimulation(cfg, rand.New(rand.NewSource(seed)), !*muteFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation setup: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: reset the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nWAVEBREAKER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	run(screen, sim)
}

// run is the host frame loop: input, Step(dt), render
func run(screen tcell.Screen, sim *game.Simulation) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	clock := engine.NewTimeProvider()
	last := clock.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, sim, screen) {
				return
			}
		case <-ticker.C:
			now := clock.Now()
			dt := now.Sub(last).Seconds()
			last = now

			sim.Step(dt)
			draw(screen, sim.Snapshot())
		}
	}
}

// handleEvent routes driver-side input, returns false to exit
func handleEvent(ev tcell.Event, sim *game.Simulation, screen tcell.Screen) bool {
	const step = 0.5

	switch tev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch tev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			sim.MovePlayer(0, -step)
		case tcell.KeyDown:
			sim.MovePlayer(0, step)
		case tcell.KeyLeft:
			sim.MovePlayer(-step, 0)
		case tcell.KeyRight:
			sim.MovePlayer(step, 0)
		case tcell.KeyRune:
			switch tev.Rune() {
			case 'q':
				return false
			case 'k':
				sim.MovePlayer(0, -step)
			case 'j':
				sim.MovePlayer(0, step)
			case 'h':
				sim.MovePlayer(-step, 0)
			case 'l':
				sim.MovePlayer(step, 0)
			case ' ':
				sim.FireAtNearest()
			case 'r':
				sim.Reset()
			}
		}
	}
	return true
}

// draw renders the arena top-down: player @, enemies e, projectiles ·
func draw(screen tcell.Screen, snap game.Snapshot) {
	screen.Clear()
	width, height := screen.Size()
	cx, cy := width/2, height/2

	styleDefault := tcell.StyleDefault
	stylePlayer := styleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy := styleDefault.Foreground(tcell.ColorRed)
	styleBolt := styleDefault.Foreground(tcell.ColorYellow)

	// The camera is centered on the player
	toCell := func(x, z float64) (int, int) {
		dx := x - snap.PlayerPosition.X()
		dz := z - snap.PlayerPosition.Z()
		return cx + int(dx*cellsPerUnitX), cy + int(dz*cellsPerUnitY)
	}

	for _, e := range snap.Entities {
		col, row := toCell(e.Position.X(), e.Position.Z())
		if col < 0 || col >= width || row < 1 || row >= height {
			continue
		}
		switch e.Tag {
		case parameter.TagEnemy:
			screen.SetContent(col, row, 'e', nil, styleEnemy)
		case parameter.TagProjectile:
			screen.SetContent(col, row, '·', nil, styleBolt)
		}
	}
	screen.SetContent(cx, cy, '@', nil, stylePlayer)

	hud := fmt.Sprintf(" %s | wave %d %s | alive %d | score %d | hp %d/%d | %.0fs ",
		snap.State, snap.WaveIndex+1, snap.WaveName, snap.Alive,
		snap.Score, snap.PlayerHealth.Current, snap.PlayerHealth.Max, snap.Elapsed)
	drawText(screen, 0, 0, styleDefault.Reverse(true), hud)

	if snap.State != game.StatePlaying {
		msg := " GAME OVER - r to restart, q to quit "
		if snap.State == game.StateVictory {
			msg = " VICTORY - r to restart, q to quit "
		}
		drawText(screen, cx-len([]rune(msg))/2, cy-2, styleDefault.Reverse(true), msg)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
