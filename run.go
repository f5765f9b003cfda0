// run.go
package main

import (
	"fmt"
	"log"
	"time"

	"approach/v2/flight"

	"github.com/gdamore/tcell/v2"
)

type command int

const (
	cmdSpeedUp command = iota
	cmdSlowDown
	cmdResetSpeed
	cmdCycleCamera
	cmdToggleMusic
	cmdQuit
)

const frameInterval = time.Second / 60

// keyCommand maps a key press to a scene command.
func keyCommand(ev *tcell.EventKey) (command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			return cmdSpeedUp, true
		case '-', '_':
			return cmdSlowDown, true
		case '0', 'r', 'R':
			return cmdResetSpeed, true
		case 'c', 'C':
			return cmdCycleCamera, true
		case 'm', 'M':
			return cmdToggleMusic, true
		case 'q', 'Q':
			return cmdQuit, true
		}
	}
	return 0, false
}

// apply runs cmd on the frame goroutine and reports whether to quit.
func (r *SceneRenderer) apply(cmd command) (quit bool) {
	switch cmd {
	case cmdSpeedUp:
		r.actor = r.actor.Apply(flight.Increase)
	case cmdSlowDown:
		r.actor = r.actor.Apply(flight.Decrease)
	case cmdResetSpeed:
		r.actor = r.actor.Apply(flight.Reset)
	case cmdCycleCamera:
		r.camera = r.camera.Next()
		log.Printf("[Render] Camera %s", r.camera)
	case cmdToggleMusic:
		if r.music != nil {
			log.Printf("[Audio] Playing: %v", r.music.Toggle())
		}
	case cmdQuit:
		return true
	}
	return false
}

// runScene drives the frame loop on s until the viewer quits. Input is read
// on its own goroutine and handed over as commands, so scene state is only
// touched here.
func runScene(s tcell.Screen, r *SceneRenderer) error {
	cmds := make(chan command, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				cmd, ok := keyCommand(ev)
				if !ok {
					continue
				}
				select {
				case cmds <- cmd:
				case <-done:
					return
				}
				if cmd == cmdQuit {
					return
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case cmd := <-cmds:
			if r.apply(cmd) {
				return nil
			}
		case <-ticker.C:
			r.update(time.Since(start))
			s.Clear()
			w, h := s.Size()
			if w <= 15 || h <= 8 {
				continue
			}
			r.render(s, w, h)
			s.Show()
		}
	}
}

func openScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("screen start failed: %w", err)
	}
	return s, nil
}
