// Command cixldemo drives a console.Buffer through a loop.Game, showing a
// highlighted cursor cell and spawning target characters; typing a target's
// character moves the cursor onto it, in the shape of the teacher's
// original tcell demo.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/cixl/cixlconfig"
	"github.com/lixenwraith/cixl/console"
	"github.com/lixenwraith/cixl/loop"
	"github.com/lixenwraith/cixl/status"
	"github.com/lixenwraith/cixl/tcellconsole"
	"github.com/lixenwraith/cixl/terminal"
	"github.com/spf13/cobra"
)

var (
	flagWidth   int
	flagHeight  int
	flagFPS     int
	flagConfig  string
	flagBackend string
)

func main() {
	root := &cobra.Command{
		Use:   "cixldemo",
		Short: "Target-chasing cursor demo for the cixl console and game loop packages",
		RunE:  run,
	}
	root.Flags().IntVar(&flagWidth, "width", 0, "console width in columns (0: use config/default)")
	root.Flags().IntVar(&flagHeight, "height", 0, "console height in rows (0: use config/default)")
	root.Flags().IntVar(&flagFPS, "fps", 0, "target frames per second (0: use config/default)")
	root.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&flagBackend, "backend", "ansi", "render backend: ansi or tcell")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// renderDevice is what a backend's output side must supply: a
// console.RenderDevice to draw through, plus its size, a flush, and
// teardown. The input side is the separate keySource.
type renderDevice interface {
	console.RenderDevice
	Size() (int, int)
	Flush() error
	Fini()
}

type keySource interface {
	Poll() (console.KeyEvent, bool)
	Close()
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr, "cixldemo: ", log.LstdFlags)

	cfg, size, err := cixlconfig.Load(flagConfig, logger)
	if err != nil {
		return err
	}
	if flagWidth > 0 {
		size.Width = flagWidth
	}
	if flagHeight > 0 {
		size.Height = flagHeight
	}
	if flagFPS > 0 {
		cfg.TargetElapsedMS = uint32(1000 / flagFPS)
	}

	var device renderDevice
	var keys keySource

	switch flagBackend {
	case "tcell":
		tc, err := tcellconsole.NewDevice()
		if err != nil {
			return fmt.Errorf("cixldemo: tcell device: %w", err)
		}
		device = tc
		keys = tcellconsole.NewKeyReader(tc.Screen())
		size.Width, size.Height = tc.Size()
	case "ansi":
		td := terminal.NewDevice()
		if err := td.Init(); err != nil {
			return fmt.Errorf("cixldemo: terminal device: %w", err)
		}
		device = td
		keys = terminal.NewKeyReader(td.Backend())
		size.Width, size.Height = td.Size()
	default:
		return fmt.Errorf("cixldemo: unknown backend %q (want ansi or tcell)", flagBackend)
	}
	defer device.Fini()
	defer keys.Close()

	buf, err := console.NewBuffer(size.Width, size.Height)
	if err != nil {
		return err
	}

	metrics := status.NewRegistry()
	buf.Logger = logger
	buf.Metrics = metrics

	d := &demo{
		buf:     buf,
		device:  device,
		keys:    keys,
		metrics: metrics,
		cursorX: size.Width / 2,
		cursorY: size.Height / 2,
	}
	d.spawnTarget()

	game := loop.NewGame(cfg)
	game.Metrics = metrics
	game.Update = d.update
	game.Draw = d.draw
	d.game = game

	if err := game.Init(nil); err != nil {
		return err
	}
	err = game.Run()
	if s := metrics.Summary(); s != "" {
		logger.Printf("final metrics: %s", s)
	}
	return err
}

type target struct {
	ch   byte
	x, y int
}

type demo struct {
	buf     *console.Buffer
	device  renderDevice
	keys    keySource
	metrics *status.Registry
	game    *loop.Game

	cursorX, cursorY int
	targets          []target
	frame            int
}

const targetChars = "abcdefghijklmnopqrstuvwxyz"

func (d *demo) spawnTarget() {
	w, h := d.buf.Width, d.buf.Height
	if w < 3 || h < 3 {
		return
	}
	idx := len(d.targets) % len(targetChars)
	x := 1 + (d.frame*7+idx*5)%(w-2)
	y := 1 + (d.frame*3+idx*3)%(h-2)
	d.targets = append(d.targets, target{ch: targetChars[idx], x: x, y: y})
}

func (d *demo) update(gt *loop.GameTime, shared any) {
	d.frame++

	for {
		ev, ok := d.keys.Poll()
		if !ok {
			break
		}
		switch ev.Key {
		case console.KeyEscape, console.KeyCtrlC, console.KeyCtrlQ:
			d.game.RequestExit()
		case console.KeyRune:
			for i, t := range d.targets {
				if byte(ev.Rune) == t.ch {
					d.cursorX, d.cursorY = t.x, t.y
					d.targets = append(d.targets[:i], d.targets[i+1:]...)
					break
				}
			}
		}
	}

	if len(d.targets) < 8 && d.frame%40 == 0 {
		d.spawnTarget()
	}
}

func (d *demo) draw(gt *loop.GameTime, shared any) {
	d.buf.Reset()
	for _, t := range d.targets {
		d.buf.Put(t.x, t.y, console.Cell{Ch: t.ch, Fg: console.ColorYellowBright, Bg: console.ColorBlack})
	}
	d.buf.Put(d.cursorX, d.cursorY, console.Cell{Ch: ' ', Fg: console.ColorBlack, Bg: console.ColorWhiteBright})
	d.buf.Print(0, 0, fmt.Sprintf("cixldemo  fps=%d  targets=%d", gt.CurrentFPS, len(d.targets)), console.ColorGrey, console.ColorBlack, 0)

	if _, err := d.buf.Render(d.device); err == nil {
		d.device.Flush()
	}
}
