package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/asciiforge/forge/core"
	"github.com/asciiforge/forge/input"
	"github.com/asciiforge/forge/render"
	"github.com/asciiforge/forge/widgets"
	"github.com/asciiforge/forge/window"
)

const sampleRate = beep.SampleRate(48000)

// sounds mixes short synthesized blips. A failed speaker init leaves it
// silent instead of killing the game.
type sounds struct {
	mixer *beep.Mixer
	on    bool
}

func newSounds(mute bool) *sounds {
	s := &sounds{mixer: &beep.Mixer{}}
	if mute {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return s
	}
	speaker.Play(s.mixer)
	s.on = true
	return s
}

func (s *sounds) play(freq float64, d time.Duration) {
	if !s.on {
		return
	}
	decay := 5 / d.Seconds()
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(d), &blip{freq: freq, decay: decay}))
	speaker.Unlock()
}

// blip generates a decaying sine tone
type blip struct {
	freq  float64
	decay float64
	pos   int
}

func (g *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		attack := math.Min(t/0.005, 1.0)
		sample := 0.2 * attack * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blip) Err() error {
	return nil
}

// projectile falls (or rises) at a fractional rate per frame
type projectile struct {
	x       int
	y       float64
	vel     float64
	width   int
	hostile bool
	element render.Text
}

func (p *projectile) update() {
	p.y += p.vel
}

func (p *projectile) drawPos() core.Vec2 {
	return core.V2(p.x, int(math.Floor(p.y)))
}

func (p *projectile) alive(height int) bool {
	return p.y >= 2 && p.y < float64(height-2)
}

type player struct {
	pos     core.Vec2
	element render.Text
}

func newPlayer(size core.Vec2) *player {
	return &player{
		pos:     core.V2(size.X/2, size.Y-3),
		element: render.Styled("W", tcell.StyleDefault.Foreground(tcell.ColorGreen)),
	}
}

func (p *player) update(keys *input.State, width int) {
	dx := 0
	if keys.Pressed(tcell.KeyRight) || keys.PressedRune('d') {
		dx = 1
	}
	if keys.Pressed(tcell.KeyLeft) || keys.PressedRune('a') {
		dx = -1
	}
	p.pos.X = clamp(p.pos.X+dx, 0, width-1)
}

func (p *player) hit(shots []*projectile) bool {
	for _, s := range shots {
		if s.hostile && s.drawPos() == p.pos {
			return true
		}
	}
	return false
}

type enemy struct {
	pos     core.Vec2
	right   bool
	score   int
	element render.Text
}

func newEnemy() *enemy {
	return &enemy{
		pos:     core.V2(0, 3),
		right:   true,
		score:   10,
		element: render.Styled("M", tcell.StyleDefault.Foreground(tcell.ColorRed)),
	}
}

// march steps one cell along the sweep, dropping a row at each edge.
// Reports whether the enemy reached the player's row band.
func (e *enemy) march(size core.Vec2) bool {
	if e.pos.Y >= size.Y-4 {
		return true
	}
	if e.right {
		e.pos.X++
		if e.pos.X >= size.X-1 {
			e.right = false
			e.pos.Y++
		}
	} else {
		e.pos.X--
		if e.pos.X <= 0 {
			e.right = true
			e.pos.Y++
		}
	}
	return false
}

func (e *enemy) hit(shots []*projectile) bool {
	for _, s := range shots {
		if s.hostile {
			continue
		}
		p := s.drawPos()
		if p.Y == e.pos.Y && e.pos.X >= p.X && e.pos.X <= p.X+s.width-1 {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func main() {
	defer window.HandlePanics()

	var mute bool
	flag.BoolVar(&mute, "mute", false, "disable audio")
	flag.Parse()

	win, err := window.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := app(win, newSounds(mute))
	win.Restore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func app(win *window.Window, snd *sounds) (string, error) {
	const (
		spawnFirst    = 800 * time.Millisecond
		spawnInterval = 2 * time.Second
		marchInterval = 200 * time.Millisecond
		shootInterval = 500 * time.Millisecond
	)

	var keys input.State
	score := 0
	hero := newPlayer(win.Size())
	var shots []*projectile
	var enemies []*enemy

	var delta time.Duration
	spawner := spawnFirst
	marcher := marchInterval
	shooter := shootInterval

	title := "SPACE INVADERS"
	ramp := render.Ramp(tcell.ColorGreen, tcell.ColorRed, len(title))
	hint := "Press Ctrl+C or q to quit"

	for {
		start := time.Now()
		if err := win.Update(time.Second / 60); err != nil {
			return "", err
		}
		keys.Update(win.Events())

		if keys.Pressed(tcell.KeyCtrlC) || keys.PressedRune('q') {
			return "Game Exited", nil
		}

		size := win.Size()

		if keys.PressedRune(' ') {
			shots = append(shots, &projectile{
				x:       hero.pos.X - 1,
				y:       float64(hero.pos.Y - 1),
				vel:     -0.3,
				width:   3,
				element: render.Styled("|||", tcell.StyleDefault.Foreground(tcell.ColorGreen)),
			})
			snd.play(880, 80*time.Millisecond)
		}

		live := shots[:0]
		for _, s := range shots {
			if s.alive(size.Y) {
				live = append(live, s)
			}
		}
		shots = live
		for _, s := range shots {
			s.update()
			render.Draw(win, s.drawPos(), s.element)
		}

		hero.update(&keys, size.X)
		render.Draw(win, hero.pos, hero.element)

		if spawner > delta {
			spawner -= delta
		} else {
			enemies = append(enemies, newEnemy())
			spawner = spawnInterval
		}

		if marcher > delta {
			marcher -= delta
		} else {
			for _, e := range enemies {
				if e.march(size) {
					snd.play(60, 400*time.Millisecond)
					return fmt.Sprintf("Game Over\nScore was: %d", score), nil
				}
			}
			marcher = marchInterval
		}

		if hero.hit(shots) {
			snd.play(60, 400*time.Millisecond)
			return fmt.Sprintf("Game Over\nScore was: %d", score), nil
		}

		if shooter > delta {
			shooter -= delta
		} else {
			for _, e := range enemies {
				shots = append(shots, &projectile{
					x:       e.pos.X,
					y:       float64(e.pos.Y + 1),
					vel:     0.3,
					width:   1,
					hostile: true,
					element: render.Styled("|", tcell.StyleDefault.Foreground(tcell.ColorRed)),
				})
			}
			shooter = shootInterval
		}

		standing := enemies[:0]
		for _, e := range enemies {
			if e.hit(shots) {
				score += e.score
				snd.play(120, 150*time.Millisecond)
				continue
			}
			standing = append(standing, e)
			render.Draw(win, e.pos, e.element)
		}
		enemies = standing

		render.Draw(win, core.V2(0, 0), fmt.Sprintf("Score: %d", score))
		tx := (size.X - len(title)) / 2
		for i, r := range title {
			render.Draw(win, core.V2(tx+i, 0), render.NewCell(string(r), tcell.StyleDefault.Foreground(ramp[i])))
		}
		render.Draw(win, core.V2(size.X-widgets.Width(hint), 0), hint)

		delta = time.Since(start)
	}
}
