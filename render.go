// render.go
package main

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"approach/v2/audio"
	"approach/v2/debris"
	"approach/v2/flight"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/ojrac/opensimplex-go"
)

// landmark is a decorative body spun through the same composer as debris.
type landmark struct {
	name  string
	model *pointModel
	inst  *debris.Instance
}

type SceneRenderer struct {
	anim    *flight.Animator
	actor   flight.ActorState
	forward mgl64.Vec3

	field     *debris.Field
	landmarks []landmark

	camera CameraMode
	music  *audio.Music // nil without a soundtrack
	stars  opensimplex.Noise

	frame  int
	landed bool
}

func NewSceneRenderer(anim *flight.Animator, forward mgl64.Vec3, speed float64, field *debris.Field, starSeed int64) *SceneRenderer {
	if field == nil {
		field = &debris.Field{}
	}
	if forward.Len() == 0 {
		forward = flight.DefaultForward
	}
	return &SceneRenderer{
		anim:    anim,
		actor:   anim.Start(speed),
		forward: forward,
		field:   field,
		stars:   opensimplex.New(starSeed),
	}
}

func (r *SceneRenderer) addLandmark(name string, model *pointModel, inst *debris.Instance) {
	r.landmarks = append(r.landmarks, landmark{name: name, model: model, inst: inst})
	log.Printf("[Scene] Landmark %s at %v", name, inst.Position)
}

// update runs one frame of simulation at scene time now.
func (r *SceneRenderer) update(now time.Duration) {
	r.actor = r.anim.Tick(r.actor, now)
	if !r.landed && r.anim.Finished(r.actor) {
		r.landed = true
		log.Printf("[Scene] Landed at index %d after %v", r.actor.Index, now.Round(time.Millisecond))
	}

	r.field.Update()
	for _, l := range r.landmarks {
		l.inst.Advance()
	}
	r.frame++
}

var segmentColors = map[flight.SegmentKind]colorful.Color{
	flight.Approach: {R: 0.37, G: 0.69, B: 1.00},
	flight.Hold:     {R: 1.00, G: 0.84, B: 0.37},
	flight.Descent:  {R: 1.00, G: 0.53, B: 0.37},
	flight.Landing:  {R: 0.53, G: 1.00, B: 0.53},
}

var (
	spaceColor    = colorful.Color{R: 0.06, G: 0.06, B: 0.09}
	rockColor     = colorful.Color{R: 0.72, G: 0.66, B: 0.58}
	landmarkColor = colorful.Color{R: 0.95, G: 0.80, B: 0.55}
	shipColor     = colorful.Color{R: 1, G: 1, B: 1}
)

// Near to far.
var depthRamp = []rune{'@', '#', '%', 'o', '*', '+', ':', '.'}

const farPlane = 600.0

// nearness maps view depth to 1 at the near plane and 0 at farPlane.
func nearness(depth float64) float64 {
	n := 1 - (depth-nearPlane)/(farPlane-nearPlane)
	return math.Max(0, math.Min(1, n))
}

func depthGlyph(near float64) rune {
	idx := int((1 - near) * float64(len(depthRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(depthRamp) {
		idx = len(depthRamp) - 1
	}
	return depthRamp[idx]
}

// shade fades c into the background as it recedes.
func shade(c colorful.Color, near float64) tcell.Color {
	blended := spaceColor.BlendLab(c, 0.2+0.8*near).Clamped()
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

type renderPoint struct {
	x, y     int
	z        float64
	char     rune
	color    tcell.Color
	priority int
}

const (
	starPriority = iota
	pathPriority
	landmarkPriority
	rockPriority
	shipPriority
)

func (r *SceneRenderer) render(s tcell.Screen, w, h int) {
	cam := cameraFor(r.camera, r.actor, r.forward)
	pr := newProjector(cam, w, h)

	var pts []renderPoint
	pts = r.appendStars(pts, cam, w, h)

	path := r.anim.Path()
	cls := r.anim.Classifier()
	for i, p := range path.Points {
		x, y, z, ok := pr.project(p)
		if !ok {
			continue
		}
		seg, _ := cls.SegmentAt(i)
		near := nearness(z)
		if i < r.actor.Index {
			near *= 0.4
		}
		pts = append(pts, renderPoint{x, y, z, depthGlyph(near), shade(segmentColors[seg.Kind], near), pathPriority})
	}

	for _, l := range r.landmarks {
		for i, v := range l.model.verts {
			x, y, z, ok := pr.project(debris.Transform(l.inst.World, v))
			if !ok {
				continue
			}
			pts = append(pts, renderPoint{x, y, z, l.model.glyph(i), shade(landmarkColor, nearness(z)), landmarkPriority})
		}
	}

	for _, inst := range r.field.Instances {
		m, ok := inst.Model.(*pointModel)
		if !ok {
			continue
		}
		for i, v := range m.verts {
			x, y, z, ok := pr.project(debris.Transform(inst.World, v))
			if !ok {
				continue
			}
			near := nearness(z)
			char := m.glyph(i)
			if near < 0.5 {
				char = depthGlyph(near)
			}
			pts = append(pts, renderPoint{x, y, z, char, shade(rockColor, near), rockPriority})
		}
	}

	if r.camera != CockpitCamera {
		if x, y, z, ok := pr.project(r.actor.Position); ok {
			pts = append(pts, renderPoint{x, y, z, '▲', shade(shipColor, 1), shipPriority})
		}
	}

	// far first so near points overwrite them
	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].priority != pts[j].priority {
			return pts[i].priority < pts[j].priority
		}
		return pts[i].z > pts[j].z
	})
	for _, p := range pts {
		s.SetContent(p.x, p.y, p.char, nil, tcell.StyleDefault.Foreground(p.color))
	}

	r.drawHUD(s, w, h)
}

// appendStars fills the backdrop from a noise field that scrolls with the
// camera heading.
func (r *SceneRenderer) appendStars(pts []renderPoint, cam Camera, w, h int) []renderPoint {
	dir := cam.Target.Sub(cam.Eye)
	yaw := math.Atan2(dir[0], dir[2])
	pitch := math.Atan2(dir[1], math.Hypot(dir[0], dir[2]))
	ox := yaw * float64(w) / 2
	oy := pitch * float64(h) / 2

	for y := hudTop; y < h-hudBottom; y++ {
		for x := 0; x < w; x++ {
			n := r.stars.Eval2((float64(x)+ox)*0.37, (float64(y)-oy)*0.73)
			if n < 0.55 {
				continue
			}
			char := '.'
			if n > 0.7 {
				char = '+'
			}
			g := int32(60 + 200*(n-0.55))
			pts = append(pts, renderPoint{x, y, math.Inf(1), char, tcell.NewRGBColor(g, g, g+20), starPriority})
		}
	}
	return pts
}

func (r *SceneRenderer) status() string {
	tag := "-"
	if seg, ok := r.anim.Classifier().SegmentAt(r.actor.Index); ok {
		tag = seg.Tag()
	}
	music := "off"
	if r.music == nil {
		music = "none"
	} else if r.music.Playing() {
		music = "on"
	}
	text := fmt.Sprintf("APPROACH | speed %.1fx | %s | %d/%d | cam %s | music %s",
		r.actor.Speed, tag, r.actor.Index, r.anim.Path().Last(), r.camera, music)
	if r.landed {
		text += " | LANDED"
	}
	return text
}

const keyHelp = "+/-:speed 0:reset c:camera m:music q:quit"

func (r *SceneRenderer) drawHUD(s tcell.Screen, w, h int) {
	drawText(s, 1, 0, w-1, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true), r.status())
	drawText(s, 1, h-1, w-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), keyHelp)
}

// drawText writes str from x, advancing by display width and truncating at
// maxX. It returns the column after the last cell written.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, str string) int {
	if w := maxX - x; w > 0 && runewidth.StringWidth(str) > w {
		str = runewidth.Truncate(str, w, "…")
	}
	for _, c := range str {
		rw := runewidth.RuneWidth(c)
		if rw == 0 {
			continue
		}
		s.SetContent(x, y, c, nil, style)
		x += rw
	}
	return x
}
