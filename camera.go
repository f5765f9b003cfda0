// camera.go
package main

import (
	"fmt"
	"log"
	"strings"

	"approach/v2/flight"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

type CameraMode int

const (
	ChaseCamera CameraMode = iota
	CockpitCamera
	SideCamera
)

var cameraNames = [...]string{"chase", "cockpit", "side"}

func (m CameraMode) String() string {
	if m < 0 || int(m) >= len(cameraNames) {
		return fmt.Sprintf("camera(%d)", int(m))
	}
	return cameraNames[m]
}

// Next cycles chase -> cockpit -> side -> chase.
func (m CameraMode) Next() CameraMode {
	return (m + 1) % CameraMode(len(cameraNames))
}

func ParseCameraMode(s string) (CameraMode, error) {
	for i, name := range cameraNames {
		if strings.EqualFold(s, name) {
			return CameraMode(i), nil
		}
	}
	return ChaseCamera, fmt.Errorf("unknown camera %q (want %s)", s, strings.Join(cameraNames[:], "|"))
}

// startCamera picks the camera from the -camera flag, else the stored
// setting. A bad flag is an error; a bad stored name falls back to the chase
// view.
func startCamera(flagName, stored string) (CameraMode, error) {
	if flagName != "" {
		return ParseCameraMode(flagName)
	}
	mode, err := ParseCameraMode(stored)
	if err != nil {
		log.Printf("[Settings] %v, using %s", err, ChaseCamera)
		return ChaseCamera, nil
	}
	return mode, nil
}

// Fixed observer for the side view.
var sideEye = mgl64.Vec3{-556, -11, 110}

const (
	chaseDistance = 30.0
	chaseHeight   = 10.0
	lookAhead     = 20.0
)

var worldUp = mgl64.Vec3{0, 1, 0}

type Camera struct {
	Eye, Target, Up mgl64.Vec3
}

// cameraFor places the eye for mode relative to the actor. forward is the
// model nose axis.
func cameraFor(mode CameraMode, actor flight.ActorState, forward mgl64.Vec3) Camera {
	q := actor.Orientation
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	nose := q.Rotate(forward).Normalize()
	pos := actor.Position

	switch mode {
	case CockpitCamera:
		up := q.Rotate(worldUp)
		return Camera{Eye: pos, Target: pos.Add(nose.Mul(lookAhead)), Up: up}
	case SideCamera:
		target := pos
		if target.ApproxEqual(sideEye) {
			target = target.Add(mgl64.Vec3{1, 0, 0})
		}
		return Camera{Eye: sideEye, Target: target, Up: worldUp}
	default:
		eye := pos.Sub(nose.Mul(chaseDistance)).Add(worldUp.Mul(chaseHeight))
		return Camera{Eye: eye, Target: pos.Add(nose.Mul(lookAhead)), Up: worldUp}
	}
}

const (
	fovY       = 75.0
	nearPlane  = 0.5
	cellAspect = 2.0 // terminal cells are about twice as tall as wide
	hudTop     = 1
	hudBottom  = 2
)

// projector maps world points into terminal cells for one frame.
type projector struct {
	view    mgl64.Mat4
	tanHalf float32
	w, h    int
}

func newProjector(cam Camera, w, h int) projector {
	return projector{
		view:    mgl64.LookAtV(cam.Eye, cam.Target, cam.Up),
		tanHalf: math32.Tan(float32(mgl64.DegToRad(fovY)) / 2),
		w:       w,
		h:       h,
	}
}

// project returns the cell for p and its distance along the view axis.
// ok is false for points behind the near plane or off screen.
func (pr projector) project(p mgl64.Vec3) (x, y int, depth float64, ok bool) {
	v := pr.view.Mul4x1(p.Vec4(1))
	z := float32(-v[2])
	if z < nearPlane {
		return 0, 0, 0, false
	}

	aspect := float32(pr.w) / (float32(pr.h) * cellAspect)
	ndcX := float32(v[0]) / (z * pr.tanHalf * aspect)
	ndcY := float32(v[1]) / (z * pr.tanHalf)

	x = int(math32.Floor((ndcX + 1) * float32(pr.w) / 2))
	y = int(math32.Floor((1 - ndcY) * float32(pr.h) / 2))
	if x < 0 || x >= pr.w || y < hudTop || y >= pr.h-hudBottom {
		return 0, 0, 0, false
	}
	return x, y, float64(z), true
}
