// =======================
// flight/report.go
// =======================

package flight

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// SegmentInfo summarises one segment for the -summary table.
type SegmentInfo struct {
	Tag        string        `json:"tag"`
	Start      int           `json:"start"`
	End        int           `json:"end"`
	Points     int           `json:"points"`
	Multiplier float64       `json:"multiplier"`
	Duration   time.Duration `json:"duration_ns"`
}

// Report estimates how long each segment takes at the given speed factor.
// Each point costs one threshold; frame quantisation is ignored.
func Report(a *Animator, speed float64) []SegmentInfo {
	speed = ClampSpeed(speed)
	segs := a.path.Segments
	out := make([]SegmentInfo, 0, len(segs))

	for _, seg := range segs {
		m := a.classifier.Multiplier(seg.Start, speed)
		step := time.Duration(float64(a.base) / m)
		out = append(out, SegmentInfo{
			Tag:        seg.Tag(),
			Start:      seg.Start,
			End:        seg.End,
			Points:     seg.Len(),
			Multiplier: m,
			Duration:   step * time.Duration(seg.Len()),
		})
	}
	return out
}

// PrintReport writes the segment table.
func PrintReport(w io.Writer, speed float64, infos []SegmentInfo) {
	fmt.Fprintf(w, "Flight Path Segments (speed factor %.1f)\n", ClampSpeed(speed))
	fmt.Fprintln(w, "=========================================")
	fmt.Fprintf(w, "%-12s | %-11s | %-6s | %-10s | %-10s\n",
		"Segment", "Range", "Points", "Multiplier", "Duration")
	fmt.Fprintln(w, "-------------|-------------|--------|------------|-----------")

	var total time.Duration
	for _, info := range infos {
		fmt.Fprintf(w, "%-12s | %5d-%-5d | %-6d | %-10.2f | %-10s\n",
			info.Tag,
			info.Start, info.End-1,
			info.Points,
			info.Multiplier,
			info.Duration.Round(time.Millisecond).String())
		total += info.Duration
	}
	fmt.Fprintf(w, "Total: %s\n", total.Round(time.Millisecond))
}

type exportedPath struct {
	Points   [][3]float64 `json:"points"`
	Segments []Segment    `json:"segments"`
}

// WriteJSON encodes the path as indented JSON.
func (p *Path) WriteJSON(w io.Writer) error {
	out := exportedPath{
		Points:   make([][3]float64, len(p.Points)),
		Segments: p.Segments,
	}
	for i, pt := range p.Points {
		out.Points[i] = [3]float64(pt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ReadJSON decodes a path written by WriteJSON and checks that its segments
// cover every point in order.
func ReadJSON(r io.Reader) (*Path, error) {
	var in exportedPath
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}

	p := &Path{
		Points:   make([]mgl64.Vec3, len(in.Points)),
		Segments: in.Segments,
	}
	for i, pt := range in.Points {
		p.Points[i] = mgl64.Vec3(pt)
	}

	next := 0
	for i, seg := range p.Segments {
		if seg.Start != next || seg.End < seg.Start {
			return nil, fmt.Errorf("%w: segment %d is [%d, %d), want start %d", ErrBadPath, i, seg.Start, seg.End, next)
		}
		next = seg.End
	}
	if next != len(p.Points) {
		return nil, fmt.Errorf("%w: segments end at %d of %d points", ErrBadPath, next, len(p.Points))
	}
	return p, nil
}
