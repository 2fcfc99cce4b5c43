package renderer2d

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/batch2d/engine/colors"
	"github.com/hubastard/batch2d/engine/geom"
)

// Angles in a Y-down space.
const (
	AngleRight = float32(0)
	AngleDown  = math32.Pi * 0.5
	AngleLeft  = math32.Pi
	AngleUp    = -math32.Pi * 0.5
	tau        = math32.Pi * 2
)

// angleDiff is the shortest signed rotation from a to b.
func angleDiff(a, b float32) float32 {
	d := math32.Mod(b-a+math32.Pi, tau)
	if d < 0 {
		d += tau
	}
	return d - math32.Pi
}

func (b *Batch) Line(from, to geom.Vec2, t float32, color colors.Color) {
	b.LineGradient(from, to, t, color, color)
}

// LineGradient draws a segment of thickness t as one quad. Zero-length lines draw nothing.
func (b *Batch) LineGradient(from, to geom.Vec2, t float32, fromColor, toColor colors.Color) {
	if from == to {
		return
	}
	n := to.Sub(from).Normal()
	half := geom.Vec2{X: n.Y, Y: -n.X}.Scale(t * 0.5)
	var z geom.Vec2
	b.pushQuad(
		from.Add(half), to.Add(half), to.Sub(half), from.Sub(half),
		z, z, z, z,
		fromColor, toColor, toColor, fromColor,
		flat,
	)
}

// BezierLine approximates a quadratic curve with steps segments.
func (b *Batch) BezierLine(from, ctrl, to geom.Vec2, steps int, t float32, color colors.Color) {
	prev := from
	for i := 1; i <= steps; i++ {
		at := geom.BezierQuad(from, ctrl, to, float32(i)/float32(steps))
		b.Line(prev, at, t, color)
		prev = at
	}
}

// BezierCubicLine approximates a cubic curve with steps segments.
func (b *Batch) BezierCubicLine(from, ctrl0, ctrl1, to geom.Vec2, steps int, t float32, color colors.Color) {
	prev := from
	for i := 1; i <= steps; i++ {
		at := geom.BezierCubic(from, ctrl0, ctrl1, to, float32(i)/float32(steps))
		b.Line(prev, at, t, color)
		prev = at
	}
}

func (b *Batch) Tri(p0, p1, p2 geom.Vec2, color colors.Color) {
	b.flatTri(p0, p1, p2, color)
}

func (b *Batch) TriGradient(p0, p1, p2 geom.Vec2, c0, c1, c2 colors.Color) {
	var z geom.Vec2
	b.pushTri(p0, p1, p2, z, z, z, c0, c1, c2, flat)
}

// TriTex draws a triangle sampling the current texture at t0..t2.
func (b *Batch) TriTex(p0, p1, p2, t0, t1, t2 geom.Vec2, color colors.Color) {
	b.pushTri(p0, p1, p2, t0, t1, t2, color, color, color, b.texWeight)
}

// TriLine outlines a triangle with a border of thickness t drawn inside it.
func (b *Batch) TriLine(p0, p1, p2 geom.Vec2, t float32, color colors.Color) {
	pts := [...]geom.Vec2{p0, p1, p2}
	b.polyLine(pts[:], t, color)
}

func (b *Batch) Rect(r geom.Rect, color colors.Color) {
	b.flatQuad(r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft(), color)
}

// RectGradient colors the corners clockwise from the top left.
func (b *Batch) RectGradient(r geom.Rect, tl, tr, br, bl colors.Color) {
	var z geom.Vec2
	b.pushQuad(r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft(), z, z, z, z, tl, tr, br, bl, flat)
}

// RectLine outlines r with four quads of thickness t inside it. A border
// thick enough to cover the rectangle draws it filled.
func (b *Batch) RectLine(r geom.Rect, t float32, color colors.Color) {
	if t*2 >= r.W || t*2 >= r.H {
		b.Rect(r, color)
		return
	}
	x0, y0, x1, y1 := r.Left(), r.Top(), r.Right(), r.Bottom()
	v := geom.V2
	b.flatQuad(v(x0, y0), v(x1-t, y0), v(x1-t, y0+t), v(x0, y0+t), color)
	b.flatQuad(v(x1-t, y0), v(x1, y0), v(x1, y1-t), v(x1-t, y1-t), color)
	b.flatQuad(v(x0+t, y1-t), v(x1, y1-t), v(x1, y1), v(x0+t, y1), color)
	b.flatQuad(v(x0, y0+t), v(x0+t, y0+t), v(x0+t, y1), v(x0, y1), color)
}

func (b *Batch) RectRounded(r geom.Rect, radius float32, steps int, color colors.Color) {
	b.RectRoundedCorners(r, radius, radius, radius, radius, steps, color)
}

func clampRadius(radius float32, r geom.Rect) float32 {
	return math32.Max(0, math32.Min(radius, math32.Min(r.W, r.H)*0.5))
}

// RectRoundedCorners draws r with one radius per corner, clockwise from the top left.
func (b *Batch) RectRoundedCorners(r geom.Rect, rtl, rtr, rbr, rbl float32, steps int, color colors.Color) {
	rtl, rtr, rbr, rbl = clampRadius(rtl, r), clampRadius(rtr, r), clampRadius(rbr, r), clampRadius(rbl, r)
	if (rtl <= 0 && rtr <= 0 && rbr <= 0 && rbl <= 0) || steps <= 0 {
		b.Rect(r, color)
		return
	}

	tl := geom.R(r.X, r.Y, rtl, rtl)
	tr := geom.R(r.Right()-rtr, r.Y, rtr, rtr)
	br := geom.R(r.Right()-rbr, r.Bottom()-rbr, rbr, rbr)
	bl := geom.R(r.X, r.Bottom()-rbl, rbl, rbl)

	b.SemiCircle(tl.BottomRight(), AngleUp, AngleLeft, rtl, steps, color, color)
	b.SemiCircle(tr.BottomLeft(), AngleUp, AngleRight, rtr, steps, color, color)
	b.SemiCircle(br.TopLeft(), AngleDown, AngleRight, rbr, steps, color, color)
	b.SemiCircle(bl.TopRight(), AngleDown, AngleLeft, rbl, steps, color, color)

	// top, right, bottom and left bands, then the middle
	b.flatQuad(tl.TopRight(), tr.TopLeft(), tr.BottomLeft(), tl.BottomRight(), color)
	b.flatQuad(tr.BottomLeft(), tr.BottomRight(), br.TopRight(), br.TopLeft(), color)
	b.flatQuad(bl.TopRight(), br.TopLeft(), br.BottomLeft(), bl.BottomRight(), color)
	b.flatQuad(tl.BottomLeft(), tl.BottomRight(), bl.TopRight(), bl.TopLeft(), color)
	b.flatQuad(tl.BottomRight(), tr.BottomLeft(), br.TopLeft(), bl.TopRight(), color)
}

// RectRoundedLine outlines a rounded rectangle with a border of thickness t.
func (b *Batch) RectRoundedLine(r geom.Rect, radius float32, steps int, t float32, color colors.Color) {
	radius = clampRadius(radius, r)
	if radius <= 0 || steps <= 0 {
		b.RectLine(r, t, color)
		return
	}
	if t*2 >= r.W || t*2 >= r.H {
		b.RectRounded(r, radius, steps, color)
		return
	}

	x0, y0, x1, y1 := r.Left(), r.Top(), r.Right(), r.Bottom()
	v := geom.V2
	b.SemiCircleLine(v(x0+radius, y0+radius), AngleUp, AngleLeft, radius, steps, t, color)
	b.SemiCircleLine(v(x1-radius, y0+radius), AngleUp, AngleRight, radius, steps, t, color)
	b.SemiCircleLine(v(x1-radius, y1-radius), AngleDown, AngleRight, radius, steps, t, color)
	b.SemiCircleLine(v(x0+radius, y1-radius), AngleDown, AngleLeft, radius, steps, t, color)

	b.flatQuad(v(x0+radius, y0), v(x1-radius, y0), v(x1-radius, y0+t), v(x0+radius, y0+t), color)
	b.flatQuad(v(x1-t, y0+radius), v(x1, y0+radius), v(x1, y1-radius), v(x1-t, y1-radius), color)
	b.flatQuad(v(x0+radius, y1-t), v(x1-radius, y1-t), v(x1-radius, y1), v(x0+radius, y1), color)
	b.flatQuad(v(x0, y0+radius), v(x0+t, y0+radius), v(x0+t, y1-radius), v(x0, y1-radius), color)
}

// SemiCircle fills the arc from start to end (the short way round) with steps triangles.
func (b *Batch) SemiCircle(center geom.Vec2, start, end, radius float32, steps int, centerColor, edgeColor colors.Color) {
	if steps <= 0 || radius <= 0 {
		return
	}
	add := angleDiff(start, end)
	last := geom.FromAngle(start, radius)
	for i := 1; i <= steps; i++ {
		next := geom.FromAngle(start+add*(float32(i)/float32(steps)), radius)
		b.TriGradient(center.Add(last), center.Add(next), center, edgeColor, edgeColor, centerColor)
		last = next
	}
}

// SemiCircleLine outlines an arc with steps quads of thickness t.
func (b *Batch) SemiCircleLine(center geom.Vec2, start, end, radius float32, steps int, t float32, color colors.Color) {
	if steps <= 0 || radius <= 0 {
		return
	}
	if t >= radius {
		b.SemiCircle(center, start, end, radius, steps, color, color)
		return
	}
	add := angleDiff(start, end)
	lastInner := geom.FromAngle(start, radius-t)
	lastOuter := geom.FromAngle(start, radius)
	for i := 1; i <= steps; i++ {
		a := start + add*(float32(i)/float32(steps))
		nextInner := geom.FromAngle(a, radius-t)
		nextOuter := geom.FromAngle(a, radius)
		b.flatQuad(center.Add(lastInner), center.Add(lastOuter), center.Add(nextOuter), center.Add(nextInner), color)
		lastInner, lastOuter = nextInner, nextOuter
	}
}

// Circle fills a circle as a fan of steps triangles.
func (b *Batch) Circle(center geom.Vec2, radius float32, steps int, color colors.Color) {
	b.CircleGradient(center, radius, steps, color, color)
}

func (b *Batch) CircleGradient(center geom.Vec2, radius float32, steps int, centerColor, edgeColor colors.Color) {
	if steps <= 0 || radius <= 0 {
		return
	}
	last := geom.V2(center.X+radius, center.Y)
	for i := 1; i <= steps; i++ {
		next := center.Add(geom.FromAngle(float32(i)/float32(steps)*tau, radius))
		b.TriGradient(last, next, center, edgeColor, edgeColor, centerColor)
		last = next
	}
}

// CircleLine outlines a circle with steps quads of thickness t drawn inside the radius.
func (b *Batch) CircleLine(center geom.Vec2, radius, t float32, steps int, color colors.Color) {
	if steps <= 0 || radius <= 0 {
		return
	}
	if t >= radius {
		b.Circle(center, radius, steps, color)
		return
	}
	lastInner := geom.V2(center.X+radius-t, center.Y)
	lastOuter := geom.V2(center.X+radius, center.Y)
	for i := 1; i <= steps; i++ {
		a := float32(i) / float32(steps) * tau
		nextInner := center.Add(geom.FromAngle(a, radius-t))
		nextOuter := center.Add(geom.FromAngle(a, radius))
		b.flatQuad(lastInner, lastOuter, nextOuter, nextInner, color)
		lastInner, lastOuter = nextInner, nextOuter
	}
}

func (b *Batch) Quad(p0, p1, p2, p3 geom.Vec2, color colors.Color) {
	b.flatQuad(p0, p1, p2, p3, color)
}

func (b *Batch) QuadGradient(p0, p1, p2, p3 geom.Vec2, c0, c1, c2, c3 colors.Color) {
	var z geom.Vec2
	b.pushQuad(p0, p1, p2, p3, z, z, z, z, c0, c1, c2, c3, flat)
}

// QuadTex draws a quad sampling the current texture at t0..t3.
func (b *Batch) QuadTex(p0, p1, p2, p3, t0, t1, t2, t3 geom.Vec2, color colors.Color) {
	b.pushQuad(p0, p1, p2, p3, t0, t1, t2, t3, color, color, color, color, b.texWeight)
}

// QuadLine outlines a convex quad with a border of thickness t drawn inside it.
func (b *Batch) QuadLine(p0, p1, p2, p3 geom.Vec2, t float32, color colors.Color) {
	pts := [...]geom.Vec2{p0, p1, p2, p3}
	b.polyLine(pts[:], t, color)
}

// ArrowHead draws a triangle pointing from tip in direction angle, length long.
func (b *Batch) ArrowHead(tip geom.Vec2, angle, length float32, color colors.Color) {
	back := angle + math32.Pi
	b.flatTri(
		tip,
		tip.Add(geom.FromAngle(back-math32.Pi/6, length)),
		tip.Add(geom.FromAngle(back+math32.Pi/6, length)),
		color,
	)
}

// polyLine outlines a convex polygon (3 or 4 points) with one quad per edge,
// mitered at the corners. When the border swallows the shape it is filled instead.
func (b *Batch) polyLine(pts []geom.Vec2, t float32, color colors.Color) {
	n := len(pts)
	area := polyArea(pts)
	if area == 0 {
		return
	}
	sign := float32(1)
	if area < 0 {
		sign = -1
	}

	var inner [4]geom.Vec2
	for i := range pts {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		p, ok := insetCorner(prev, cur, next, t*sign)
		if !ok {
			return
		}
		inner[i] = p
	}
	// a border past the inradius turns the inner polygon inside out
	for i := range pts {
		j := (i + 1) % n
		if inner[j].Sub(inner[i]).Dot(pts[j].Sub(pts[i])) <= 0 {
			b.fillPoly(pts, color)
			return
		}
	}

	for i := range pts {
		j := (i + 1) % n
		b.flatQuad(pts[i], pts[j], inner[j], inner[i], color)
	}
}

func (b *Batch) fillPoly(pts []geom.Vec2, color colors.Color) {
	if len(pts) == 3 {
		b.flatTri(pts[0], pts[1], pts[2], color)
		return
	}
	b.flatQuad(pts[0], pts[1], pts[2], pts[3], color)
}

// polyArea is twice the signed area (shoelace).
func polyArea(pts []geom.Vec2) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a
}

// insetCorner moves both edges meeting at cur inward by d and returns where they cross.
func insetCorner(prev, cur, next geom.Vec2, d float32) (geom.Vec2, bool) {
	d0 := cur.Sub(prev).Normal()
	d1 := next.Sub(cur).Normal()
	n0 := geom.Vec2{X: -d0.Y, Y: d0.X}.Scale(d)
	n1 := geom.Vec2{X: -d1.Y, Y: d1.X}.Scale(d)
	return intersect(prev.Add(n0), d0, cur.Add(n1), d1)
}

func cross(a, b geom.Vec2) float32 { return a.X*b.Y - a.Y*b.X }

func intersect(a0, d0, a1, d1 geom.Vec2) (geom.Vec2, bool) {
	den := cross(d0, d1)
	if den == 0 {
		return geom.Vec2{}, false
	}
	s := cross(a1.Sub(a0), d1) / den
	return a0.Add(d0.Scale(s)), true
}
