package diagnostics

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajplan/internal/pathgeom"
)

// PathProjection renders the path's configuration-space projection
// onto axes (xAxis, yAxis) as a braille canvas, sampling at
// samples+1 evenly spaced arc lengths.
func PathProjection(path *pathgeom.Path, xAxis, yAxis, width, height, samples int) (*Canvas, error) {
	if path.Length == 0 || samples < 1 {
		return NewCanvas(width, height), nil
	}

	points := make([]struct{ X, Y float64 }, samples+1)
	for i := 0; i <= samples; i++ {
		s := path.Length * float64(i) / float64(samples)
		cfg := path.Config(s)
		if xAxis >= len(cfg) || yAxis >= len(cfg) {
			return nil, fmt.Errorf("diagnostics: axis index out of range for dimension %d", len(cfg))
		}
		points[i] = struct{ X, Y float64 }{cfg[xAxis], cfg[yAxis]}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = minF(minX, p.X), maxF(maxX, p.X)
		minY, maxY = minF(minY, p.Y), maxF(maxY, p.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	subW, subH := width*2, height*4
	canvas := NewCanvas(width, height)

	toSub := func(p struct{ X, Y float64 }) (int, int) {
		x := int((p.X - minX) / rangeX * float64(subW-1))
		y := subH - 1 - int((p.Y-minY)/rangeY*float64(subH-1))
		return x, y
	}

	prevX, prevY := toSub(points[0])
	canvas.Set(prevX, prevY)
	for _, p := range points[1:] {
		x, y := toSub(p)
		canvas.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}

	return canvas, nil
}

// PathProjectionString renders PathProjection to a plain string,
// suitable for direct terminal output.
func PathProjectionString(path *pathgeom.Path, xAxis, yAxis, width, height, samples int) (string, error) {
	canvas, err := PathProjection(path, xAxis, yAxis, width, height, samples)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(canvas.String())
	return sb.String(), nil
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
