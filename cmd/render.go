package main

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/royalcat/geoseed/pointfile"
	"github.com/royalcat/geoseed/region"
	"github.com/urfave/cli/v3"
)

func render(ctx *cli.Context) error {
	setupLogging(false)
	log := slog.Default()

	points, meta, err := pointfile.LoadFile(ctx.String("points"))
	if err != nil {
		return err
	}
	log.Info("points loaded",
		"count", len(points),
		"min_dist", meta.MinDist,
		"created", meta.DateCreated)

	var reg region.Region
	haveRegion := false
	if input := ctx.String("input"); input != "" {
		regions, err := readRegions(input)
		if err != nil {
			return err
		}
		var merged orb.MultiPolygon
		for _, r := range regions {
			merged = append(merged, r.Geometry()...)
		}
		reg = region.FromMultiPolygon(merged)
		haveRegion = true
	}

	var bound orb.Bound
	switch {
	case haveRegion:
		bound = reg.Bound()
	case len(points) > 0:
		bound = orb.MultiPoint(points).Bound()
	default:
		return fmt.Errorf("nothing to render")
	}

	if viewport := ctx.String("bound"); viewport != "" {
		b, err := parseBound(viewport)
		if err != nil {
			return err
		}
		if haveRegion {
			reg = reg.Clip(b)
		}
		kept := points[:0]
		for _, p := range points {
			if b.Contains(p) {
				kept = append(kept, p)
			}
		}
		points = kept
		bound = b
	}

	width := ctx.Int("width")
	w := bound.Max.X() - bound.Min.X()
	h := bound.Max.Y() - bound.Min.Y()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("degenerate render bound %v", bound)
	}
	scale := float64(width) / w
	height := int(math.Ceil(h * scale))

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// image y axis grows downward
	toImage := func(p orb.Point) (float64, float64) {
		return (p.X() - bound.Min.X()) * scale, float64(height) - (p.Y()-bound.Min.Y())*scale
	}

	if haveRegion {
		dc.SetFillRule(gg.FillRuleEvenOdd)
		for _, poly := range reg.Geometry() {
			for _, ring := range poly {
				dc.NewSubPath()
				for _, p := range ring {
					dc.LineTo(toImage(p))
				}
				dc.ClosePath()
			}
		}
		dc.SetRGB(0.88, 0.91, 0.88)
		dc.FillPreserve()
		dc.SetRGB(0.45, 0.45, 0.45)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}

	radius := math.Max(1.5, meta.MinDist*scale/8)
	dc.SetRGB(0.75, 0.2, 0.2)
	for _, p := range points {
		x, y := toImage(p)
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}

	out := ctx.String("output")
	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("error saving image: %w", err)
	}
	log.Info("render saved", "file", out, "width", width, "height", height)
	return nil
}

func parseBound(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bound must be minx,miny,maxx,maxy: %q", s)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("bad bound value %q: %w", part, err)
		}
		vals[i] = v
	}
	return orb.Bound{
		Min: orb.Point{vals[0], vals[1]},
		Max: orb.Point{vals[2], vals[3]},
	}, nil
}
