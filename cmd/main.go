package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/royalcat/geoseed/internal/stats"
	"github.com/royalcat/geoseed/pointfile"
	"github.com/royalcat/geoseed/poisson"
	"github.com/royalcat/geoseed/region"
	"github.com/sourcegraph/conc/pool"

	_ "net/http/pprof"

	_ "github.com/KimMachineGun/automemlimit"
	"github.com/urfave/cli/v3"
	_ "go.uber.org/automaxprocs"
)

func main() {
	app := &cli.App{
		Name:        "geoseed",
		Description: "Evenly spaced quasi-random point seeding for polygonal regions",
		Commands: []*cli.Command{
			{
				Name:    "sample",
				Aliases: []string{"s"},
				Usage:   "samples minimum-distance points inside the polygons of a GeoJSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "input",
						Aliases:   []string{"i"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "output",
						Aliases:   []string{"o"},
						Required:  true,
						TakesFile: true,
					},
					&cli.Float64Flag{
						Name:     "min-dist",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "minimum distance between points, in the units of the input coordinates",
					},
					&cli.IntFlag{
						Name:  "k",
						Value: poisson.DefaultK,
						Usage: "candidates tried around each active point",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "random seed, fixed seed gives reproducible output",
					},
					&cli.IntFlag{
						Name:        "threads",
						Aliases:     []string{"t"},
						DefaultText: "max",
					},
					&cli.StringFlag{
						Name:  "strategy",
						Value: "polygon",
						Usage: "polygon (boundary-aware sampler) or bbox (fill bounding box, filter)",
					},
					&cli.StringFlag{
						Name:      "geojson",
						TakesFile: true,
						Usage:     "also write the points as a GeoJSON file",
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "collect runtime stats and write them next to the output",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
					},
					&cli.StringFlag{
						Name:        "pprof.listen",
						DefaultText: "",
					},
				},
				Action: sample,
			},
			{
				Name:  "render",
				Usage: "renders a sampled point set to a PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "points",
						Aliases:   []string{"p"},
						Required:  true,
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:      "input",
						Aliases:   []string{"i"},
						TakesFile: true,
						Usage:     "GeoJSON file with the sampled regions, drawn under the points",
					},
					&cli.StringFlag{
						Name:      "output",
						Aliases:   []string{"o"},
						Value:     "points.png",
						TakesFile: true,
					},
					&cli.StringFlag{
						Name:  "bound",
						Usage: "viewport as minx,miny,maxx,maxy; clips region and points",
					},
					&cli.IntFlag{
						Name:  "width",
						Value: 1024,
					},
				},
				Action: render,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func sample(ctx *cli.Context) error {
	setupLogging(ctx.Bool("verbose"))
	log := slog.Default()

	minDist := ctx.Float64("min-dist")
	k := ctx.Int("k")
	seed := ctx.Int64("seed")
	strategy := ctx.String("strategy")

	threads := ctx.Int("threads")
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	log = log.With("threads", threads)

	if pprofListen := ctx.String("pprof.listen"); pprofListen != "" {
		go func() {
			log.Info("Starting pprof server")
			err := http.ListenAndServe(pprofListen, nil)
			if err != nil {
				log.Error("Error starting pprof server", "error", err)
			}
		}()
	}

	regions, err := readRegions(ctx.String("input"))
	if err != nil {
		return err
	}
	if len(regions) == 0 {
		return fmt.Errorf("no polygonal features in %s", ctx.String("input"))
	}

	var collector *stats.Collector
	if ctx.Bool("stats") {
		collector, err = stats.NewCollector(time.Second)
		if err != nil {
			return fmt.Errorf("error creating stats collector: %w", err)
		}
		collector.Start()
	}

	bar := pb.StartNew(len(regions))
	bar.Set("prefix", "sampling features")

	results := make([][]orb.Point, len(regions))
	errs := make([]error, len(regions))
	workers := pool.New().WithMaxGoroutines(threads)
	for i, reg := range regions {
		i, reg := i, reg
		workers.Go(func() {
			defer bar.Increment()
			switch strategy {
			case "bbox":
				results[i] = region.FillBound(reg, minDist, k)
			case "polygon":
				cfg := poisson.ConfigDefault()
				cfg.K = k
				cfg.Seed = seed + int64(i)
				results[i], errs[i] = poisson.NewSampler(cfg, log).Sample(reg, minDist)
			default:
				errs[i] = fmt.Errorf("unknown strategy: %s", strategy)
			}
		})
	}
	workers.Wait()
	bar.Finish()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	var points []orb.Point
	for _, r := range results {
		points = append(points, r...)
	}
	log.Info("sampling complete",
		"features", len(regions),
		"points", humanize.Comma(int64(len(points))))

	meta := pointfile.Metadata{
		MinDist:     minDist,
		Seed:        seed,
		DateCreated: time.Now(),
	}
	if err := pointfile.SaveFile(ctx.String("output"), points, meta); err != nil {
		return err
	}
	log.Info("points saved", "file", ctx.String("output"))

	if path := ctx.String("geojson"); path != "" {
		if err := writePointsGeoJSON(path, points); err != nil {
			return fmt.Errorf("error writing geojson: %w", err)
		}
	}

	if collector != nil {
		report := collector.Stop()
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		statsFile := ctx.String("output") + ".stats.json"
		if err := os.WriteFile(statsFile, data, 0644); err != nil {
			return err
		}
		log.Info("runtime stats written", "file", statsFile)
	}

	return nil
}

func readRegions(path string) ([]region.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	var geoms []orb.Geometry
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	} else if f, err := geojson.UnmarshalFeature(data); err == nil {
		geoms = append(geoms, f.Geometry)
	} else if g, err := geojson.UnmarshalGeometry(data); err == nil {
		geoms = append(geoms, g.Geometry())
	} else {
		return nil, fmt.Errorf("input is not valid GeoJSON: %s", path)
	}

	regions := make([]region.Region, 0, len(geoms))
	for _, g := range geoms {
		reg, ok := region.FromGeometry(g)
		if !ok {
			slog.Warn("skipping non-polygonal feature", "type", g.GeoJSONType())
			continue
		}
		regions = append(regions, reg)
	}
	return regions, nil
}

func writePointsGeoJSON(path string, points []orb.Point) error {
	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		fc.Append(geojson.NewFeature(p))
	}
	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
