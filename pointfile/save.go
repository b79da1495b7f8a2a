// Package pointfile persists sampled point sets to a small versioned binary
// format: magic bytes, a compatibility level, then a zstd-compressed payload
// of metadata and coordinates. Downstream tools (Voronoi tilers, renderers)
// load the points without resampling.
package pointfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/orb"
)

var magicBytes = []byte("GSEED")

const compatibilityLevel uint32 = 1

type Metadata struct {
	MinDist     float64
	Seed        int64
	DateCreated time.Time
}

func Save(w io.Writer, points []orb.Point, meta Metadata) error {
	if _, err := w.Write(magicBytes); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, compatibilityLevel); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	header := []any{
		meta.MinDist,
		meta.Seed,
		meta.DateCreated.Unix(),
		int64(len(points)),
	}
	for _, v := range header {
		if err := binary.Write(zw, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	coords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X(), p.Y())
	}
	if err := binary.Write(zw, binary.LittleEndian, coords); err != nil {
		return err
	}

	return zw.Close()
}

func SaveFile(path string, points []orb.Point, meta Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating points file: %w", err)
	}
	defer f.Close()

	if err := Save(f, points, meta); err != nil {
		return fmt.Errorf("error saving points file: %w", err)
	}
	return nil
}
