package pointfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/orb"
)

func Load(r io.Reader) ([]orb.Point, Metadata, error) {
	magic := make([]byte, len(magicBytes))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, Metadata{}, fmt.Errorf("error reading magic bytes: %w", err)
	}
	if !bytes.Equal(magic, magicBytes) {
		return nil, Metadata{}, fmt.Errorf("not a geoseed points file")
	}

	var level uint32
	if err := binary.Read(r, binary.LittleEndian, &level); err != nil {
		return nil, Metadata{}, fmt.Errorf("error reading compatibility level: %w", err)
	}
	if level != compatibilityLevel {
		return nil, Metadata{}, fmt.Errorf("unsupported compatibility level: %d", level)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, Metadata{}, err
	}
	defer zr.Close()

	var (
		meta    Metadata
		created int64
		count   int64
	)
	for _, v := range []any{&meta.MinDist, &meta.Seed, &created, &count} {
		if err := binary.Read(zr, binary.LittleEndian, v); err != nil {
			return nil, Metadata{}, fmt.Errorf("error reading header: %w", err)
		}
	}
	meta.DateCreated = time.Unix(created, 0).UTC()

	if count < 0 {
		return nil, Metadata{}, fmt.Errorf("invalid point count: %d", count)
	}
	coords := make([]float64, count*2)
	if err := binary.Read(zr, binary.LittleEndian, coords); err != nil {
		return nil, Metadata{}, fmt.Errorf("error reading points: %w", err)
	}

	points := make([]orb.Point, count)
	for i := range points {
		points[i] = orb.Point{coords[2*i], coords[2*i+1]}
	}
	return points, meta, nil
}

func LoadFile(path string) ([]orb.Point, Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("error opening points file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
