package kml

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/zone-enrichment/internal/domain"
	"github.com/zone-enrichment/internal/geoindex"
)

// freguesiaAttr is the metadata field naming the civil parish on parish
// placemarks.
const freguesiaAttr = "Freguesia"

// minReusableSize guards against reusing a truncated unzipped parish
// file from an interrupted earlier run.
const minReusableSize = 10_000_000

// Loader builds the spatial indexes from KML sources at startup.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// ListZoneFiles returns the zone-definition KML paths under dir,
// excluding freguesia files. A missing directory simply yields no zone
// files; individual files that later fail to open are fatal.
func ListZoneFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read zones dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".kml") || strings.Contains(name, "freguesia") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// BuildZoneIndexes parses each zone-definition file, classifies it by
// file name and accumulates per-sector polygon/label pairs, then
// bulk-loads one index per sector. Zone labels are composite:
// "<Sector> - <ZoneName>". Placemarks without a name and files whose
// name matches no sector contribute nothing.
func (l *Loader) BuildZoneIndexes(paths []string) (map[string]*geoindex.Index, error) {
	bySectorPolys := make(map[string][]orb.Polygon)
	bySectorLabels := make(map[string][]string)

	for _, path := range paths {
		sector, ok := domain.SectorFromFilename(filepath.Base(path))
		if !ok {
			l.logger.Debug("Skipping unclassified zone file", zap.String("path", path))
			continue
		}

		err := l.forEachPlacemarkInFile(path, func(pm *Placemark) error {
			zoneName := strings.TrimSpace(pm.Name)
			if zoneName == "" {
				return nil
			}
			polygons := pm.Geometries()
			if len(polygons) == 0 {
				return nil
			}

			label := sector + " - " + zoneName
			bySectorPolys[sector] = append(bySectorPolys[sector], polygons...)
			for range polygons {
				bySectorLabels[sector] = append(bySectorLabels[sector], label)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load zone file %s: %w", path, err)
		}
	}

	indexes := make(map[string]*geoindex.Index, len(bySectorPolys))
	for sector, polygons := range bySectorPolys {
		indexes[sector] = geoindex.New(polygons, bySectorLabels[sector])
		l.logger.Info("Zone index built",
			zap.String("sector", sector),
			zap.Int("polygons", len(polygons)),
		)
	}
	return indexes, nil
}

// BuildFreguesiaIndex streams the parish-definition file and indexes
// every polygon under its parish name, taken from the "Freguesia"
// metadata field. Placemarks without that field are skipped.
func (l *Loader) BuildFreguesiaIndex(path string) (*geoindex.Index, error) {
	var polygons []orb.Polygon
	var labels []string

	err := l.forEachPlacemarkInFile(path, func(pm *Placemark) error {
		name := pm.SimpleDataValue(freguesiaAttr)
		if name == "" {
			return nil
		}
		for _, poly := range pm.Geometries() {
			polygons = append(polygons, poly)
			labels = append(labels, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load freguesias file %s: %w", path, err)
	}

	l.logger.Info("Freguesia index built", zap.Int("polygons", len(polygons)))
	return geoindex.New(polygons, labels), nil
}

func (l *Loader) forEachPlacemarkInFile(path string, fn func(*Placemark) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return forEachPlacemark(bufio.NewReader(f), fn)
}

// EnsureUnzipped decompresses the gzipped parish KML to outPath,
// reusing an existing unzipped copy when it looks non-trivial. The
// gzipped source must exist.
func EnsureUnzipped(gzPath, outPath string) (string, error) {
	if _, err := os.Stat(gzPath); err != nil {
		return "", fmt.Errorf("missing gzipped freguesias file at %s: %w", gzPath, err)
	}

	if info, err := os.Stat(outPath); err == nil && info.Size() > minReusableSize {
		return outPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create dir for %s: %w", outPath, err)
	}

	in, err := os.Open(gzPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return "", fmt.Errorf("failed to read gzip %s: %w", gzPath, err)
	}
	defer gz.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, gz); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to unzip %s: %w", gzPath, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return outPath, nil
}
