package usecase

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zone-enrichment/internal/domain"
	"github.com/zone-enrichment/internal/geoindex"
	"github.com/zone-enrichment/internal/pkg/metrics"
)

// EnrichmentUseCase resolves asset records to zone and freguesia labels
// against the read-only index registry. Lookups are pure in-memory
// computation; there is no I/O on this path.
type EnrichmentUseCase struct {
	registry *geoindex.Registry
	logger   *zap.Logger
}

func NewEnrichmentUseCase(registry *geoindex.Registry, logger *zap.Logger) *EnrichmentUseCase {
	return &EnrichmentUseCase{
		registry: registry,
		logger:   logger,
	}
}

// EnrichRecords produces one output row per input row, in order. Failures
// are row-local: a record whose coordinates do not parse gets nil labels
// and the batch continues.
func (uc *EnrichmentUseCase) EnrichRecords(records []domain.AssetRecord) []domain.EnrichedRecord {
	enriched := make([]domain.EnrichedRecord, len(records))
	for i, record := range records {
		enriched[i] = uc.enrichRecord(record)
	}
	metrics.EnrichRowsTotal.Add(float64(len(records)))
	uc.logger.Debug("Batch enriched", zap.Int("rows", len(records)))
	return enriched
}

func (uc *EnrichmentUseCase) enrichRecord(record domain.AssetRecord) domain.EnrichedRecord {
	out := domain.EnrichedRecord{AssetRecord: record}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(record.Lat), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(record.Long), 64)
	if latErr != nil || lonErr != nil {
		metrics.EnrichRowsFailedTotal.Inc()
		return out
	}

	// Zone: only when the normalized sector has a built index.
	sector := domain.NormalizeSector(record.Sector)
	if idx, ok := uc.registry.Zone(sector); ok {
		if label, found := idx.Lookup(lat, lon); found {
			out.Zone = &label
		}
	}
	if out.Zone == nil {
		metrics.ZoneMissesTotal.Inc()
	}

	// Freguesia: always attempted.
	if label, found := uc.registry.Freguesias.Lookup(lat, lon); found {
		out.Freguesia = &label
	} else {
		metrics.FreguesiaMissesTotal.Inc()
	}

	return out
}
