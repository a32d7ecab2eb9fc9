package handler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zone-enrichment/internal/config"
	"github.com/zone-enrichment/internal/export"
	"github.com/zone-enrichment/internal/pkg/errors"
	"github.com/zone-enrichment/internal/pkg/metrics"
	"github.com/zone-enrichment/internal/pkg/utils"
	"github.com/zone-enrichment/internal/pkg/validator"
	"github.com/zone-enrichment/internal/usecase"
	"github.com/zone-enrichment/internal/usecase/dto"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EnrichHandler serves the asset enrichment upload endpoint.
type EnrichHandler struct {
	enrichUC *usecase.EnrichmentUseCase
	columns  config.ColumnsConfig
	logger   *zap.Logger
}

func NewEnrichHandler(enrichUC *usecase.EnrichmentUseCase, columns config.ColumnsConfig, logger *zap.Logger) *EnrichHandler {
	return &EnrichHandler{
		enrichUC: enrichUC,
		columns:  columns,
		logger:   logger,
	}
}

// Enrich godoc
// @Summary Enrich an assets file with Zone and Freguesia labels
// @Description Accepts a CSV upload, resolves each row's coordinates against the zone index of its sector and against the freguesia index, and returns the enriched table as a CSV or XLSX attachment.
// @Tags Enrichment
// @Accept multipart/form-data
// @Produce text/csv
// @Param assets formData file true "Assets CSV file"
// @Param output_format formData string false "csv or xlsx" default(csv)
// @Param asset_name_col formData string false "Asset name column override"
// @Param lat_col formData string false "Latitude column override"
// @Param lon_col formData string false "Longitude column override"
// @Param sector_col formData string false "Sector column override"
// @Success 200 {file} file "Enriched assets file"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /enrich [post]
func (h *EnrichHandler) Enrich(c *fiber.Ctx) error {
	metrics.EnrichRequestsTotal.Inc()
	start := time.Now()
	defer func() {
		metrics.EnrichDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}()

	fileHeader, err := c.FormFile("assets")
	if err != nil {
		return utils.SendError(c, errors.ErrMissingAssetsFile)
	}

	req := dto.EnrichRequest{
		OutputFormat: strings.ToLower(strings.TrimSpace(c.FormValue("output_format", "csv"))),
		AssetNameCol: c.FormValue("asset_name_col", h.columns.AssetName),
		LatCol:       c.FormValue("lat_col", h.columns.Lat),
		LongCol:      c.FormValue("lon_col", h.columns.Long),
		SectorCol:    c.FormValue("sector_col", h.columns.Sector),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidOutputFormat)
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Warn("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidAssetsFile)
	}
	defer f.Close()

	records, err := export.ReadAssets(f, export.Columns{
		AssetName: req.AssetNameCol,
		Lat:       req.LatCol,
		Long:      req.LongCol,
		Sector:    req.SectorCol,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	enriched := h.enrichUC.EnrichRecords(records)
	h.logger.Info("Assets enriched",
		zap.Int("rows", len(enriched)),
		zap.String("output_format", req.OutputFormat),
	)

	var buf bytes.Buffer
	switch req.OutputFormat {
	case "xlsx":
		if err := export.WriteXLSX(&buf, enriched); err != nil {
			h.logger.Error("Failed to write xlsx", zap.Error(err))
			return utils.SendError(c, errors.ErrInternalServer)
		}
		c.Set(fiber.HeaderContentType, xlsxMIME)
		c.Set(fiber.HeaderContentDisposition, attachment("assets_enriched.xlsx"))
	default:
		if err := export.WriteCSV(&buf, enriched); err != nil {
			h.logger.Error("Failed to write csv", zap.Error(err))
			return utils.SendError(c, errors.ErrInternalServer)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, attachment("assets_enriched.csv"))
	}

	return c.Send(buf.Bytes())
}

func attachment(filename string) string {
	return fmt.Sprintf(`attachment; filename=%q`, filename)
}
