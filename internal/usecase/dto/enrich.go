package dto

// EnrichRequest carries the form parameters of an /enrich upload: the
// requested output format and the input column names, which default to
// the configured ones but may be overridden per request by the caller.
type EnrichRequest struct {
	OutputFormat string `validate:"required,oneof=csv xlsx"`
	AssetNameCol string `validate:"required"`
	LatCol       string `validate:"required"`
	LongCol      string `validate:"required"`
	SectorCol    string `validate:"required"`
}

// HealthResponse reports which indexes a running process has loaded.
type HealthResponse struct {
	OK               bool     `json:"ok"`
	ZonesLoaded      []string `json:"zones_loaded"`
	FreguesiaLoaded  bool     `json:"freguesia_loaded"`
	FreguesiaPolygon int      `json:"freguesia_polygons"`
}
