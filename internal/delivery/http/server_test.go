package http_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zone-enrichment/internal/config"
	httpDelivery "github.com/zone-enrichment/internal/delivery/http"
	"github.com/zone-enrichment/internal/delivery/http/handler"
	"github.com/zone-enrichment/internal/domain"
	"github.com/zone-enrichment/internal/geoindex"
	"github.com/zone-enrichment/internal/usecase"
	"github.com/zone-enrichment/internal/usecase/dto"
)

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{APIKey: apiKey},
		Columns: config.ColumnsConfig{
			AssetName: "[Asset Name]",
			Lat:       "[Lat]",
			Long:      "[Long]",
			Sector:    "[Sector]",
		},
	}
}

func testServer(t *testing.T, apiKey string) *httpDelivery.Server {
	t.Helper()

	square := orb.Polygon{orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	retail := geoindex.New([]orb.Polygon{square}, []string{"Retail - Baixa"})
	freg := geoindex.New(
		[]orb.Polygon{{orb.Ring{{-1, -1}, {10, -1}, {10, 10}, {-1, 10}, {-1, -1}}}},
		[]string{"Alvalade"},
	)
	registry := geoindex.NewRegistry(map[string]*geoindex.Index{domain.SectorRetail: retail}, freg)

	logger := zap.NewNop()
	cfg := testConfig(apiKey)
	enrichUC := usecase.NewEnrichmentUseCase(registry, logger)

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewEnrichHandler(enrichUC, cfg.Columns, logger),
		handler.NewHealthHandler(registry),
	)
}

func multipartBody(t *testing.T, csvContent string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if csvContent != "" {
		fw, err := mw.CreateFormFile("assets", "assets.csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(csvContent))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestEnrich_CSV(t *testing.T) {
	srv := testServer(t, "")

	input := "[Asset Name],[Lat],[Long],[Sector]\n" +
		"Shop A,2,2,retail\n" +
		"Bad Row,N/A,2,Retail\n" +
		"Tower B,2,2,Office\n"
	body, contentType := multipartBody(t, input, nil)

	req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "assets_enriched.csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Row 1: retail (case-folded) resolves zone and freguesia.
	assert.Equal(t, []string{"Shop A", "2", "2", "retail", "Retail - Baixa", "Alvalade"}, rows[1])
	// Row 2: unparseable latitude, both outputs empty, batch unaffected.
	assert.Equal(t, []string{"Bad Row", "N/A", "2", "Retail", "", ""}, rows[2])
	// Row 3: no Office index, freguesia still resolved.
	assert.Equal(t, []string{"Tower B", "2", "2", "Office", "", "Alvalade"}, rows[3])
}

func TestEnrich_ColumnOverrides(t *testing.T) {
	srv := testServer(t, "")

	input := "name,latitude,longitude,use\nShop A,2,2,Retail\n"
	body, contentType := multipartBody(t, input, map[string]string{
		"asset_name_col": "name",
		"lat_col":        "latitude",
		"lon_col":        "longitude",
		"sector_col":     "use",
	})

	req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Retail - Baixa", rows[1][4])
}

func TestEnrich_MissingFileField(t *testing.T) {
	srv := testServer(t, "")

	body, contentType := multipartBody(t, "", map[string]string{"output_format": "csv"})
	req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestEnrich_InvalidOutputFormat(t *testing.T) {
	srv := testServer(t, "")

	body, contentType := multipartBody(t, "[Asset Name],[Lat],[Long],[Sector]\n", map[string]string{
		"output_format": "pdf",
	})
	req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestEnrich_MissingColumn(t *testing.T) {
	srv := testServer(t, "")

	body, contentType := multipartBody(t, "[Asset Name],[Lat],[Long]\n", nil)
	req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestEnrich_APIKey(t *testing.T) {
	srv := testServer(t, "secret")
	input := "[Asset Name],[Lat],[Long],[Sector]\nShop A,2,2,Retail\n"

	t.Run("wrong key is rejected", func(t *testing.T) {
		body, contentType := multipartBody(t, input, nil)
		req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-API-Key", "nope")

		resp, err := srv.App().Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct key passes", func(t *testing.T) {
		body, contentType := multipartBody(t, input, nil)
		req := httptest.NewRequest(nethttp.MethodPost, "/enrich", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-API-Key", "secret")

		resp, err := srv.App().Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	})
}

func TestHealth(t *testing.T) {
	srv := testServer(t, "secret")

	// Health is not behind the API key.
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.True(t, health.OK)
	assert.Equal(t, []string{"Retail"}, health.ZonesLoaded)
	assert.True(t, health.FreguesiaLoaded)
	assert.Equal(t, 1, health.FreguesiaPolygon)
}
