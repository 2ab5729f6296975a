package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adboard/internal/adapter/memstore"
	"adboard/internal/adapter/usecase"
	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, repo port.CampaignRepository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats := usecase.NewStatsService(repo, memstore.New(), logger)
	reports := usecase.NewReportService(repo)
	campaigns := usecase.NewCampaignService(repo)
	return NewHandler(stats, reports, campaigns, logger)
}

func TestStatsOverviewEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{
		{ID: "c1", Status: domain.StatusActive, Budget: 5000, ViewsCount: 1500, ClicksCount: 300, ConversionsCount: 50},
		{ID: "c2", Status: domain.StatusActive, Budget: 3000, ViewsCount: 2000, ClicksCount: 400, ConversionsCount: 75},
	}, nil)

	h := newTestHandler(t, repo)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	// every named statistic must be present in the payload
	var payload map[string]domain.Stat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	for _, key := range []string{
		"totalCampaigns", "activeCampaigns", "totalViews", "totalClicks",
		"conversions", "totalSpend", "monthlySpend", "recentViews",
		"recentClicks", "recentConversions", "averageCTR",
		"averageConversionRate", "totalInteractions", "roi", "averageCPC",
	} {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, 8000.0, payload["totalSpend"].Value)
}

func TestReportEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.Campaign{
		{ID: "c1", Name: "Summer Launch", Budget: 1000, Status: domain.StatusActive},
	}, nil)

	h := newTestHandler(t, repo)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/expense-by-campaign", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var table domain.TableData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Len(t, table.Headers, 5)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Summer Launch", table.Rows[0][0])
}

func TestReportEndpointUnknownKind(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockCampaignRepository(t))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/not-a-real-kind", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCampaignEndpoint(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("domain.Campaign")).Return(nil)

	h := newTestHandler(t, repo)
	body := `{"name":"New Campaign","budget":2500,"status":"active","start_date":"2026-09-01","end_date":"2026-12-01"}`
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Campaign", created.Name)
	assert.Equal(t, domain.StatusActive, created.Status)
}

func TestCreateCampaignEndpointRejectsMissingName(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockCampaignRepository(t))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(`{"budget":10}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCampaignEndpointNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Delete(mock.Anything, "missing").Return(port.ErrCampaignNotFound)

	h := newTestHandler(t, repo)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/campaigns/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCampaignEndpointNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil)

	h := newTestHandler(t, repo)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
