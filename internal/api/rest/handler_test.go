package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handoverhq/tenancy-stats/internal/api/shared/dto"
	apierrors "github.com/handoverhq/tenancy-stats/internal/api/shared/errors"
	"github.com/handoverhq/tenancy-stats/internal/domain"
	"github.com/handoverhq/tenancy-stats/internal/mocks"
	"github.com/handoverhq/tenancy-stats/internal/stats"
)

func setupTestRouter(t *testing.T) (*mocks.MockAPIExecutor, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := gin.New()
	SetupRoutes(router, NewHandler(exec), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	}))
	return exec, router
}

func serve(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestGetStatistics(t *testing.T) {
	t.Run("with year", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, year *int) (*dto.StatisticsResponse, error) {
				require.NotNil(t, year)
				assert.Equal(t, 2024, *year)
				return &dto.StatisticsResponse{Report: stats.Report{Year: 2024}}, nil
			})

		rec := serve(router, http.MethodGet, "/api/v1/statistics?year=2024")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2024.0, body["year"])
		assert.Contains(t, body, "generated_at")
		assert.Contains(t, body, "monthly")
	})

	t.Run("without year", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetStatistics(gomock.Any(), gomock.Nil()).
			Return(&dto.StatisticsResponse{Report: stats.Report{Year: 2025}}, nil)

		rec := serve(router, http.MethodGet, "/api/v1/statistics")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric year", func(t *testing.T) {
		_, router := setupTestRouter(t)

		rec := serve(router, http.MethodGet, "/api/v1/statistics?year=abc")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, rec).Code)
	})

	t.Run("database error", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewDatabaseError("Failed to load protocols", "connection refused"))

		rec := serve(router, http.MethodGet, "/api/v1/statistics?year=2024")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
		assert.Equal(t, "connection refused", apiErr.Details)
	})

	t.Run("unexpected error", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetStatistics(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		rec := serve(router, http.MethodGet, "/api/v1/statistics")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
		assert.Empty(t, apiErr.Details)
	})
}

func TestGetUnitTimeline(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetUnitTimeline(gomock.Any(), uint64(11)).
			Return(&dto.UnitTimelineResponse{UnitID: 11, State: "vacant"}, nil)

		rec := serve(router, http.MethodGet, "/api/v1/units/11/timeline")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), `"state":"vacant"`))
	})

	t.Run("not found", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().GetUnitTimeline(gomock.Any(), uint64(99)).Return(nil, nil)

		rec := serve(router, http.MethodGet, "/api/v1/units/99/timeline")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, rec).Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, router := setupTestRouter(t)

		for _, id := range []string{"abc", "0", "-1"} {
			rec := serve(router, http.MethodGet, "/api/v1/units/"+id+"/timeline")
			require.Equal(t, http.StatusBadRequest, rec.Code, id)
			assert.Equal(t, apierrors.ErrCodeBadRequest, decodeError(t, rec).Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().CheckHealth(gomock.Any()).
			Return(&dto.HealthResponse{Status: "ok", Service: "tenancy-stats-api", Database: "ok"}, nil)

		rec := serve(router, http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","service":"tenancy-stats-api","database":"ok"}`, rec.Body.String())
	})

	t.Run("unavailable", func(t *testing.T) {
		exec, router := setupTestRouter(t)
		exec.EXPECT().CheckHealth(gomock.Any()).
			Return(nil, apierrors.NewServiceUnavailableError("Database unavailable"))

		rec := serve(router, http.MethodGet, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestMetricsRoute(t *testing.T) {
	_, router := setupTestRouter(t)

	rec := serve(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics\n", rec.Body.String())
}

func TestParseGetStatisticsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query   string
		want    *int
		wantErr bool
	}{
		{query: "", want: nil},
		{query: "year=2024", want: intPtr(2024)},
		{query: "year=1999", want: intPtr(1999)},
		{query: "year=20x4", wantErr: true},
		{query: "year=abc&year=2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/statistics?"+tt.query, nil)

			params, err := ParseGetStatisticsQuery(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidYear)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params.Year)
		})
	}
}

func intPtr(v int) *int { return &v }
