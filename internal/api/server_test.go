package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/lib/pq"
	_ "github.com/limbo/ecosaver/docs"
	"github.com/limbo/ecosaver/internal/analytics"
	"github.com/limbo/ecosaver/internal/api"
	"github.com/limbo/ecosaver/internal/extraction"
	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/internal/service"
	jwtservice "github.com/limbo/ecosaver/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSwaggerDoc(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/usage/estimate")
}

func do(t *testing.T, serv *api.Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, r)
	return rr
}

func TestServerIntegrational(t *testing.T) {
	cfg := setupTestDB(t)
	pool := repository.MustConnect(cfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	usageRepo := repository.NewUsageRepoWithConn(pool)

	extractor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "{\"num_acs\": 1, \"duration_ac_hours\": 3, \"num_lights\": 4}"}`))
	}))
	t.Cleanup(extractor.Close)

	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		UsageService:      service.NewUsageService(usageRepo),
		AnalyticsService:  service.NewAnalyticsService(usageRepo),
		EstimationService: service.NewEstimationService(usageRepo, extraction.NewClient(extraction.Config{URL: extractor.URL})),
		JwtService:        jwtservice.New("secret"),
	})

	creds := api.RegisterRequest{Name: "Arya", Password: "arya_password"}
	rr := do(t, serv, http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = do(t, serv, http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, serv, http.MethodPost, "/api/v1/auth/login", "", api.LoginRequest{Name: "arya", Password: "arya_password"})
	require.Equal(t, http.StatusOK, rr.Code)
	login := make(map[string]string)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&login))
	token := login["token"]
	require.NotEmpty(t, token)

	rr = do(t, serv, http.MethodGet, "/api/v1/insights", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	today := time.Now()
	for i, units := range []float64{9, 8, 7} {
		day := today.AddDate(0, 0, i-3).Format(api.DateLayout)
		rr = do(t, serv, http.MethodPost, "/api/v1/usage", token, api.AddUsageRequest{
			Date:             day,
			ElectricityUnits: units,
			WaterLiters:      300,
			HouseholdSize:    2,
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
	rr = do(t, serv, http.MethodPost, "/api/v1/usage", token, api.AddUsageRequest{
		Date:          today.AddDate(0, 0, 2).Format(api.DateLayout),
		HouseholdSize: 2,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	t.Run("usage listed", func(t *testing.T) {
		rr := do(t, serv, http.MethodGet, "/api/v1/usage", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GetUsageResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Records, 3)
		assert.Equal(t, 9.0, resp.Records[0].ElectricityUnits)
	})
	t.Run("insights", func(t *testing.T) {
		rr := do(t, serv, http.MethodGet, "/api/v1/insights", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var insights service.Insights
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&insights))
		assert.Equal(t, analytics.SourceUserTrend, insights.Prediction.Source)
		assert.InDelta(t, 6.0, insights.Prediction.Value, 1e-9)
		assert.Equal(t, 7.0, insights.Latest.ElectricityUnits)
	})
	t.Run("estimated", func(t *testing.T) {
		rr := do(t, serv, http.MethodPost, "/api/v1/usage/estimate", token, api.EstimateUsageRequest{
			Text:          "AC for three hours, four lights on",
			HouseholdSize: 2,
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var result service.EstimateResult
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
		assert.NotZero(t, result.Record.ID)
		assert.Equal(t, 1.0, result.Activity.NumACs)
	})
	t.Run("public analytics", func(t *testing.T) {
		for _, path := range []string{"/api/v1/forecast", "/api/v1/leaderboard", "/api/v1/stats"} {
			rr := do(t, serv, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, rr.Code, path)
		}
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("ecosaver"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
