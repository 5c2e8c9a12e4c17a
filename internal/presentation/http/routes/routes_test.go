package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/config"
	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/memory"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/handler"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "owner@njvtravels.in"
	testPassword = "s3cret-pass"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
	mailer *resetMailer
}

type resetMailer struct {
	tokens []string
}

func (m *resetMailer) SendPasswordResetEmail(toEmail, token string, expiresIn time.Duration) error {
	m.tokens = append(m.tokens, token)
	return nil
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	mailer := &resetMailer{}
	authService := service.NewAuthService(store.Operators(), store.PasswordResetTokens(), jwtManager, mailer)
	_, err := authService.EnsureOperator(context.Background(), testEmail, testPassword, "NJV Travels")
	require.NoError(t, err)

	lifecycleService := service.NewLifecycleService(store.Engagements())
	dashboardService := service.NewDashboardService(store.Engagements(), store.Vehicles(), store.Drivers())
	exportService := service.NewExportService(store.Engagements(), dashboardService)

	router := Setup(&Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Booking: handler.NewBookingHandler(lifecycleService),
		Order:   handler.NewOrderHandler(lifecycleService),
		Trip:    handler.NewTripHandler(lifecycleService, exportService),
		Report:  handler.NewReportHandler(dashboardService, exportService),
		Vehicle: handler.NewVehicleHandler(service.NewVehicleService(store.Vehicles())),
		Driver:  handler.NewDriverHandler(service.NewDriverService(store.Drivers())),
	}, &Deps{
		JWTManager: jwtManager,
		Cfg: &config.Config{
			App:       config.AppConfig{Name: "njv-travels"},
			RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
		},
		IdempotencyRepo: store.Idempotency(),
	})

	srv := &testServer{t: t, router: router, mailer: mailer}
	srv.login()
	return srv
}

func (s *testServer) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": testPassword}, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
	}
	decodeData(s.t, w, &data)
	require.NotEmpty(s.t, data.AccessToken)
	s.token = data.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

type bookingResult struct {
	Route      string `json:"route"`
	Engagement struct {
		ID        string  `json:"id"`
		Status    string  `json:"status"`
		Balance   float64 `json:"balance"`
		NetProfit float64 `json:"net_profit"`
	} `json:"engagement"`
}

func booking(total, advance interface{}) gin.H {
	return gin.H{
		"customer_name":    "Ravi Kumar",
		"customer_phone":   "9876543210",
		"vehicle":          "TN 01 AB 1234",
		"driver":           "Suresh",
		"from_destination": "Chennai",
		"to_destination":   "Madurai",
		"from_date":        "2024-01-10",
		"from_time":        "06:00",
		"to_date":          "2024-01-11",
		"to_time":          "20:00",
		"total_amount":     total,
		"advance":          advance,
	}
}

func (s *testServer) book(total, advance interface{}) bookingResult {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/bookings", booking(total, advance), nil)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var res bookingResult
	decodeData(s.t, w, &res)
	return res
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	srv.token = ""

	w := srv.do(http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": "wrong-pass"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	srv.token = ""

	w := srv.do(http.MethodGet, "/api/v1/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFullyPaidBookingLandsInTrips(t *testing.T) {
	srv := newTestServer(t)

	res := srv.book(5000, 5000)

	assert.Equal(t, "trips", res.Route)
	assert.Equal(t, "Completed", res.Engagement.Status)
	assert.Equal(t, 5000.0, res.Engagement.NetProfit)

	w := srv.do(http.MethodGet, "/api/v1/orders", nil, nil)
	var orders struct {
		Items []json.RawMessage `json:"items"`
	}
	decodeData(t, w, &orders)
	assert.Empty(t, orders.Items)
}

func TestOrderSettlementFlow(t *testing.T) {
	srv := newTestServer(t)

	res := srv.book("5000", "2000")
	require.Equal(t, "orders", res.Route)
	assert.Equal(t, 3000.0, res.Engagement.Balance)

	completePath := "/api/v1/orders/" + res.Engagement.ID + "/complete"
	settlement := gin.H{
		"payment":       2999,
		"fuel_expense":  500,
		"toll_expense":  100,
		"driver_salary": 800,
		"other_expense": 0,
		"kms":           460,
	}

	w := srv.do(http.MethodPost, completePath, settlement, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	var mismatch map[string]string
	require.NoError(t, json.Unmarshal(decode(t, w).Errors, &mismatch))
	assert.Equal(t, "3000.00", mismatch["expected"])

	w = srv.do(http.MethodGet, "/api/v1/orders/"+res.Engagement.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	settlement["payment"] = 3000
	w = srv.do(http.MethodPost, completePath, settlement, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var done bookingResult
	decodeData(t, w, &done)
	assert.Equal(t, "trips", done.Route)
	assert.Equal(t, 0.0, done.Engagement.Balance)
	assert.Equal(t, 3600.0, done.Engagement.NetProfit)

	w = srv.do(http.MethodGet, "/api/v1/orders/"+res.Engagement.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = srv.do(http.MethodGet, "/api/v1/trips/"+res.Engagement.ID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompleteOrderReportsMissingFields(t *testing.T) {
	srv := newTestServer(t)
	res := srv.book(5000, 2000)

	w := srv.do(http.MethodPost, "/api/v1/orders/"+res.Engagement.ID+"/complete", gin.H{"payment": 3000}, nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var fieldErrs []struct {
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Errors, &fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "fuel_expense")
	assert.Contains(t, fields, "kms")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	srv := newTestServer(t)
	res := srv.book(5000, 1000)
	path := "/api/v1/orders/" + res.Engagement.ID

	w := srv.do(http.MethodDelete, path, nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(http.MethodDelete, path+"?confirm=true", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodDelete, path+"?confirm=true", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingIdempotencyReplay(t *testing.T) {
	srv := newTestServer(t)
	headers := map[string]string{"Idempotency-Key": "booking-1"}

	first := srv.do(http.MethodPost, "/api/v1/bookings", booking(5000, 2000), headers)
	require.Equal(t, http.StatusCreated, first.Code)

	second := srv.do(http.MethodPost, "/api/v1/bookings", booking(5000, 2000), headers)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	reused := srv.do(http.MethodPost, "/api/v1/bookings", booking(6000, 2000), headers)
	assert.Equal(t, http.StatusUnprocessableEntity, reused.Code)

	w := srv.do(http.MethodGet, "/api/v1/orders", nil, nil)
	var orders struct {
		Items []json.RawMessage `json:"items"`
	}
	decodeData(t, w, &orders)
	assert.Len(t, orders.Items, 1)
}

func TestBookingPreview(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/api/v1/bookings/preview", gin.H{"total_amount": "5000", "advance": "abc"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		Balance float64 `json:"balance"`
	}
	decodeData(t, w, &summary)
	assert.Equal(t, 5000.0, summary.Balance)
}

func TestTripListRejectsBadDate(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodGet, "/api/v1/trips?from_date=10-01-2024", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = srv.do(http.MethodGet, "/api/v1/trips?from_date=2024-01-10&search=ravi", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCashbookAndExports(t *testing.T) {
	srv := newTestServer(t)
	srv.book(5000, 5000)
	srv.book(2000, 2000)

	w := srv.do(http.MethodGet, "/api/v1/cashbook?type=monthlyRevenue", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cashbook struct {
		Rows []struct {
			Key   string  `json:"key"`
			Value float64 `json:"value"`
		} `json:"rows"`
	}
	decodeData(t, w, &cashbook)
	require.Len(t, cashbook.Rows, 1)
	assert.Equal(t, "Jan 2024", cashbook.Rows[0].Key)
	assert.Equal(t, 7000.0, cashbook.Rows[0].Value)

	w = srv.do(http.MethodGet, "/api/v1/cashbook?type=weekly", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = srv.do(http.MethodGet, "/api/v1/cashbook/export?type=profitVehicle", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	w = srv.do(http.MethodGet, "/api/v1/trips/export", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, w.Body.Len())
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)
	srv.book(5000, 5000)
	srv.book(5000, 1000)

	w := srv.do(http.MethodGet, "/api/v1/dashboard", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalTrips    int `json:"total_trips"`
		PendingOrders int `json:"pending_orders"`
	}
	decodeData(t, w, &stats)
	assert.Equal(t, 1, stats.TotalTrips)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestVehicleCRUD(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/api/v1/vehicles", gin.H{"vehicle_name": "TN 01 AB 1234"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var vehicle struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &vehicle)

	w = srv.do(http.MethodPost, "/api/v1/vehicles", gin.H{"vehicle_name": "tn 01 ab 1234"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.do(http.MethodPut, "/api/v1/vehicles/"+vehicle.ID, gin.H{"vehicle_name": "TN 02 CD 5678"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodDelete, "/api/v1/vehicles/"+vehicle.ID+"?confirm=true", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodGet, "/api/v1/vehicles/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileUpdate(t *testing.T) {
	srv := newTestServer(t)
	pan := "abcde1234f"

	w := srv.do(http.MethodPut, "/api/v1/profile", gin.H{"full_name": "NJV Travels", "pan": pan}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(http.MethodGet, "/api/v1/profile", nil, nil)
	var profile struct {
		PAN      string `json:"pan"`
		Password string `json:"password"`
	}
	decodeData(t, w, &profile)
	assert.Equal(t, "ABCDE1234F", profile.PAN)
	assert.Empty(t, profile.Password)
}

func TestForgotAndResetPasswordRoutes(t *testing.T) {
	srv := newTestServer(t)
	srv.token = ""

	known := srv.do(http.MethodPost, "/api/v1/auth/forgot-password", gin.H{"email": testEmail}, nil)
	require.Equal(t, http.StatusOK, known.Code, known.Body.String())
	unknown := srv.do(http.MethodPost, "/api/v1/auth/forgot-password", gin.H{"email": "nobody@njvtravels.in"}, nil)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, decode(t, known).Message, decode(t, unknown).Message)
	require.Len(t, srv.mailer.tokens, 1)

	mismatch := srv.do(http.MethodPost, "/api/v1/auth/reset-password", gin.H{
		"token": srv.mailer.tokens[0], "email": testEmail, "password": "brand-new-1", "password_confirm": "brand-new-2",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, mismatch.Code)

	bogus := srv.do(http.MethodPost, "/api/v1/auth/reset-password", gin.H{
		"token": "not-a-token", "email": testEmail, "password": "brand-new-1", "password_confirm": "brand-new-1",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, bogus.Code)

	w := srv.do(http.MethodPost, "/api/v1/auth/reset-password", gin.H{
		"token": srv.mailer.tokens[0], "email": testEmail, "password": "brand-new-1", "password_confirm": "brand-new-1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	login := srv.do(http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": "brand-new-1"}, nil)
	assert.Equal(t, http.StatusOK, login.Code)
}
