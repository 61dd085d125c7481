package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/api"
	"github.com/LidiaAlemu/meditrack/internal/auth"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

const testToken = "TEST-TOKEN"

type testApp struct {
	logger internal.Logger
	store  *storage.MemoryStorage
}

func (a *testApp) Logger() internal.Logger                      { return a.logger }
func (a *testApp) VitalRepo() storage.VitalLogRepository        { return a.store }
func (a *testApp) MedicationRepo() storage.MedicationRepository { return a.store }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	app := &testApp{logger: logger, store: storage.NewMemoryStorage()}
	provider := auth.NewStaticProvider(testToken, &internal.User{ID: "u1", Name: "Test User"}, logger)
	return api.NewRouter(app, provider)
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type vitalEnvelope struct {
	Data internal.VitalLog `json:"data"`
}

type vitalListEnvelope struct {
	Data []internal.VitalLog `json:"data"`
}

type medicationEnvelope struct {
	Data internal.Medication `json:"data"`
}

type medicationListEnvelope struct {
	Data []internal.Medication `json:"data"`
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "GET", "/api/vitals", "", "")
	assert.Equal(t, 401, w.Code)

	w = doRequest(r, "GET", "/api/vitals", "", "WRONG-TOKEN")
	assert.Equal(t, 401, w.Code)

	// health stays open
	w = doRequest(r, "GET", "/health", "", "")
	assert.Equal(t, 200, w.Code)
}

func TestVitalLifecycle(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/vitals", `{"systolic":130,"diastolic":85,"heartRate":72,"notes":"morning"}`, testToken)
	assert.Equal(t, 201, w.Code)

	var created vitalEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "u1", created.Data.UserID)
	assert.Equal(t, 130, *created.Data.Systolic)

	w = doRequest(r, "GET", "/api/vitals", "", testToken)
	assert.Equal(t, 200, w.Code)
	var list vitalListEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	w = doRequest(r, "DELETE", "/api/vitals/"+created.Data.ID, "", testToken)
	assert.Equal(t, 200, w.Code)

	// repeated delete: the record is gone
	w = doRequest(r, "DELETE", "/api/vitals/"+created.Data.ID, "", testToken)
	assert.Equal(t, 404, w.Code)
}

func TestPostVital_OutOfRangeNeverPersisted(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/vitals", `{"systolic":300}`, testToken)
	assert.Equal(t, 400, w.Code)

	w = doRequest(r, "POST", "/api/vitals", `{"heartRate":10}`, testToken)
	assert.Equal(t, 400, w.Code)

	w = doRequest(r, "GET", "/api/vitals", "", testToken)
	assert.Equal(t, 200, w.Code)
	var list vitalListEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Data)
}

func TestVitals_NewestFirst(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/vitals", `{"weight":70.5}`, testToken)
	assert.Equal(t, 201, w.Code)
	time.Sleep(5 * time.Millisecond)
	w = doRequest(r, "POST", "/api/vitals", `{"weight":70.9}`, testToken)
	assert.Equal(t, 201, w.Code)

	w = doRequest(r, "GET", "/api/vitals", "", testToken)
	var list vitalListEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 2)
	assert.InDelta(t, 70.9, *list.Data[0].Weight, 0.001)
}

func TestMedicationLifecycle(t *testing.T) {
	r := setupRouter(t)

	// defaults applied when frequency is omitted
	w := doRequest(r, "POST", "/api/medications", `{"name":"Aspirin","dosage":"100mg"}`, testToken)
	assert.Equal(t, 201, w.Code)
	var created medicationEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "once daily", created.Data.Frequency)
	assert.False(t, created.Data.IsTaken)
	assert.Nil(t, created.Data.LastTaken)

	// first toggle marks it taken and stamps lastTaken
	w = doRequest(r, "PATCH", "/api/medications/"+created.Data.ID+"/taken", "", testToken)
	assert.Equal(t, 200, w.Code)
	var toggled medicationEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.True(t, toggled.Data.IsTaken)
	assert.NotNil(t, toggled.Data.LastTaken)
	firstTaken := *toggled.Data.LastTaken

	// second toggle clears isTaken but keeps the historical stamp
	w = doRequest(r, "PATCH", "/api/medications/"+created.Data.ID+"/taken", "", testToken)
	assert.Equal(t, 200, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.False(t, toggled.Data.IsTaken)
	assert.NotNil(t, toggled.Data.LastTaken)
	assert.True(t, firstTaken.Equal(*toggled.Data.LastTaken))

	w = doRequest(r, "GET", "/api/medications", "", testToken)
	assert.Equal(t, 200, w.Code)
	var list medicationListEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	w = doRequest(r, "DELETE", "/api/medications/"+created.Data.ID, "", testToken)
	assert.Equal(t, 200, w.Code)
	w = doRequest(r, "DELETE", "/api/medications/"+created.Data.ID, "", testToken)
	assert.Equal(t, 404, w.Code)
}

func TestPostMedication_Invalid(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/medications", `{"dosage":"100mg"}`, testToken)
	assert.Equal(t, 400, w.Code)

	w = doRequest(r, "POST", "/api/medications", `{"name":"Aspirin","dosage":"100mg","frequency":"hourly"}`, testToken)
	assert.Equal(t, 400, w.Code)
}

func TestPatchMedicationTaken_Unknown(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(r, "PATCH", "/api/medications/does-not-exist/taken", "", testToken)
	assert.Equal(t, 404, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "POST", "/api/vitals", `{"systolic":130,"diastolic":85,"heartRate":72}`, testToken)
	assert.Equal(t, 201, w.Code)

	w = doRequest(r, "GET", "/api/dashboard/summary", "", testToken)
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data struct {
			Averages            map[string]string `json:"averages"`
			BloodPressureStatus string            `json:"bloodPressureStatus"`
			HeartRateStatus     string            `json:"heartRateStatus"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "130.0", resp.Data.Averages["systolic"])
	assert.Equal(t, "no data", resp.Data.Averages["bloodSugar"])
	assert.Equal(t, "Monitor", resp.Data.BloodPressureStatus)
	assert.Equal(t, "Normal", resp.Data.HeartRateStatus)
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, "GET", "/health", "", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
