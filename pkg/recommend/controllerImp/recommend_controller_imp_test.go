package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"agriai/database"
	"agriai/pkg/advisor"
	"agriai/pkg/recommend/repository"
	"agriai/pkg/recommend/repositoryImp"
	"agriai/pkg/weather"
)

func newTestCtrl(t *testing.T) (*RecommendCtrl, repository.RecommendRepository) {
	t.Helper()
	db := database.OpenSQLite(":memory:")
	repo := repositoryImp.New(db)
	return New(repo, weather.NewDefault()), repo
}

func do(t *testing.T, handler echo.HandlerFunc, method, path, body string, farmerID uint, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("farmer_id", farmerID)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	if err := handler(c); err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return rec
}

func TestRecommendReturnsTopThree(t *testing.T) {
	ctrl, repo := newTestCtrl(t)
	body := `{"soil_type": "black", "area_acres": 2, "season": "kharif"}`
	rec := do(t, ctrl.Recommend, http.MethodPost, "/recommend", body, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Recommendations []advisor.ScoredCrop `json:"recommendations"`
		Weather         weather.Summary      `json:"weather"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Recommendations) != 3 {
		t.Fatalf("got %d recommendations", len(resp.Recommendations))
	}
	if resp.Weather.Source != "default" {
		t.Fatalf("weather source = %s", resp.Weather.Source)
	}

	// The run is stored for history and chat context.
	crops, err := repo.LatestForFarmer(1)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(crops) != 3 || crops[0].CropName != resp.Recommendations[0].CropName {
		t.Fatalf("stored run does not match response: %+v", crops)
	}
}

func TestRecommendValidation(t *testing.T) {
	ctrl, _ := newTestCtrl(t)
	for _, body := range []string{
		`{"soil_type": "black", "area_acres": 0}`,
		`{"soil_type": "", "area_acres": 2}`,
		`{"soil_type": "black", "area_acres": 2000}`,
	} {
		rec := do(t, ctrl.Recommend, http.MethodPost, "/recommend", body, 1)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d", body, rec.Code)
		}
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	ctrl, _ := newTestCtrl(t)
	do(t, ctrl.Recommend, http.MethodPost, "/recommend", `{"soil_type": "black", "area_acres": 1}`, 1)
	do(t, ctrl.Recommend, http.MethodPost, "/recommend", `{"soil_type": "red", "area_acres": 1}`, 1)

	rec := do(t, ctrl.History, http.MethodGet, "/recommend/history", "", 1)
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("history entries = %d", len(out))
	}
}

func TestWeatherEndpointLogsAndReturnsDefault(t *testing.T) {
	ctrl, _ := newTestCtrl(t)
	rec := do(t, ctrl.Weather, http.MethodGet, "/weather/Pune", "", 1, "location", "Pune")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var sum weather.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Location != "Pune" || sum.Source != "default" {
		t.Fatalf("got %+v", sum)
	}
}
