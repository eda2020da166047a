// pkg/recommend/controllerImp/recommend_controller_imp.go

package controllerImp

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agriai/entities"
	"agriai/pkg/advisor"
	"agriai/pkg/recommend/repository"
	"agriai/pkg/weather"
)

type RecommendCtrl struct {
	repo    repository.RecommendRepository
	weather weather.Provider
}

func New(repo repository.RecommendRepository, provider weather.Provider) *RecommendCtrl {
	return &RecommendCtrl{repo: repo, weather: provider}
}

type recommendReq struct {
	SoilType          string  `json:"soil_type"`
	AreaAcres         float64 `json:"area_acres"`
	Location          string  `json:"location"`
	Season            string  `json:"season"`
	WaterAvailability string  `json:"water_availability"`
	InvestmentLevel   string  `json:"investment_level"`
	FieldID           *uint   `json:"field_id"`
}

// Recommend scores crops for the request, persists the result, and returns
// the ranked top recommendations with the weather snapshot used.
func (h *RecommendCtrl) Recommend(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	var req recommendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := validate(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	w := h.weather.Fetch(c.Request().Context(), req.Location)
	crops := advisor.Recommend(advisor.Input{
		SoilType:          req.SoilType,
		AreaAcres:         req.AreaAcres,
		Season:            req.Season,
		WaterAvailability: req.WaterAvailability,
		InvestmentLevel:   req.InvestmentLevel,
	}, w)

	h.persist(farmerID, &req, crops, w)

	return c.JSON(http.StatusOK, map[string]any{
		"recommendations": crops,
		"weather":         w,
	})
}

// History lists the farmer's recent recommendation runs, newest first.
func (h *RecommendCtrl) History(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	recs, err := h.repo.History(farmerID, 20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		var crops []advisor.ScoredCrop
		_ = json.Unmarshal([]byte(rec.TopRecommendations), &crops)
		var w weather.Summary
		_ = json.Unmarshal([]byte(rec.WeatherSnapshot), &w)
		out = append(out, map[string]any{
			"recommendation": rec,
			"crops":          crops,
			"weather":        w,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Weather fetches the current summary for a location. Always succeeds:
// provider failures degrade to the default summary.
func (h *RecommendCtrl) Weather(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	location := strings.TrimSpace(c.Param("location"))
	if location == "" {
		location = "Hyderabad"
	}

	w := h.weather.Fetch(c.Request().Context(), location)
	if err := h.repo.CreateWeatherLog(&entities.WeatherLog{
		FarmerID:     farmerID,
		Location:     w.Location,
		TemperatureC: w.TemperatureC,
		RainfallMM:   w.RainfallMM,
		Condition:    w.Condition,
		Source:       w.Source,
	}); err != nil {
		log.Printf("[recommend] weather log not saved: %v", err)
	}
	return c.JSON(http.StatusOK, w)
}

// persist stores the run for history and chat context. Storage problems are
// logged, not surfaced: the farmer still gets the recommendations.
func (h *RecommendCtrl) persist(farmerID uint, req *recommendReq, crops []advisor.ScoredCrop, w weather.Summary) {
	cropsJSON, _ := json.Marshal(crops)
	weatherJSON, _ := json.Marshal(w)
	if err := h.repo.CreateRecommendation(&entities.CropRecommendation{
		FarmerID:           farmerID,
		FieldID:            req.FieldID,
		SoilType:           req.SoilType,
		AreaAcres:          req.AreaAcres,
		Location:           req.Location,
		Season:             req.Season,
		WaterAvailability:  req.WaterAvailability,
		InvestmentLevel:    req.InvestmentLevel,
		TopRecommendations: string(cropsJSON),
		WeatherSnapshot:    string(weatherJSON),
	}); err != nil {
		log.Printf("[recommend] recommendation not saved: %v", err)
	}
	if err := h.repo.CreateWeatherLog(&entities.WeatherLog{
		FarmerID:     farmerID,
		Location:     w.Location,
		TemperatureC: w.TemperatureC,
		RainfallMM:   w.RainfallMM,
		Condition:    w.Condition,
		Source:       w.Source,
	}); err != nil {
		log.Printf("[recommend] weather log not saved: %v", err)
	}
}

func validate(req *recommendReq) string {
	if req.Location == "" {
		req.Location = "Hyderabad"
	}
	if req.Season == "" {
		req.Season = "kharif"
	}
	if req.WaterAvailability == "" {
		req.WaterAvailability = "medium"
	}
	if req.InvestmentLevel == "" {
		req.InvestmentLevel = "medium"
	}
	if req.AreaAcres <= 0 || req.AreaAcres > 1000 {
		return "area_acres must be in (0, 1000]"
	}
	if strings.TrimSpace(req.SoilType) == "" {
		return "soil_type is required"
	}
	return ""
}
