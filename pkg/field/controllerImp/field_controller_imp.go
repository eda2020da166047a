// pkg/field/controllerImp/field_controller_imp.go

package controllerImp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"agriai/entities"
	"agriai/pkg/field/repository"
	"agriai/pkg/plan/rules"
	"agriai/pkg/plan/types"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type createReq struct {
	Name              string  `json:"name"`
	LandAreaAcres     float64 `json:"land_area_acres"`
	SoilType          string  `json:"soil_type"`
	CropName          string  `json:"crop_name"`
	Location          string  `json:"location"`
	Season            string  `json:"season"`
	WaterAvailability string  `json:"water_availability"`
	InvestmentLevel   string  `json:"investment_level"`
}

type updateReq struct {
	Name              *string  `json:"name"`
	LandAreaAcres     *float64 `json:"land_area_acres"`
	SoilType          *string  `json:"soil_type"`
	CropName          *string  `json:"crop_name"`
	WaterAvailability *string  `json:"water_availability"`
	InvestmentLevel   *string  `json:"investment_level"`
}

type fieldResponse struct {
	entities.Field
	Plan *types.CropPlan `json:"plan,omitempty"`
}

func (h *FieldCtrl) List(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	fields, err := h.repo.ListByFarmer(farmerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out := make([]fieldResponse, 0, len(fields))
	for i := range fields {
		out = append(out, toResponse(&fields[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := validateCreate(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	f := &entities.Field{
		FarmerID:          farmerID,
		Name:              req.Name,
		LandAreaAcres:     req.LandAreaAcres,
		SoilType:          req.SoilType,
		CropName:          req.CropName,
		Location:          req.Location,
		Season:            req.Season,
		WaterAvailability: req.WaterAvailability,
		InvestmentLevel:   req.InvestmentLevel,
	}
	plan := rules.BuildPlan(f.LandAreaAcres, f.SoilType, f.CropName, f.WaterAvailability, f.InvestmentLevel)
	if b, err := json.Marshal(plan); err == nil {
		f.PlanJSON = string(b)
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, toResponse(f))
}

func (h *FieldCtrl) Update(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id), farmerID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	replan := false
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.LandAreaAcres != nil {
		f.LandAreaAcres = *req.LandAreaAcres
		replan = true
	}
	if req.SoilType != nil {
		f.SoilType = *req.SoilType
		replan = true
	}
	if req.CropName != nil {
		f.CropName = *req.CropName
		replan = true
	}
	if req.WaterAvailability != nil {
		f.WaterAvailability = *req.WaterAvailability
		replan = true
	}
	if req.InvestmentLevel != nil {
		f.InvestmentLevel = *req.InvestmentLevel
		replan = true
	}

	// Any agronomic input change invalidates the stored plan.
	if replan {
		plan := rules.BuildPlan(f.LandAreaAcres, f.SoilType, f.CropName, f.WaterAvailability, f.InvestmentLevel)
		if b, err := json.Marshal(plan); err == nil {
			f.PlanJSON = string(b)
		}
	}
	if err := h.repo.Save(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, toResponse(f))
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id), farmerID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	if err := h.repo.Delete(uint(id), farmerID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func validateCreate(req *createReq) string {
	if req.Name == "" {
		req.Name = "My Field"
	}
	if req.Location == "" {
		req.Location = "Hyderabad"
	}
	if req.Season == "" {
		req.Season = "kharif"
	}
	if req.LandAreaAcres <= 0 || req.LandAreaAcres > 1000 {
		return "land_area_acres must be in (0, 1000]"
	}
	if strings.TrimSpace(req.SoilType) == "" {
		return "soil_type is required"
	}
	if strings.TrimSpace(req.CropName) == "" {
		return "crop_name is required"
	}
	if !oneOf(req.Season, "kharif", "rabi", "zaid") {
		return "season must be kharif, rabi or zaid"
	}
	if !oneOf(req.WaterAvailability, "low", "medium", "high") {
		return "water_availability must be low, medium or high"
	}
	if !oneOf(req.InvestmentLevel, "low", "medium", "high") {
		return "investment_level must be low, medium or high"
	}
	return ""
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func toResponse(f *entities.Field) fieldResponse {
	resp := fieldResponse{Field: *f}
	if f.PlanJSON != "" {
		var plan types.CropPlan
		if err := json.Unmarshal([]byte(f.PlanJSON), &plan); err == nil {
			resp.Plan = &plan
		}
	}
	return resp
}
