// pkg/plan/controllerImp/plan_controller_imp.go

package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"agriai/entities"
	"agriai/pkg/ai"
	fieldrepo "agriai/pkg/field/repository"
	"agriai/pkg/plan/export"
	"agriai/pkg/plan/serviceImp"
)

type PlanCtrl struct {
	svc    *serviceImp.PlanSvc
	fields fieldrepo.FieldRepository
}

func New(svc *serviceImp.PlanSvc, fields fieldrepo.FieldRepository) *PlanCtrl {
	return &PlanCtrl{svc: svc, fields: fields}
}

// Get serves the dashboard payload: the stored plan plus display chrome
// (clock, static weather card, progress).
func (h *PlanCtrl) Get(c echo.Context) error {
	field, errResp := h.lookup(c)
	if field == nil {
		return errResp
	}
	plan, err := h.svc.EnsurePlan(field)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	now := time.Now()
	return c.JSON(http.StatusOK, map[string]any{
		"field_id":     field.FieldID,
		"crop_name":    field.CropName,
		"current_date": now.Format("02 Jan 2006"),
		"current_time": now.Format("03:04 PM"),
		"weather": map[string]string{
			"temp":      "28°C",
			"condition": "Sunny",
			"icon":      "sun",
		},
		"duration_progress": 0.15,
		"plan":              plan,
	})
}

// GetPlan returns only the plan body.
func (h *PlanCtrl) GetPlan(c echo.Context) error {
	field, errResp := h.lookup(c)
	if field == nil {
		return errResp
	}
	plan, err := h.svc.EnsurePlan(field)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plan)
}

// GenerateAI regenerates the field's plan through the generation backend.
// This is the one path that surfaces backend failures to the client.
func (h *PlanCtrl) GenerateAI(c echo.Context) error {
	field, errResp := h.lookup(c)
	if field == nil {
		return errResp
	}

	plan, err := h.svc.GenerateAIPlan(c.Request().Context(), field)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "AI plan generation is not configured"})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plan)
}

// Export streams the plan as an xlsx workbook.
func (h *PlanCtrl) Export(c echo.Context) error {
	field, errResp := h.lookup(c)
	if field == nil {
		return errResp
	}
	plan, err := h.svc.EnsurePlan(field)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	data, err := export.Workbook(plan)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	name := strings.ReplaceAll(strings.ToLower(field.CropName), " ", "-")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="plan-%s.xlsx"`, name))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *PlanCtrl) lookup(c echo.Context) (*entities.Field, error) {
	farmerID := c.Get("farmer_id").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.fields.FindByID(uint(id), farmerID)
	if err != nil {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	return f, nil
}
