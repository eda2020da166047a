// pkg/chat/controllerImp/chat_controller_imp.go

package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"agriai/pkg/chat/serviceImp"
	fieldrepo "agriai/pkg/field/repository"
)

type ChatCtrl struct {
	svc    *serviceImp.ChatSvc
	fields fieldrepo.FieldRepository
}

func New(svc *serviceImp.ChatSvc, fields fieldrepo.FieldRepository) *ChatCtrl {
	return &ChatCtrl{svc: svc, fields: fields}
}

type sendReq struct {
	FieldID uint   `json:"field_id"`
	Content string `json:"content"`
}

func (h *ChatCtrl) Send(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	var req sendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > 2000 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content must be 1-2000 characters"})
	}

	field, err := h.fields.FindByID(req.FieldID, farmerID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}

	userMsg, assistantMsg, err := h.svc.Reply(c.Request().Context(), field, farmerID, content)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user_message":      userMsg,
		"assistant_message": assistantMsg,
	})
}

func (h *ChatCtrl) History(c echo.Context) error {
	farmerID := c.Get("farmer_id").(uint)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.fields.FindByID(uint(fid), farmerID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "field not found"})
	}
	msgs, err := h.svc.History(uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, msgs)
}
