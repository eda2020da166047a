// pkg/auth/controllerImp/auth_controller_imp.go

package controllerImp

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"agriai/pkg/auth/controller"
	"agriai/pkg/auth/repository"
)

type authCtrl struct {
	farmers repository.FarmerRepository
	secret  []byte
}

func New(farmers repository.FarmerRepository, jwtSecret string) controller.AuthController {
	return &authCtrl{farmers: farmers, secret: []byte(jwtSecret)}
}

type devLoginReq struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// DevLogin issues a session token for a farmer identified by a raw uid.
// Development convenience: production fronts this with a real identity
// provider that supplies the same uid claim.
func (h *authCtrl) DevLogin(c echo.Context) error {
	var req devLoginReq
	_ = c.Bind(&req)
	if req.UID == "" {
		req.UID = c.QueryParam("uid")
	}
	uid := strings.TrimSpace(req.UID)
	if uid == "" {
		uid = "dev-farmer"
	}

	farmer, err := h.farmers.FindOrCreate(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	changed := false
	if req.DisplayName != "" && farmer.DisplayName != req.DisplayName {
		farmer.DisplayName = req.DisplayName
		changed = true
	}
	if req.Phone != "" && farmer.Phone != req.Phone {
		farmer.Phone = req.Phone
		changed = true
	}
	if req.Email != "" && farmer.Email != req.Email {
		farmer.Email = req.Email
		changed = true
	}
	if changed {
		if err := h.farmers.Save(farmer); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "farmer": farmer})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("auth_uid").(string)
	farmer, err := h.farmers.FindByUID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farmer not found"})
	}
	return c.JSON(http.StatusOK, farmer)
}
