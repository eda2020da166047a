package router

import (
	"github.com/labstack/echo/v4"

	authrepo "agriai/pkg/auth/repository"
	"agriai/pkg/middleware"
)

func New(
	e *echo.Echo,
	farmers authrepo.FarmerRepository,
	jwtSecret string,
	devAuth bool,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	fieldCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	planCtrl interface {
		Get(echo.Context) error
		GetPlan(echo.Context) error
		GenerateAI(echo.Context) error
		Export(echo.Context) error
	},
	recommendCtrl interface {
		Recommend(echo.Context) error
		History(echo.Context) error
		Weather(echo.Context) error
	},
	chatCtrl interface {
		Send(echo.Context) error
		History(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		Docs(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/auth/dev-login", authCtrl.DevLogin)
	e.GET("/auth/dev-login", authCtrl.DevLogin)

	api := e.Group("/api", middleware.Session(jwtSecret, farmers, devAuth))

	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/fields", fieldCtrl.List)
	api.POST("/fields", fieldCtrl.Create)
	api.PUT("/fields/:id", fieldCtrl.Update)
	api.DELETE("/fields/:id", fieldCtrl.Delete)

	api.GET("/plan/:id", planCtrl.Get)
	api.GET("/crops/:id/plan", planCtrl.GetPlan)
	api.POST("/crops/:id/plan/generate", planCtrl.GenerateAI)
	api.GET("/crops/:id/plan/export", planCtrl.Export)

	api.POST("/recommend", recommendCtrl.Recommend)
	api.GET("/recommend/history", recommendCtrl.History)
	api.GET("/weather/:location", recommendCtrl.Weather)

	api.POST("/chat", chatCtrl.Send)
	api.GET("/chat/:id/history", chatCtrl.History)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)
	api.GET("/kb/docs", kbCtrl.Docs)

	return e
}
