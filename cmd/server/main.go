package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agriai/config"
	"agriai/database"
	"agriai/router"

	"agriai/pkg/ai"
	"agriai/pkg/weather"

	authCtrlImp "agriai/pkg/auth/controllerImp"
	authRepoImp "agriai/pkg/auth/repositoryImp"

	fieldCtrlImp "agriai/pkg/field/controllerImp"
	fieldRepoImp "agriai/pkg/field/repositoryImp"

	planCtrlImp "agriai/pkg/plan/controllerImp"
	planSvcImp "agriai/pkg/plan/serviceImp"

	recCtrlImp "agriai/pkg/recommend/controllerImp"
	recRepoImp "agriai/pkg/recommend/repositoryImp"

	chatCtrlImp "agriai/pkg/chat/controllerImp"
	chatRepoImp "agriai/pkg/chat/repositoryImp"
	chatSvcImp "agriai/pkg/chat/serviceImp"

	kbCtrlImp "agriai/pkg/kb/controllerImp"
	kbEmbedder "agriai/pkg/kb/embedder"
	kbRepoImp "agriai/pkg/kb/repositoryImp"
	kbSvcImp "agriai/pkg/kb/serviceImp"

	healthCtrlImp "agriai/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Generation backend: mock keeps plan and chat usable without a token.
	var llm ai.Client
	if cfg.HFToken != "" {
		llm = ai.NewHF(cfg.HFToken)
	} else {
		log.Printf("[main] HF_TOKEN not set, using mock generation backend")
		llm = ai.NewMock()
	}

	var wx weather.Provider
	if cfg.WeatherAPIKey != "" {
		wx = weather.NewOpenWeather(cfg.WeatherAPIKey)
	} else {
		log.Printf("[main] WEATHER_API_KEY not set, serving default weather")
		wx = weather.NewDefault()
	}

	farmerRepo := authRepoImp.New(db)
	fieldRepo := fieldRepoImp.New(db)
	chatRepo := chatRepoImp.New(db)
	recRepo := recRepoImp.New(db)
	kbRepo := kbRepoImp.New(db)

	kbSvc := kbSvcImp.New(kbRepo, kbEmbedder.New(cfg.HFToken))
	planSvc := planSvcImp.New(llm, fieldRepo)
	chatSvc := chatSvcImp.New(llm, chatRepo, kbSvc, recRepo)

	authCtrl := authCtrlImp.New(farmerRepo, cfg.JWTSecret)
	fieldCtrl := fieldCtrlImp.New(fieldRepo)
	planCtrl := planCtrlImp.New(planSvc, fieldRepo)
	recCtrl := recCtrlImp.New(recRepo, wx)
	chatCtrl := chatCtrlImp.New(chatSvc, fieldRepo)
	kbCtrl := kbCtrlImp.New(kbSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.Env)

	r := router.New(
		e,
		farmerRepo,
		cfg.JWTSecret,
		cfg.Env == "development",
		authCtrl,
		fieldCtrl,
		planCtrl,
		recCtrl,
		chatCtrl,
		kbCtrl,
		healthCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
