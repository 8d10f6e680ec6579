package http

import (
	"github.com/gin-gonic/gin"

	"mailsmith/internal/ai"
	"mailsmith/internal/bootstrap"
	"mailsmith/internal/compose"
	"mailsmith/internal/repository"
	"mailsmith/internal/transport/http/handler"
	"mailsmith/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS(app.Config.CORS.Origins))

	healthHandler := handler.NewHealthHandler(app)
	clientConfigHandler := handler.NewClientConfigHandler(app.Config.Web.BackendBaseURL)
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/compose", "web/compose.html")
	router.GET("/client-config.js", clientConfigHandler.Script)
	router.GET("/ping", healthHandler.Ping)
	router.GET("/healthz", healthHandler.Check)

	draftRepo := repository.NewDraftRepository(app.MySQL)
	emailHandler := handler.NewEmailHandler(draftRepo)
	router.GET("/emails", emailHandler.List)
	router.POST("/email", emailHandler.Create)

	pipeline := compose.NewPipeline(ai.NewOpenAICompatibleClient(), ai.ChatConfig{
		BaseURL: app.Config.LLM.BaseURL,
		APIKey:  app.Config.LLM.APIKey,
		Model:   app.Config.LLM.Model,
	})
	aiHandler := handler.NewAIHandler(pipeline)
	aiGroup := router.Group("/ai")
	aiGroup.POST("/compose", aiHandler.Compose)
	aiGroup.POST("/router", aiHandler.Route)
	aiGroup.POST("/generate", aiHandler.Generate)

	return router
}
