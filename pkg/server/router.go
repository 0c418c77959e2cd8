package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"js-portal/pkg/config"
	"js-portal/pkg/handlers"
	"js-portal/pkg/views"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware, templates, static assets and every page route.
func NewRouter(logger *slog.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(handlers.RequestID(), handlers.RequestLogger(logger), gin.Recovery())

	// Session Setup
	store := cookie.NewStore([]byte(config.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(config.SessionName, store))

	// Templates & Static Files
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", views.Static())

	r.GET("/", handlers.Home)
	r.POST("/subscribe", handlers.Subscribe)
	r.GET("/healthz", handlers.Health)

	r.GET("/info", handlers.InfoList)
	r.GET("/info/:id", handlers.InfoDetail)
	r.GET("/fun", handlers.FunList)
	r.GET("/fun/:id", handlers.FunDetail)

	admin := r.Group("/admin")
	{
		admin.GET("", handlers.AdminDashboard)
		admin.GET("/keywords", handlers.AdminKeywords)
		admin.GET("/articles", handlers.AdminArticles)
		admin.GET("/articles/:id", handlers.AdminArticleDetail)
	}

	r.NoRoute(handlers.NotFound)
	return r, nil
}
