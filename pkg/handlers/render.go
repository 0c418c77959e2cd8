package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"js-portal/pkg/config"
	"js-portal/pkg/models"
	"js-portal/pkg/services"

	"github.com/gin-gonic/gin"
)

// render adds the layout fields every page template expects.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Site"] = config.Site
	data["Year"] = time.Now().Year()
	if _, ok := data["Active"]; !ok {
		data["Active"] = ""
	}
	if t, ok := data["Title"].(string); ok && t != "" {
		data["Title"] = t + " | " + config.Site.Title
	} else {
		data["Title"] = config.Site.Title + " - 최신 트렌드 & 정보"
	}
	c.HTML(status, name, data)
}

// catalog fetches the mock catalog or answers 500.
func catalog(c *gin.Context) (*models.Catalog, bool) {
	cat, err := services.GetCatalog()
	if err != nil {
		slog.Error("load catalog", "error", err, "request_id", RequestIDFrom(c))
		c.String(http.StatusInternalServerError, "content unavailable")
		return nil, false
	}
	return cat, true
}

// NotFound renders the 404 page inside the layout.
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "페이지를 찾을 수 없습니다"})
}
