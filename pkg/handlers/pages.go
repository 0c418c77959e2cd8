package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"js-portal/pkg/config"
	"js-portal/pkg/models"
	"js-portal/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}

	session := sessions.Default(c)
	notices := session.Flashes(flashNotice)
	errs := session.Flashes(flashError)
	if len(notices) > 0 || len(errs) > 0 {
		if err := session.Save(); err != nil {
			slog.Error("save session", "error", err, "request_id", RequestIDFrom(c))
		}
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"Active":           "home",
		"TrendingKeywords": cat.TrendingKeywords,
		"Featured":         services.ResolveFeatured(cat),
		"Notices":          notices,
		"Errors":           errs,
	})
}

func InfoList(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}

	listing := services.List(cat.Info, listQuery(c, "/info", "keyword"))
	render(c, http.StatusOK, "info.html", gin.H{
		"Title":           "정보글",
		"Active":          "info",
		"PopularKeywords": cat.PopularKeywords,
		"Listing":         listing,
		"Ad":              gin.H{"Accent": false, "Caption": "고수익 키워드 기반 광고"},
	})
}

func FunList(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}

	listing := services.List(cat.Fun, listQuery(c, "/fun", "tag"))
	render(c, http.StatusOK, "fun.html", gin.H{
		"Title":        "트렌드/재미",
		"Active":       "fun",
		"TrendingTags": cat.TrendingTags,
		"Listing":      listing,
		"Ad":           gin.H{"Accent": true, "Caption": "트렌드 키워드 기반 광고"},
	})
}

func InfoDetail(c *gin.Context) { articleDetail(c, models.CategoryInfo, "/info") }

func FunDetail(c *gin.Context) { articleDetail(c, models.CategoryFun, "/fun") }

func articleDetail(c *gin.Context, category models.Category, back string) {
	cat, ok := catalog(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		NotFound(c)
		return
	}
	article, found := services.FindArticle(cat, category, id)
	if !found {
		NotFound(c)
		return
	}

	render(c, http.StatusOK, "article.html", gin.H{
		"Title":   article.Title,
		"Active":  string(category),
		"Article": article,
		"BackURL": back,
	})
}

func listQuery(c *gin.Context, basePath, filterParam string) services.ListQuery {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	return services.ListQuery{
		BasePath:    basePath,
		FilterParam: filterParam,
		Filter:      c.Query(filterParam),
		Sort:        services.ParseSortOrder(c.Query("sort")),
		Page:        page,
		PageSize:    config.PageSize,
	}
}
