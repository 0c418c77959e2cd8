package handlers

import (
	"net/http"
	"strconv"

	"js-portal/pkg/services"

	"github.com/gin-gonic/gin"
)

func AdminDashboard(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "admin.html", gin.H{
		"Title":          "관리자 대시보드",
		"Stats":          cat.Stats,
		"Keywords":       cat.Keywords,
		"RecentArticles": cat.RecentArticles,
		"Batches":        cat.Batches,
	})
}

func AdminKeywords(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}
	order := services.ParseKeywordOrder(c.Query("sort"))
	render(c, http.StatusOK, "admin_keywords.html", gin.H{
		"Title":    "키워드 목록",
		"Order":    order,
		"Keywords": services.RankKeywords(cat.Keywords, order),
	})
}

func AdminArticles(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "admin_articles.html", gin.H{
		"Title":          "게시글 목록",
		"RecentArticles": cat.RecentArticles,
	})
}

func AdminArticleDetail(c *gin.Context) {
	cat, ok := catalog(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		NotFound(c)
		return
	}
	article, found := services.FindRecentArticle(cat, id)
	if !found {
		NotFound(c)
		return
	}
	render(c, http.StatusOK, "admin_article.html", gin.H{
		"Title":   article.Title,
		"Article": article,
	})
}
