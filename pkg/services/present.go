package services

import (
	"net/url"
	"strconv"

	"js-portal/pkg/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Badge is the label and style class a status-like value renders as.
type Badge struct {
	Label string
	Class string
}

const (
	classBlue   = "bg-blue-100 text-blue-700"
	classOrange = "bg-orange-100 text-orange-700"
	classGreen  = "bg-green-100 text-green-700"
	classYellow = "bg-yellow-100 text-yellow-700"
	classGray   = "bg-gray-100 text-gray-700"
)

var (
	categoryBadges = map[models.Category]Badge{
		models.CategoryInfo: {Label: "정보", Class: classBlue},
		models.CategoryFun:  {Label: "트렌드/재미", Class: classOrange},
	}
	statusBadges = map[models.Status]Badge{
		models.StatusPublished: {Label: "게시됨", Class: classGreen},
		models.StatusDraft:     {Label: "초안", Class: classGray},
	}
	keywordBadges = map[models.KeywordStatus]Badge{
		models.KeywordActive:  {Label: "사용 중", Class: classGreen},
		models.KeywordPending: {Label: "대기 중", Class: classYellow},
	}
	batchBadges = map[models.BatchHealth]Badge{
		models.BatchOK:      {Label: "정상", Class: classGreen},
		models.BatchWarning: {Label: "주의", Class: classYellow},
	}
)

func lookup[K ~string](m map[K]Badge, k K) Badge {
	if b, ok := m[k]; ok {
		return b
	}
	return Badge{Label: string(k), Class: classGray}
}

func CategoryBadge(c models.Category) Badge           { return lookup(categoryBadges, c) }
func StatusBadge(s models.Status) Badge               { return lookup(statusBadges, s) }
func KeywordStatusBadge(s models.KeywordStatus) Badge { return lookup(keywordBadges, s) }
func BatchHealthBadge(h models.BatchHealth) Badge     { return lookup(batchBadges, h) }

// ArticlePath is the detail page of an article.
func ArticlePath(c models.Category, id int) string {
	return "/" + string(c) + "/" + strconv.Itoa(id)
}

func AdminArticlePath(id int) string {
	return "/admin/articles/" + strconv.Itoa(id)
}

func KeywordFilterPath(keyword string) string {
	return "/info?keyword=" + url.QueryEscape(keyword)
}

func TagFilterPath(tag string) string {
	return "/fun?tag=" + url.QueryEscape(tag)
}

var koPrinter = message.NewPrinter(language.Korean)

// FormatNumber renders n with Korean digit grouping, e.g. 12,845.
func FormatNumber(n int) string {
	return koPrinter.Sprintf("%d", n)
}

// FormatWon renders a currency amount in won.
func FormatWon(n int) string {
	return "₩" + FormatNumber(n)
}
