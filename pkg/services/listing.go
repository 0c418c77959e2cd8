package services

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"js-portal/pkg/models"
)

type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortPopular SortOrder = "popular"
)

// ParseSortOrder maps a query value to a SortOrder; anything unknown is latest.
func ParseSortOrder(v string) SortOrder {
	if SortOrder(v) == SortPopular {
		return SortPopular
	}
	return SortLatest
}

// ListQuery describes one request against a category listing.
type ListQuery struct {
	BasePath    string // e.g. /info
	FilterParam string // query parameter carrying the filter: keyword or tag
	Filter      string
	Sort        SortOrder
	Page        int
	PageSize    int
}

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Listing is one rendered page of a category listing.
type Listing struct {
	Items      []models.Article
	Total      int // records left after filtering
	Page       int
	TotalPages int
	Pages      []PageLink
	PrevURL    string // empty on the first page
	NextURL    string // empty on the last page
	Filter     string
	Sort       SortOrder
	LatestURL  string
	PopularURL string
}

// List filters, ranks and paginates articles. The input slice is never modified.
func List(articles []models.Article, q ListQuery) Listing {
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	q.Filter = strings.TrimSpace(q.Filter)
	if q.Sort == "" {
		q.Sort = SortLatest
	}

	matched := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if matchesFilter(a, q.Filter) {
			matched = append(matched, a)
		}
	}

	if q.Sort == SortPopular {
		slices.SortStableFunc(matched, func(a, b models.Article) int {
			return Popularity(b) - Popularity(a)
		})
	}

	total := len(matched)
	totalPages := total / q.PageSize
	if total%q.PageSize != 0 {
		totalPages++
	}
	page := q.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	l := Listing{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Filter:     q.Filter,
		Sort:       q.Sort,
		LatestURL:  listURL(q, q.Filter, SortLatest, 0),
		PopularURL: listURL(q, q.Filter, SortPopular, 0),
	}

	if total == 0 {
		l.Items = []models.Article{}
		return l
	}

	start := (page - 1) * q.PageSize
	end := min(start+q.PageSize, total)
	l.Items = matched[start:end]

	for n := 1; n <= totalPages; n++ {
		l.Pages = append(l.Pages, PageLink{
			Number:  n,
			URL:     listURL(q, q.Filter, q.Sort, n),
			Current: n == page,
		})
	}
	if page > 1 {
		l.PrevURL = listURL(q, q.Filter, q.Sort, page-1)
	}
	if page < totalPages {
		l.NextURL = listURL(q, q.Filter, q.Sort, page+1)
	}
	return l
}

// Popularity is the ranking metric: likes for fun articles, views otherwise.
func Popularity(a models.Article) int {
	if a.Category == models.CategoryFun {
		return a.Likes
	}
	return a.Views
}

func matchesFilter(a models.Article, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, k := range a.Keywords {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}

// listURL builds a listing link; page 0 leaves the page parameter out.
func listURL(q ListQuery, filter string, sort SortOrder, page int) string {
	v := url.Values{}
	if filter != "" && q.FilterParam != "" {
		v.Set(q.FilterParam, filter)
	}
	if sort == SortPopular {
		v.Set("sort", string(SortPopular))
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return q.BasePath
	}
	return q.BasePath + "?" + v.Encode()
}

type KeywordOrder string

const (
	KeywordByList   KeywordOrder = ""
	KeywordByCPC    KeywordOrder = "cpc"
	KeywordByVolume KeywordOrder = "volume"
)

// ParseKeywordOrder maps a query value to a KeywordOrder; anything unknown keeps list order.
func ParseKeywordOrder(v string) KeywordOrder {
	switch KeywordOrder(v) {
	case KeywordByCPC, KeywordByVolume:
		return KeywordOrder(v)
	}
	return KeywordByList
}

// RankKeywords returns a copy of kws ordered by the given metric, descending.
func RankKeywords(kws []models.Keyword, order KeywordOrder) []models.Keyword {
	ranked := slices.Clone(kws)
	switch order {
	case KeywordByCPC:
		slices.SortStableFunc(ranked, func(a, b models.Keyword) int { return b.CPC - a.CPC })
	case KeywordByVolume:
		slices.SortStableFunc(ranked, func(a, b models.Keyword) int { return b.SearchVolume - a.SearchVolume })
	}
	return ranked
}
