package services

import (
	"math"
	"testing"

	"js-portal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func infoArticles(t *testing.T) []models.Article {
	t.Helper()
	cat, err := ParseCatalog(defaultCatalog, FormatYAML)
	require.NoError(t, err)
	return cat.Info
}

func ids(list []models.Article) []int {
	out := make([]int, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestListUnfiltered(t *testing.T) {
	info := infoArticles(t)
	l := List(info, ListQuery{BasePath: "/info", FilterParam: "keyword", PageSize: 6})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(l.Items))
	assert.Equal(t, 6, l.Total)
	assert.Equal(t, 1, l.Page)
	assert.Equal(t, 1, l.TotalPages)
	assert.Empty(t, l.PrevURL)
	assert.Empty(t, l.NextURL)
	require.Len(t, l.Pages, 1)
	assert.True(t, l.Pages[0].Current)
	assert.Equal(t, "/info?page=1", l.Pages[0].URL)
	assert.Equal(t, "/info", l.LatestURL)
	assert.Equal(t, "/info?sort=popular", l.PopularURL)
}

func TestListFilter(t *testing.T) {
	info := infoArticles(t)
	base := ListQuery{BasePath: "/info", FilterParam: "keyword", PageSize: 6}

	q := base
	q.Filter = "금융"
	assert.Equal(t, []int{2, 3}, ids(List(info, q).Items))

	q.Filter = "보험"
	assert.Equal(t, []int{3}, ids(List(info, q).Items))

	q.Filter = " it "
	assert.Equal(t, []int{4}, ids(List(info, q).Items))

	q.Filter = "NFT"
	l := List(info, q)
	assert.Empty(t, l.Items)
	assert.NotNil(t, l.Items)
	assert.Equal(t, 0, l.TotalPages)
	assert.Empty(t, l.Pages)
}

func TestListPopular(t *testing.T) {
	info := infoArticles(t)
	l := List(info, ListQuery{BasePath: "/info", Sort: SortPopular, PageSize: 6})
	assert.Equal(t, []int{4, 5, 2, 3, 6, 1}, ids(l.Items))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(info), "input must keep literal order")

	cat, err := ParseCatalog(defaultCatalog, FormatYAML)
	require.NoError(t, err)
	fun := List(cat.Fun, ListQuery{BasePath: "/fun", Sort: SortPopular, PageSize: 6})
	assert.Equal(t, []int{5, 4, 2, 6, 1, 3}, ids(fun.Items))
}

func TestListPopularStableOnTies(t *testing.T) {
	list := []models.Article{
		{ID: 1, Views: 5}, {ID: 2, Views: 9}, {ID: 3, Views: 5},
	}
	l := List(list, ListQuery{Sort: SortPopular, PageSize: 10})
	assert.Equal(t, []int{2, 1, 3}, ids(l.Items))
}

func TestListPagination(t *testing.T) {
	info := infoArticles(t)
	q := ListQuery{BasePath: "/info", FilterParam: "keyword", PageSize: 4, Page: 2}

	l := List(info, q)
	assert.Equal(t, []int{5, 6}, ids(l.Items))
	assert.Equal(t, 2, l.TotalPages)
	assert.Equal(t, "/info?page=1", l.PrevURL)
	assert.Empty(t, l.NextURL)
	assert.False(t, l.Pages[0].Current)
	assert.True(t, l.Pages[1].Current)

	q.Page = 99
	assert.Equal(t, 2, List(info, q).Page)

	q.Page = -3
	l = List(info, q)
	assert.Equal(t, 1, l.Page)
	assert.Equal(t, "/info?page=2", l.NextURL)

	q.PageSize = 0
	assert.Len(t, List(info, q).Items, 1)
}

func TestListHugePageSize(t *testing.T) {
	l := List(infoArticles(t), ListQuery{BasePath: "/info", PageSize: math.MaxInt, Page: 1})
	assert.Len(t, l.Items, 6)
	assert.Equal(t, 1, l.TotalPages)
	require.Len(t, l.Pages, 1)
	assert.True(t, l.Pages[0].Current)
}

func TestListLinksKeepFilterAndSort(t *testing.T) {
	info := infoArticles(t)
	l := List(info, ListQuery{
		BasePath: "/info", FilterParam: "keyword", Filter: "재테크",
		Sort: SortPopular, PageSize: 1, Page: 1,
	})

	assert.Equal(t, []int{5}, ids(l.Items))
	assert.Equal(t, "/info?keyword=%EC%9E%AC%ED%85%8C%ED%81%AC&page=2&sort=popular", l.NextURL)
	assert.Equal(t, "/info?keyword=%EC%9E%AC%ED%85%8C%ED%81%AC", l.LatestURL)
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortPopular, ParseSortOrder("popular"))
	assert.Equal(t, SortLatest, ParseSortOrder("latest"))
	assert.Equal(t, SortLatest, ParseSortOrder("random"))
}

func TestRankKeywords(t *testing.T) {
	cat, err := ParseCatalog(defaultCatalog, FormatYAML)
	require.NoError(t, err)

	names := func(kws []models.Keyword) []string {
		out := make([]string, 0, len(kws))
		for _, k := range kws {
			out = append(out, k.Keyword)
		}
		return out
	}

	byCPC := RankKeywords(cat.Keywords, ParseKeywordOrder("cpc"))
	assert.Equal(t, "부동산투자", byCPC[0].Keyword)
	assert.Equal(t, "IT트렌드", byCPC[len(byCPC)-1].Keyword)

	byVolume := RankKeywords(cat.Keywords, ParseKeywordOrder("volume"))
	assert.Equal(t, "주식투자", byVolume[0].Keyword)

	assert.Equal(t, names(cat.Keywords), names(RankKeywords(cat.Keywords, ParseKeywordOrder("bogus"))))
	assert.Equal(t, "자동차보험", cat.Keywords[0].Keyword, "ranking must not reorder the catalog")
}
