package services

import (
	"sync"
	"testing"

	"js-portal/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestBadges(t *testing.T) {
	assert.Equal(t, Badge{"정보", "bg-blue-100 text-blue-700"}, CategoryBadge(models.CategoryInfo))
	assert.Equal(t, Badge{"트렌드/재미", "bg-orange-100 text-orange-700"}, CategoryBadge(models.CategoryFun))
	assert.Equal(t, Badge{"게시됨", "bg-green-100 text-green-700"}, StatusBadge(models.StatusPublished))
	assert.Equal(t, Badge{"초안", "bg-gray-100 text-gray-700"}, StatusBadge(models.StatusDraft))
	assert.Equal(t, Badge{"사용 중", "bg-green-100 text-green-700"}, KeywordStatusBadge(models.KeywordActive))
	assert.Equal(t, Badge{"대기 중", "bg-yellow-100 text-yellow-700"}, KeywordStatusBadge(models.KeywordPending))
	assert.Equal(t, Badge{"정상", "bg-green-100 text-green-700"}, BatchHealthBadge(models.BatchOK))
	assert.Equal(t, Badge{"주의", "bg-yellow-100 text-yellow-700"}, BatchHealthBadge(models.BatchWarning))

	// unknown values still map to something renderable
	assert.Equal(t, Badge{"news", "bg-gray-100 text-gray-700"}, CategoryBadge("news"))
	assert.Equal(t, CategoryBadge(models.CategoryInfo), CategoryBadge(models.CategoryInfo))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/info/3", ArticlePath(models.CategoryInfo, 3))
	assert.Equal(t, "/fun/12", ArticlePath(models.CategoryFun, 12))
	assert.Equal(t, "/admin/articles/101", AdminArticlePath(101))
	assert.Equal(t, "/info?keyword=IT", KeywordFilterPath("IT"))
	assert.Equal(t, "/info?keyword=%EA%B8%88%EC%9C%B5", KeywordFilterPath("금융"))
	assert.Equal(t, "/fun?tag=Z%EC%84%B8%EB%8C%80", TagFilterPath("Z세대"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "256", FormatNumber(256))
	assert.Equal(t, "12,845", FormatNumber(12845))
	assert.Equal(t, "₩125,680", FormatWon(125680))
}

func TestFormatNumberConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "1,245", FormatNumber(1245))
			}
		}()
	}
	wg.Wait()
}
