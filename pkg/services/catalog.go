package services

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"js-portal/pkg/config"
	"js-portal/pkg/models"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

var (
	catalogCache *models.Catalog
	cacheMutex   sync.Mutex
	cacheLoaded  bool
)

// GetCatalog returns the mock catalog, decoding it on first use. The embedded
// YAML document is used unless config.CatalogPath names a replacement file.
func GetCatalog() (*models.Catalog, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if cacheLoaded {
		return catalogCache, nil
	}

	content, format := defaultCatalog, FormatYAML
	if config.CatalogPath != "" {
		raw, err := os.ReadFile(config.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		f, err := DetectFormat(config.CatalogPath)
		if err != nil {
			return nil, err
		}
		content, format = raw, f
	}

	cat, err := ParseCatalog(content, format)
	if err != nil {
		return nil, err
	}

	catalogCache = cat
	cacheLoaded = true
	return catalogCache, nil
}

// InvalidateCatalog drops the cached catalog so the next GetCatalog decodes again.
func InvalidateCatalog() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	catalogCache = nil
}

// FindArticle looks up an article by category and id.
func FindArticle(cat *models.Catalog, category models.Category, id int) (models.Article, bool) {
	for _, a := range cat.Articles(category) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// FindRecentArticle looks up an admin table row by id.
func FindRecentArticle(cat *models.Catalog, id int) (models.Article, bool) {
	for _, a := range cat.RecentArticles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// ResolveFeatured returns the articles referenced by the home page, in order.
func ResolveFeatured(cat *models.Catalog) []models.Article {
	featured := make([]models.Article, 0, len(cat.Featured))
	for _, ref := range cat.Featured {
		if a, ok := FindArticle(cat, ref.Category, ref.ID); ok {
			featured = append(featured, a)
		}
	}
	return featured
}
