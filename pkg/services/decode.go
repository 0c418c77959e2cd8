package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"js-portal/pkg/models"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// DetectFormat picks the catalog decoder from a file extension.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported catalog format: %s", path)
}

// ParseCatalog decodes, normalizes and validates a catalog document.
func ParseCatalog(content []byte, format string) (*models.Catalog, error) {
	var cat models.Catalog
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cat); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cat); err != nil {
			return nil, fmt.Errorf("decode toml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	applyDefaults(&cat)
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// applyDefaults fills the fields the listings imply: the category of the list an
// article sits in and a published status when none is given.
func applyDefaults(cat *models.Catalog) {
	fill := func(list []models.Article, category models.Category) {
		for i := range list {
			if list[i].Category == "" {
				list[i].Category = category
			}
			if list[i].Status == "" {
				list[i].Status = models.StatusPublished
			}
		}
	}
	fill(cat.Info, models.CategoryInfo)
	fill(cat.Fun, models.CategoryFun)
	for i := range cat.RecentArticles {
		if cat.RecentArticles[i].Status == "" {
			cat.RecentArticles[i].Status = models.StatusPublished
		}
	}
}

// Validate checks the enum values, metric ranges, id uniqueness and featured
// references of a catalog.
func Validate(cat *models.Catalog) error {
	check := func(name string, list []models.Article, want models.Category) error {
		seen := make(map[int]bool, len(list))
		for _, a := range list {
			if a.ID < 1 {
				return fmt.Errorf("%s: article %q has invalid id %d", name, a.Title, a.ID)
			}
			if seen[a.ID] {
				return fmt.Errorf("%s: duplicate article id %d", name, a.ID)
			}
			seen[a.ID] = true
			if !validCategory(a.Category) || (want != "" && a.Category != want) {
				return fmt.Errorf("%s: article %d has category %q", name, a.ID, a.Category)
			}
			if !validStatus(a.Status) {
				return fmt.Errorf("%s: article %d has status %q", name, a.ID, a.Status)
			}
			if a.Views < 0 || a.Likes < 0 || a.Revenue < 0 {
				return fmt.Errorf("%s: article %d has negative metrics", name, a.ID)
			}
		}
		return nil
	}

	if err := check("info", cat.Info, models.CategoryInfo); err != nil {
		return err
	}
	if err := check("fun", cat.Fun, models.CategoryFun); err != nil {
		return err
	}
	if err := check("recentArticles", cat.RecentArticles, ""); err != nil {
		return err
	}

	for _, ref := range cat.Featured {
		if _, ok := FindArticle(cat, ref.Category, ref.ID); !ok {
			return fmt.Errorf("featured: no %s article with id %d", ref.Category, ref.ID)
		}
	}

	for _, k := range cat.Keywords {
		if k.Keyword == "" {
			return fmt.Errorf("keywords: empty keyword")
		}
		if k.Status != models.KeywordActive && k.Status != models.KeywordPending {
			return fmt.Errorf("keywords: %q has status %q", k.Keyword, k.Status)
		}
		if k.CPC < 0 || k.SearchVolume < 0 {
			return fmt.Errorf("keywords: %q has negative metrics", k.Keyword)
		}
	}

	for _, b := range cat.Batches {
		if b.Health != models.BatchOK && b.Health != models.BatchWarning {
			return fmt.Errorf("batches: %q has health %q", b.Name, b.Health)
		}
	}

	s := cat.Stats
	if s.PageViews < 0 || s.AdClicks < 0 || s.Revenue < 0 || s.Articles < 0 || s.AvgCPC < 0 || s.NewArticles < 0 {
		return fmt.Errorf("stats: negative metrics")
	}
	return nil
}

func validCategory(c models.Category) bool {
	return c == models.CategoryInfo || c == models.CategoryFun
}

func validStatus(s models.Status) bool {
	return s == models.StatusPublished || s == models.StatusDraft
}
