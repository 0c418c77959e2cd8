package models

// Catalog holds every literal list the portal pages render.
type Catalog struct {
	Featured         []ArticleRef `yaml:"featured" toml:"featured"`
	TrendingKeywords []string     `yaml:"trendingKeywords" toml:"trendingKeywords"`
	Info             []Article    `yaml:"info" toml:"info"`
	PopularKeywords  []string     `yaml:"popularKeywords" toml:"popularKeywords"`
	Fun              []Article    `yaml:"fun" toml:"fun"`
	TrendingTags     []string     `yaml:"trendingTags" toml:"trendingTags"`
	Stats            DailyStats   `yaml:"stats" toml:"stats"`
	RecentArticles   []Article    `yaml:"recentArticles" toml:"recentArticles"`
	Keywords         []Keyword    `yaml:"keywords" toml:"keywords"`
	Batches          []BatchJob   `yaml:"batches" toml:"batches"`
}

// Articles returns the listing for a category, or nil for an unknown one.
func (c *Catalog) Articles(category Category) []Article {
	switch category {
	case CategoryInfo:
		return c.Info
	case CategoryFun:
		return c.Fun
	}
	return nil
}
