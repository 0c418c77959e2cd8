package models

// Category groups articles into the two portal sections.
type Category string

const (
	CategoryInfo Category = "info"
	CategoryFun  Category = "fun"
)

// Status is the publication state shown on the admin tables.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
)

// Article represents a single content record rendered by the listing, detail and admin pages.
type Article struct {
	ID        int      `yaml:"id" toml:"id"`
	Title     string   `yaml:"title" toml:"title"`
	Excerpt   string   `yaml:"excerpt" toml:"excerpt"`
	Category  Category `yaml:"category" toml:"category"`
	Status    Status   `yaml:"status" toml:"status"`
	Date      string   `yaml:"date" toml:"date"` // ISO date, rendered as is
	ReadTime  string   `yaml:"readTime" toml:"readTime"`
	Views     int      `yaml:"views" toml:"views"`
	Likes     int      `yaml:"likes" toml:"likes"`
	Revenue   int      `yaml:"revenue" toml:"revenue"`
	Source    string   `yaml:"source" toml:"source"`
	Thumbnail string   `yaml:"thumbnail" toml:"thumbnail"`
	Keywords  []string `yaml:"keywords" toml:"keywords"` // tags for fun articles
}

// ArticleRef points at an article in one of the category listings.
type ArticleRef struct {
	Category Category `yaml:"category" toml:"category"`
	ID       int      `yaml:"id" toml:"id"`
}
