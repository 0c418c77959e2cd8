package models

// Site carries the metadata rendered into the layout head and footer.
type Site struct {
	Title       string `toml:"title"`
	Tagline     string `toml:"tagline"`
	Description string `toml:"description"`
	Keywords    string `toml:"keywords"`
}
