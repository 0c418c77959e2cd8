package models

type KeywordStatus string

const (
	KeywordActive  KeywordStatus = "active"
	KeywordPending KeywordStatus = "pending"
)

// Keyword is an ad-targeting search term shown on the admin dashboard.
type Keyword struct {
	Keyword      string        `yaml:"keyword" toml:"keyword"`
	CPC          int           `yaml:"cpc" toml:"cpc"`
	SearchVolume int           `yaml:"searchVolume" toml:"searchVolume"`
	Status       KeywordStatus `yaml:"status" toml:"status"`
}
