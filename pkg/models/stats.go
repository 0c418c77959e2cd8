package models

// DailyStats feeds the admin summary cards. Every value is a literal.
type DailyStats struct {
	PageViews     int      `yaml:"pageViews" toml:"pageViews"`
	AdClicks      int      `yaml:"adClicks" toml:"adClicks"`
	CTR           string   `yaml:"ctr" toml:"ctr"`
	Revenue       int      `yaml:"revenue" toml:"revenue"`
	Articles      int      `yaml:"articles" toml:"articles"`
	Trending      []string `yaml:"trending" toml:"trending"`
	VisitorsDelta string   `yaml:"visitorsDelta" toml:"visitorsDelta"`
	AvgCPC        int      `yaml:"avgCpc" toml:"avgCpc"`
	NewArticles   int      `yaml:"newArticles" toml:"newArticles"`
}

type BatchHealth string

const (
	BatchOK      BatchHealth = "ok"
	BatchWarning BatchHealth = "warning"
)

// BatchJob is a decorative status card for one of the automation jobs.
type BatchJob struct {
	Name    string      `yaml:"name" toml:"name"`
	Health  BatchHealth `yaml:"health" toml:"health"`
	LastRun string      `yaml:"lastRun" toml:"lastRun"`
	Summary string      `yaml:"summary" toml:"summary"`
}
