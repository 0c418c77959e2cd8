package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"js-portal/pkg/models"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const DefaultSessionSecret = "js-portal-dev-secret"

var (
	Port     = "8080"
	GinMode  = ""
	LogLevel = "info"

	// Session settings
	SessionName   = "jsportal"
	SessionSecret = DefaultSessionSecret

	// Content settings
	CatalogPath    = ""
	SiteConfigPath = ""
	PageSize       = 6

	Site = DefaultSite()
)

// DefaultSite returns the layout metadata used when no site file overrides it.
func DefaultSite() models.Site {
	return models.Site{
		Title:       "JS Portal",
		Tagline:     "매일 업데이트되는 최신 트렌드와 정보",
		Description: "매일 업데이트되는 최신 트렌드와 실용적인 정보를 제공합니다",
		Keywords:    "트렌드, 정보, 커뮤니티, 이슈, 자동 콘텐츠",
	}
}

type siteFile struct {
	Site    models.Site `toml:"site"`
	Listing struct {
		PageSize int `toml:"page_size"`
	} `toml:"listing"`
}

// Init loads .env, applies environment defaults and overlays the optional TOML site file.
// Environment values win over the site file.
func Init() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Port = getEnv("PORT", "8080")
	GinMode = getEnv("GIN_MODE", "")
	LogLevel = getEnv("LOG_LEVEL", "info")

	SessionName = getEnv("SESSION_NAME", "jsportal")
	SessionSecret = getEnv("SESSION_SECRET", DefaultSessionSecret)

	CatalogPath = getEnv("PORTAL_CATALOG", "")
	SiteConfigPath = getEnv("PORTAL_SITE_CONFIG", "")

	Site = DefaultSite()
	PageSize = 6
	if SiteConfigPath != "" {
		if err := loadSiteFile(SiteConfigPath); err != nil {
			return err
		}
	}

	if ps := os.Getenv("PAGE_SIZE"); ps != "" {
		val, err := strconv.Atoi(ps)
		if err != nil || val < 1 {
			return fmt.Errorf("invalid PAGE_SIZE %q", ps)
		}
		PageSize = val
	}

	return nil
}

func loadSiteFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read site config: %w", err)
	}

	var sf siteFile
	if err := toml.Unmarshal(content, &sf); err != nil {
		return fmt.Errorf("parse site config %s: %w", path, err)
	}

	if sf.Site.Title != "" {
		Site.Title = sf.Site.Title
	}
	if sf.Site.Tagline != "" {
		Site.Tagline = sf.Site.Tagline
	}
	if sf.Site.Description != "" {
		Site.Description = sf.Site.Description
	}
	if sf.Site.Keywords != "" {
		Site.Keywords = sf.Site.Keywords
	}
	if sf.Listing.PageSize > 0 {
		PageSize = sf.Listing.PageSize
	}
	return nil
}
