package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

func (c *Config) normalize() error {
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.Server.AllowedOrigins = origins

	c.Captions.Backend = strings.ToLower(strings.TrimSpace(c.Captions.Backend))
	if c.Captions.Backend == "" {
		c.Captions.Backend = defaultBackend
	}
	c.Captions.YtDlpBinary = strings.TrimSpace(c.Captions.YtDlpBinary)
	if c.Captions.YtDlpBinary == "" {
		c.Captions.YtDlpBinary = defaultYtDlpBinary
	}

	lang := strings.TrimSpace(c.Captions.Language)
	if lang == "" {
		lang = defaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("captions.language: invalid language tag %q: %w", lang, err)
	}
	c.Captions.Language = tag.String()

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
