package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".kspace.yml"

// DefaultExcludes are glob patterns under content_dir that never become pages.
var DefaultExcludes = []string{
	"**/_*",
	"**/.*",
	"drafts/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:      "Learning Path",
		DataFile:       "data/learning-path.json",
		ContentDir:     "content",
		OutputDir:      "public",
		IndexPage:      "index.html",
		Include:        []string{"**/*.md"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		MaxConcurrency: 4,
		Server: ServerConfig{
			Port:            3000,
			AllowAllOrigins: true,
			HistoryDB:       ".kspace/history.db",
		},
		Git: GitConfig{
			Remote:        "origin",
			Branch:        "",
			CommitMessage: "update topics",
			Push:          true,
		},
	}
}
