package config

// Config is the top-level kspace configuration, corresponding to .kspace.yml.
type Config struct {
	SiteTitle      string       `yaml:"site_title" koanf:"site_title"`
	DataFile       string       `yaml:"data_file" koanf:"data_file"`
	ContentDir     string       `yaml:"content_dir" koanf:"content_dir"`
	OutputDir      string       `yaml:"output_dir" koanf:"output_dir"`
	IndexPage      string       `yaml:"index_page" koanf:"index_page"`
	Include        []string     `yaml:"include" koanf:"include"`
	Exclude        []string     `yaml:"exclude" koanf:"exclude"`
	MaxConcurrency int          `yaml:"max_concurrency" koanf:"max_concurrency"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Git            GitConfig    `yaml:"git" koanf:"git"`
}

// ServerConfig holds settings for `kspace serve`.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	HistoryDB       string `yaml:"history_db" koanf:"history_db"`
}

// GitConfig controls how the editing server publishes the data file.
type GitConfig struct {
	Remote        string `yaml:"remote" koanf:"remote"`
	Branch        string `yaml:"branch" koanf:"branch"`
	CommitMessage string `yaml:"commit_message" koanf:"commit_message"`
	Push          bool   `yaml:"push" koanf:"push"`
}
