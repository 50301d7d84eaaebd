package config

import (
	"os"
	"path"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg            Pg            `yaml:"pg"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	SecureCookies bool          `yaml:"secure_cookies"`
	TemplateDir   string        `yaml:"template_dir"`
	StaticDir     string        `yaml:"static_dir"`
	// CommentMaxLen bounds comment text, matching the comments.text column.
	CommentMaxLen int `yaml:"comment_max_len"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	SessionKey string `yaml:"session_key"`
	PgPassword string `yaml:"pg_password"`
}

func (s *Config) SessionKey() string {
	return s.private.SessionKey
}

func (s *Config) SessionTTL() time.Duration {
	return s.Public.SessionTTL
}

// PgPassword prefers the private/env value over the public file.
func (s *Config) PgPassword() string {
	if s.private.PgPassword != "" {
		return s.private.PgPassword
	}
	return s.Public.Pg.Password
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, then applies
// environment overrides. Secrets may live entirely in the environment, so
// private.yaml is optional (cmd/quillpad loads .env before calling this).
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	cfg := &Config{public, private}
	cfg.applyEnv()
	cfg.mustValidate()
	return cfg
}

func (s *Config) applyEnv() {
	if v := os.Getenv("QUILLPAD_SESSION_KEY"); v != "" {
		s.private.SessionKey = v
	}
	if v := os.Getenv("QUILLPAD_PG_HOST"); v != "" {
		s.Public.Pg.Host = v
	}
	if v := os.Getenv("QUILLPAD_PG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.Public.Pg.Port = port
		}
	}
	if v := os.Getenv("QUILLPAD_PG_USER"); v != "" {
		s.Public.Pg.User = v
	}
	if v := os.Getenv("QUILLPAD_PG_PASSWORD"); v != "" {
		s.private.PgPassword = v
	}
	if v := os.Getenv("QUILLPAD_PG_DBNAME"); v != "" {
		s.Public.Pg.Dbname = v
	}
}

func (s *Config) mustValidate() {
	if s.private.SessionKey == "" {
		panic("session_key is not set (private.yaml or QUILLPAD_SESSION_KEY)")
	}
	if s.Public.SessionTTL <= 0 {
		panic("session_ttl must be positive")
	}
	if s.Public.CommentMaxLen <= 0 {
		s.Public.CommentMaxLen = 1000
	}
	if s.Public.TemplateDir == "" {
		s.Public.TemplateDir = "web/templates"
	}
	if s.Public.StaticDir == "" {
		s.Public.StaticDir = "web/static"
	}
}
