package main

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/cours-de-latin/nganasan/internal/util"
)

const defaultCacheTTL = 10 * time.Minute

// Config is loaded from the [server] section of config.ini.
type Config struct {
	Listen         string
	DataFile       string
	CacheTTL       time.Duration
	AllowedOrigins []string
	IsDevelopment  bool
}

// loadConfigFile reads path, or the default locations when path is empty.
// Missing default files are not an error.
func loadConfigFile(path string) (*ini.File, error) {
	var cfg *ini.File
	var err error
	if path != "" {
		cfg, err = ini.Load(path)
	} else {
		cfg, err = ini.LooseLoad("config.ini", "/etc/nganasan/config.ini")
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}
	return cfg, nil
}

func LoadConfig(sec *ini.Section) *Config {
	c := &Config{}
	c.Listen = sec.Key("Listen").MustString(":8080")
	c.DataFile = sec.Key("DataFile").String()
	c.CacheTTL = sec.Key("CacheTTL").MustDuration(defaultCacheTTL)
	c.AllowedOrigins = sec.Key("AllowedOrigins").Strings(",")
	c.IsDevelopment, _ = sec.Key("IsDevelopment").Bool()

	// cache keys are user input, so entries must expire
	if c.CacheTTL <= 0 {
		util.LogWarnf("CacheTTL %s is not positive, using %s", c.CacheTTL, defaultCacheTTL)
		c.CacheTTL = defaultCacheTTL
	}
	if len(c.AllowedOrigins) == 0 {
		util.LogWarnf("no AllowedOrigins configured, allowing any origin")
		c.AllowedOrigins = []string{"*"}
	}
	return c
}
