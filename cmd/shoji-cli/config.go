package main

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"
)

type Profile struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Debug bool   `yaml:"debug"`
}

type Config struct {
	Profiles []Profile `yaml:"profiles"`
}

func (cfg *Config) Profile(name string) (*Profile, error) {
	if name == "" && len(cfg.Profiles) > 0 {
		return &cfg.Profiles[0], nil
	}

	for i := range cfg.Profiles {
		if cfg.Profiles[i].Name == name {
			return &cfg.Profiles[i], nil
		}
	}

	return nil, fmt.Errorf("no profile named %s in configuration", name)
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
