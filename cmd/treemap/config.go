package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Entries []EntryConfig `toml:"entries"`
}

type EntryConfig struct {
	Key   string `toml:"key"`
	Value int    `toml:"value"`
}

func NewConfig() *Config {
	return &Config{
		Entries: []EntryConfig{
			{Key: "Word1", Value: 1},
			{Key: "Word2", Value: 2},
		},
	}
}

// Load replaces the default entries with those found in the TOML file at path.
func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	loaded := Config{}

	err = toml.NewDecoder(file).DisallowUnknownFields().Decode(&loaded)
	if err != nil {
		return err
	}

	c.Entries = loaded.Entries

	return nil
}
