package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/flexbox"
	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// rootPrefix is the prefix of configuration keys for the root container.
const rootPrefix = "root"

// yamlConfig is an application configuration read from a YAML file.
// Nested maps are flattened into dotted keys, e.g.
//
//	root:
//	  direction: column
//
// is available as key "root.direction".
type yamlConfig map[string]string

var _ schuko.Configuration = yamlConfig{}

// loadConfig reads a YAML configuration file. An empty filename searches
// the usual configuration locations for flexdump and returns a nil
// configuration if none is found.
func loadConfig(filename string) (yamlConfig, error) {
	if filename == "" {
		located := schuko.LocateConfig("flexdump", "", []string{"yaml", "yml"})
		if len(located) == 0 {
			return nil, nil
		}
		filename = located[0]
	}
	tracer().Infof("reading configuration from %s", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err = yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("configuration %s: %w", filename, err)
	}
	conf := yamlConfig{}
	conf.flatten("", tree)
	return conf, nil
}

func (c yamlConfig) flatten(prefix string, tree map[string]interface{}) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			c.flatten(key, sub)
			continue
		}
		c[key] = fmt.Sprintf("%v", v)
	}
}

// rootConfig returns the flex configuration for the root container, if
// the configuration contains keys for it.
func (c yamlConfig) rootConfig() (*flexbox.Config, error) {
	found := false
	for k := range c {
		found = found || strings.HasPrefix(k, rootPrefix+".")
	}
	if !found {
		return nil, nil
	}
	conf, err := flexbox.ConfigFrom(c, rootPrefix)
	if err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c yamlConfig) InitDefaults() {}

func (c yamlConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c yamlConfig) GetString(key string) string {
	return c[key]
}

func (c yamlConfig) GetInt(key string) int {
	n, err := strconv.Atoi(c[key])
	if err != nil {
		tracer().Errorf("configuration key %s: %v", key, err)
	}
	return n
}

func (c yamlConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c yamlConfig) IsInteractive() bool { return false }
