package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

type YamlParser struct{}

// parse loads a yaml file from disk or over http(s). ${VAR} references are
// expanded from the environment before parsing.
func (yp *YamlParser) parse(location string) (map[string]any, error) {
	buffer, err := read(location)
	if err != nil {
		return nil, err
	}
	if len(buffer) == 0 {
		return nil, fmt.Errorf("config file (%s) is empty", location)
	}

	buffer = []byte(os.ExpandEnv(string(buffer)))

	config := make(map[string]any)
	if err := yaml.Unmarshal(buffer, &config); err != nil {
		return nil, err
	}
	return config, nil
}

func read(location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return os.ReadFile(location)
	}
	resp, err := http.Get(location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %s", location, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
