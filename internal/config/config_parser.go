package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"k8s.io/klog/v2"
)

// DebugEnv overrides the debug setting of the config file.
const DebugEnv = "JSONIT_DEBUG"

var ErrUnknownFormat = errors.New("unknown config format. config filename should ends with yaml|yml")

type Parser interface {
	parse(filename string) (map[string]any, error)
}

// Settings controls how documents are encoded.
type Settings struct {
	// Debug turns on two-space indented output.
	Debug bool `mapstructure:"debug"`
}

func ParseConfig(filename string) (map[string]any, error) {
	lowerFilename := strings.ToLower(filename)
	if strings.HasSuffix(lowerFilename, ".yaml") || strings.HasSuffix(lowerFilename, ".yml") {
		yp := &YamlParser{}
		return yp.parse(filename)
	}
	return nil, ErrUnknownFormat
}

// LoadSettings reads settings from filename, an empty filename means
// defaults. The environment is applied on top.
func LoadSettings(filename string) (*Settings, error) {
	settings := &Settings{}
	if filename != "" {
		raw, err := ParseConfig(filename)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filename, err)
		}
		if err := DecodeSettings(raw, settings); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filename, err)
		}
	}
	if err := settings.applyEnv(); err != nil {
		return nil, err
	}
	klog.V(2).Infof("settings: %+v", *settings)
	return settings, nil
}

// DecodeSettings decodes a raw config map into settings. Values are weakly
// typed, so debug: "yes" or debug: 1 work too.
func DecodeSettings(raw map[string]any, settings *Settings) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           settings,
		ErrorUnused:      false,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func (s *Settings) applyEnv() error {
	v, ok := os.LookupEnv(DebugEnv)
	if !ok || v == "" {
		return nil
	}
	debug, err := cast.ToBoolE(v)
	if err != nil {
		return fmt.Errorf("%s: %w", DebugEnv, err)
	}
	s.Debug = debug
	return nil
}
