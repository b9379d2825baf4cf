package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/widgets"
)

// ErrInvalid marks configuration that loaded but cannot drive the demo.
var ErrInvalid = errors.New("invalid config")

// Config holds demo configuration.
type Config struct {
	UI      UIConfig            `mapstructure:"ui" toml:"ui"`
	Log     LogConfig           `mapstructure:"log" toml:"log"`
	Keys    map[string][]string `mapstructure:"keys" toml:"keys,omitempty"`
	Options []OptionConfig      `mapstructure:"options" toml:"options"`
	Selects []SelectConfig      `mapstructure:"selects" toml:"selects"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width       int    `mapstructure:"width" toml:"width"`
	MaxVisible  int    `mapstructure:"max_visible" toml:"max_visible"`
	Accent      string `mapstructure:"accent" toml:"accent"`
	Placeholder string `mapstructure:"placeholder" toml:"placeholder"`
}

// LogConfig controls the file logger. An empty Path disables logging.
type LogConfig struct {
	Path   string `mapstructure:"path" toml:"path"`
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// OptionConfig is one catalog entry. Value may be a TOML integer, float or
// string.
type OptionConfig struct {
	Label string `mapstructure:"label" toml:"label"`
	Value any    `mapstructure:"value" toml:"value"`
}

// SelectConfig describes one select in the demo. Initial lists catalog labels.
type SelectConfig struct {
	Title    string   `mapstructure:"title" toml:"title"`
	Multiple bool     `mapstructure:"multiple" toml:"multiple"`
	Initial  []string `mapstructure:"initial" toml:"initial"`
}

const (
	minWidth     = 12
	envPrefix    = "SELECTDEMO"
	envConfigVar = "SELECTDEMO_CONFIG"
)

// Default returns the built-in demo: five numbered options, a multiple
// select starting at [First] and a single select starting at First.
func Default() Config {
	return Config{
		UI:  UIConfig{Width: 40, MaxVisible: 6, Accent: "pink", Placeholder: "Select..."},
		Log: LogConfig{Level: "info", Format: "console"},
		Options: []OptionConfig{
			{Label: "First", Value: int64(1)},
			{Label: "Second", Value: int64(2)},
			{Label: "Third", Value: int64(3)},
			{Label: "Fourth", Value: int64(4)},
			{Label: "Fifth", Value: int64(5)},
		},
		Selects: []SelectConfig{
			{Title: "Multiple", Multiple: true, Initial: []string{"First"}},
			{Title: "Single", Initial: []string{"First"}},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/selectdemo/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "selectdemo", "config.toml"), nil
}

// Load reads configuration from path, falling back to SELECTDEMO_CONFIG and
// then DefaultPath. A missing file at the default location is not an error.
// Env var overrides use prefix SELECTDEMO_.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.width", def.UI.Width)
	v.SetDefault("ui.max_visible", def.UI.MaxVisible)
	v.SetDefault("ui.accent", def.UI.Accent)
	v.SetDefault("ui.placeholder", def.UI.Placeholder)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	explicit := path != ""
	if !explicit {
		path = os.Getenv(envConfigVar)
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Options) == 0 {
		c.Options = def.Options
	}
	if len(c.Selects) == 0 {
		c.Selects = def.Selects
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the catalog and selects are usable.
func (c Config) Validate() error {
	if c.UI.Width < minWidth {
		return fmt.Errorf("%w: ui.width %d is below the minimum of %d", ErrInvalid, c.UI.Width, minWidth)
	}
	if _, ok := widgets.Accent(c.UI.Accent); !ok && c.UI.Accent != "" {
		return fmt.Errorf("%w: ui.accent %q is neither a palette name nor #rrggbb", ErrInvalid, c.UI.Accent)
	}
	if c.UI.MaxVisible < 1 {
		return fmt.Errorf("%w: ui.max_visible must be at least 1", ErrInvalid)
	}
	if len(c.Options) == 0 {
		return fmt.Errorf("%w: no options defined", ErrInvalid)
	}

	labels := make([]string, 0, len(c.Options))
	values := make(map[core.Value]string, len(c.Options))
	for i, o := range c.Options {
		if strings.TrimSpace(o.Label) == "" {
			return fmt.Errorf("%w: options[%d]: label is required", ErrInvalid, i)
		}
		if slices.Contains(labels, o.Label) {
			return fmt.Errorf("%w: options[%d]: duplicate label %q", ErrInvalid, i, o.Label)
		}
		val, err := optionValue(o.Value)
		if err != nil {
			return fmt.Errorf("%w: options[%d] %q: %v", ErrInvalid, i, o.Label, err)
		}
		if prev, ok := values[val]; ok {
			return fmt.Errorf("%w: options[%d] %q: value %s already used by %q", ErrInvalid, i, o.Label, val, prev)
		}
		values[val] = o.Label
		labels = append(labels, o.Label)
	}

	if len(c.Selects) == 0 {
		return fmt.Errorf("%w: no selects defined", ErrInvalid)
	}
	for i, s := range c.Selects {
		if !s.Multiple && len(s.Initial) > 1 {
			return fmt.Errorf("%w: selects[%d] %q: single select has %d initial values", ErrInvalid, i, s.Title, len(s.Initial))
		}
		for _, label := range s.Initial {
			if slices.Contains(labels, label) {
				continue
			}
			if hint := suggest(label, labels); hint != "" {
				return fmt.Errorf("%w: selects[%d] %q: unknown option %q (did you mean %q?)", ErrInvalid, i, s.Title, label, hint)
			}
			return fmt.Errorf("%w: selects[%d] %q: unknown option %q", ErrInvalid, i, s.Title, label)
		}
	}

	for action := range c.Keys {
		if !slices.Contains(knownActions(), action) {
			if hint := suggest(action, knownActions()); hint != "" {
				return fmt.Errorf("%w: keys: unknown action %q (did you mean %q?)", ErrInvalid, action, hint)
			}
			return fmt.Errorf("%w: keys: unknown action %q", ErrInvalid, action)
		}
	}
	return nil
}

// Catalog converts the configured options to widget options. It fails on
// the first value that is not an integer, float or string.
func (c Config) Catalog() ([]core.Option, error) {
	out := make([]core.Option, 0, len(c.Options))
	for i, o := range c.Options {
		val, err := optionValue(o.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: options[%d] %q: %v", ErrInvalid, i, o.Label, err)
		}
		out = append(out, core.Option{Label: o.Label, Value: val})
	}
	return out, nil
}

// InitialOptions resolves a select's initial labels against catalog, in the
// order they were listed. Unknown labels are skipped.
func (s SelectConfig) InitialOptions(catalog []core.Option) []core.Option {
	out := make([]core.Option, 0, len(s.Initial))
	for _, label := range s.Initial {
		i := slices.IndexFunc(catalog, func(o core.Option) bool { return o.Label == label })
		if i >= 0 {
			out = append(out, catalog[i])
		}
	}
	return out
}

// Write encodes c as TOML at path, creating the directory if needed. An
// existing file is left alone unless overwrite is set.
func Write(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("write config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func optionValue(raw any) (core.Value, error) {
	switch v := raw.(type) {
	case int:
		return core.Number(float64(v)), nil
	case int64:
		return core.Number(float64(v)), nil
	case float64:
		return core.Number(v), nil
	case string:
		return core.Text(v), nil
	case nil:
		return core.Value{}, errors.New("value is required")
	default:
		return core.Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

func knownActions() []string {
	names := make([]string, 0, 8)
	for action := range core.DefaultKeybindingsByAction(core.DefaultKeyBindings()) {
		names = append(names, action)
	}
	slices.Sort(names)
	return names
}

// suggest returns the candidate closest to s by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func suggest(s string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(s)/3) {
		return ""
	}
	return best
}
