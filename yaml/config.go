// Package yaml reads selector configuration files using gopkg.in/yaml.v3.
//
//	content: div.content
//	title: //title
//	layout: post
//	inline: span.bold
//	remove:
//	  - "#extended"
//	  - //div[@class='ads']
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/pageport"
	"gopkg.in/yaml.v3"
)

// StringList decodes from either a scalar or a sequence of scalars.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return pageport.Errorf(pageport.EINVALID, "line %d: expected a string or a list of strings", value.Line)
}

// Config is the on-disk form of a selector configuration.
type Config struct {
	Preset  string     `yaml:"preset"`
	Content string     `yaml:"content"`
	Title   string     `yaml:"title"`
	Layout  string     `yaml:"layout"`
	Inline  StringList `yaml:"inline"`
	Remove  StringList `yaml:"remove"`
}

// Decode reads a Config from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		if pageport.ErrorCode(err) == pageport.EINVALID {
			return nil, err
		}
		return nil, pageport.Errorf(pageport.EINVALID, "invalid config: %v", err)
	}
	return &c, nil
}

// Load reads a Config from the file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Options converts the optional settings to pageport options.
func (c *Config) Options() []pageport.Option {
	return []pageport.Option{
		pageport.WithLayout(c.Layout),
		pageport.WithTitle(c.Title),
		pageport.WithRemove(c.Remove...),
		pageport.WithInline(c.Inline...),
	}
}

// SelectorConfig builds a validated SelectorConfig. Extra options are
// applied after the file's own.
func (c *Config) SelectorConfig(extra ...pageport.Option) (*pageport.SelectorConfig, error) {
	cfg := pageport.NewSelectorConfig(c.Content, append(c.Options(), extra...)...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
