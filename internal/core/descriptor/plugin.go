package descriptor

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PluginEntry is a single plugin activation in the descriptor. It is a
// tagged variant: either a bare plugin name, or a name paired with an
// options mapping. The enclosing sequence order is significant; the build
// framework registers plugins in list order.
type PluginEntry struct {
	resolve string
	options Options
}

// NewPlugin creates a bare plugin activation.
func NewPlugin(name string) PluginEntry {
	return PluginEntry{resolve: name}
}

// NewPluginWithOptions creates a plugin activation carrying an options
// mapping. The options are deep-copied so later mutation of the caller's
// map cannot alter the entry.
func NewPluginWithOptions(name string, opts Options) PluginEntry {
	return PluginEntry{resolve: name, options: opts.Clone()}
}

// Resolve returns the plugin identifier the build framework resolves.
func (e PluginEntry) Resolve() string {
	return e.resolve
}

// Options returns a deep copy of the entry's options, or nil for a bare
// activation.
func (e PluginEntry) Options() Options {
	return e.options.Clone()
}

// IsBare reports whether the entry activates its plugin without options.
func (e PluginEntry) IsBare() bool {
	return e.options == nil
}

// pluginObject is the serialized form of a configured entry.
type pluginObject struct {
	Resolve string  `json:"resolve" yaml:"resolve"`
	Options Options `json:"options" yaml:"options"`
}

// MarshalJSON serializes a bare entry as a plain string and a configured
// entry as a {resolve, options} object, matching the format the external
// plugin loader consumes.
func (e PluginEntry) MarshalJSON() ([]byte, error) {
	if e.IsBare() {
		return json.Marshal(e.resolve)
	}
	return json.Marshal(pluginObject{Resolve: e.resolve, Options: e.options})
}

// UnmarshalJSON accepts either serialized form and restores the variant.
func (e *PluginEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = PluginEntry{resolve: name}
		return nil
	}

	var obj pluginObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("plugin entry must be a string or a {resolve, options} object: %w", err)
	}
	if obj.Resolve == "" {
		return fmt.Errorf("plugin entry object is missing a resolve identifier")
	}
	*e = PluginEntry{resolve: obj.Resolve, options: obj.Options}
	return nil
}

// MarshalYAML mirrors the JSON representation for YAML output.
func (e PluginEntry) MarshalYAML() (any, error) {
	if e.IsBare() {
		return e.resolve, nil
	}
	return pluginObject{Resolve: e.resolve, Options: e.options}, nil
}

// UnmarshalYAML accepts a scalar plugin name or a {resolve, options} mapping.
func (e *PluginEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return fmt.Errorf("invalid bare plugin entry: %w", err)
		}
		*e = PluginEntry{resolve: name}
		return nil
	}

	var obj pluginObject
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("plugin entry must be a string or a {resolve, options} mapping: %w", err)
	}
	if obj.Resolve == "" {
		return fmt.Errorf("plugin entry mapping is missing a resolve identifier")
	}
	*e = PluginEntry{resolve: obj.Resolve, options: obj.Options}
	return nil
}
