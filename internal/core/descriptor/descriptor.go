// Package descriptor defines the site configuration descriptor: the static,
// serializable value the external static-site build framework consumes once
// at build start. The descriptor pairs site metadata with an ordered list of
// plugin activations; it holds no runtime state and is never mutated after
// construction.
package descriptor

// Descriptor is the root aggregate handed to the external plugin loader.
// The loader iterates Plugins in order and activates each entry, so the
// sequence order here is part of the contract.
type Descriptor struct {
	SiteMetadata SiteMetadata  `json:"siteMetadata" yaml:"siteMetadata"`
	Plugins      []PluginEntry `json:"plugins" yaml:"plugins"`
}

// New assembles a descriptor from metadata and an ordered plugin list. The
// plugin slice is copied so the descriptor does not alias the caller's
// backing array.
func New(meta SiteMetadata, plugins []PluginEntry) Descriptor {
	list := make([]PluginEntry, len(plugins))
	copy(list, plugins)
	return Descriptor{SiteMetadata: meta, Plugins: list}
}

// PluginNames returns the resolve identifiers in activation order.
func (d Descriptor) PluginNames() []string {
	names := make([]string, len(d.Plugins))
	for i, p := range d.Plugins {
		names[i] = p.Resolve()
	}
	return names
}
