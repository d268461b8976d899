// Package admin holds an explicit registry of browsable entity types,
// constructed at startup. It replaces implicit framework-level model
// registration with a static mapping from entity name to its display
// capability.
package admin

import "sort"

// Resource describes one browsable entity type: which columns the admin
// console shows and how to list the records.
type Resource struct {
	Name   string
	Fields []string
	List   func() ([]map[string]interface{}, error)
}

// Registry is a static mapping from resource name to its admin capability.
type Registry struct {
	resources map[string]Resource
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]Resource)}
}

// Register adds a resource to the registry. Registering the same name twice
// replaces the earlier entry.
func (r *Registry) Register(res Resource) {
	r.resources[res.Name] = res
}

// Get looks up a resource by name
func (r *Registry) Get(name string) (Resource, bool) {
	res, ok := r.resources[name]
	return res, ok
}

// Names returns the registered resource names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
