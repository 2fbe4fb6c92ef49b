package api

import (
	"net/http"

	"go.uber.org/zap"
)

// Group is a set of related routes mounted together on the server mux.
// Prefix is informational: groups whose patterns already carry their full
// paths (the per-project sub-resources) report an empty prefix.
type Group interface {
	// Name identifies the group in logs and the mount summary.
	Name() string
	// Prefix is the common URL prefix of the group's routes, or "" when the
	// group registers absolute patterns.
	Prefix() string
	// Register attaches the group's routes to mux.
	Register(mux *http.ServeMux)
}

// Registry collects route groups and mounts them in registration order.
type Registry struct {
	groups []Group
}

func NewRegistry(groups ...Group) *Registry {
	return &Registry{groups: groups}
}

// Add appends groups to the registry. Mount order follows Add order.
func (r *Registry) Add(groups ...Group) {
	r.groups = append(r.groups, groups...)
}

// Mount registers every group on mux and logs one line per group.
func (r *Registry) Mount(mux *http.ServeMux, lgr *zap.Logger) {
	for _, group := range r.groups {
		group.Register(mux)
		lgr.Info("mounted route group",
			zap.String("group", group.Name()),
			zap.String("prefix", group.Prefix()))
	}
}

// Summary returns the mounted group names in mount order.
func (r *Registry) Summary() []string {
	names := make([]string, 0, len(r.groups))
	for _, group := range r.groups {
		names = append(names, group.Name())
	}

	return names
}
