package cfgitems

import (
	"fmt"
	"os"
	"strings"
)

// Quick builds a registry from a catalog with the standard precedence
// (CLI > Env > File > Default), using os.Args for command-line overrides.
func Quick(catalog *Catalog, envPrefix, configFile string) (*Registry, error) {
	return NewBuilder().
		WithCatalog(catalog).
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		WithArgs(os.Args[1:]).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(catalog *Catalog, envPrefix, configFile string) *Registry {
	r, err := Quick(catalog, envPrefix, configFile)
	if err != nil {
		panic(fmt.Sprintf("registry initialization failed: %v", err))
	}
	return r
}

// Debug returns a formatted listing of all items with kind and current value
func (r *Registry) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Items:\n")
	for _, st := range r.snapshot() {
		fmt.Fprintf(&b, "  %s.%s (%s) = %q\n", st.module, st.name, st.kind, st.value.String())
	}
	return b.String()
}
