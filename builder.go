package cfgitems

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate a Registry.
// It receives the fully loaded registry and should return an error if validation fails.
type ValidatorFunc func(r *Registry) error

// Builder provides a fluent interface for building registries
type Builder struct {
	catalog    *Catalog
	opts       LoadOptions
	file       string
	args       []string
	logger     *slog.Logger
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new registry builder
func NewBuilder() *Builder {
	return &Builder{
		catalog:    NewCatalog(),
		opts:       DefaultLoadOptions(),
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithCatalog adds the declarations of one or more catalogs
func (b *Builder) WithCatalog(catalogs ...*Catalog) *Builder {
	b.catalog.Merge(catalogs...)
	return b
}

// WithStruct declares the fields of a struct as items of module
func (b *Builder) WithStruct(module string, defaults any) *Builder {
	if err := b.catalog.DeclareStruct(module, defaults); err != nil && b.err == nil {
		b.err = fmt.Errorf("failed to declare defaults for module %q: %w", module, err)
	}
	return b
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFormat forces the configuration file format
func (b *Builder) WithFormat(format string) *Builder {
	switch format {
	case "", "auto", FormatINI, FormatTOML, FormatYAML, FormatJSON, FormatHCL:
		b.opts.Format = format
	default:
		if b.err == nil {
			b.err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		}
	}
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithSources sets the precedence order for configuration sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithLogger sets the logger of the built registry
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build initializes a Registry from the collected declarations and applies
// all configured sources. A missing configuration file is not fatal: the
// registry is returned together with an error wrapping ErrConfigNotFound.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	r := New(WithLogger(b.logger), WithLoadOptions(b.opts))
	if err := r.Init(b.catalog.Descriptors(), ""); err != nil {
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}

	loadErr := r.Load(b.file, b.args)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}

	for _, validator := range b.validators {
		if err := validator(r); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return r, loadErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		// The registry is usable with defaults when only the file is missing
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("registry build failed: %v", err))
		}
	}
	return r
}
