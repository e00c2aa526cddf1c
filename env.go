package cfgitems

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadEnv applies environment variables named prefix + MODULE_NAME, or
// prefix + NAME for items of GlobalModule. A value that does not convert is
// reported but does not stop the remaining items.
func (r *Registry) LoadEnv(prefix string) error {
	r.mutex.RLock()
	opts := r.options
	r.mutex.RUnlock()

	opts.EnvPrefix = prefix
	return r.loadEnv(opts)
}

func (r *Registry) loadEnv(opts LoadOptions) error {
	transform := opts.EnvTransform
	if transform == nil {
		transform = defaultEnvTransform(opts.EnvPrefix)
	}

	var errs []error
	for _, it := range r.Items() {
		envVar := transform(it.module, it.name)
		value, exists := os.LookupEnv(envVar)
		if !exists {
			continue
		}
		if err := r.SetText(it.module, it.name, value); err != nil {
			errs = append(errs, fmt.Errorf("env %s: %w", envVar, err))
		}
	}
	return errors.Join(errs...)
}

// DiscoverEnv returns item key -> environment variable name for every
// registered item whose variable is currently set.
func (r *Registry) DiscoverEnv(prefix string) map[string]string {
	transform := defaultEnvTransform(prefix)

	discovered := make(map[string]string)
	for _, it := range r.Items() {
		envVar := transform(it.module, it.name)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[it.Key()] = envVar
		}
	}
	return discovered
}

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(module, name string) string {
		env := name
		if module != GlobalModule && module != "" {
			env = module + "_" + name
		}
		env = strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(env))
		return prefix + env
	}
}
