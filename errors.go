package cfgitems

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init on every call after the first one.
	ErrAlreadyInitialized = errors.New("registry already initialized")
	// ErrNotInitialized is returned when a registry is used before Init.
	ErrNotInitialized = errors.New("registry not initialized")
	// ErrItemNotFound is returned when no item matches (module, name).
	ErrItemNotFound = errors.New("configuration item not found")
	// ErrKindMismatch is returned when an accessor does not match the item's declared kind.
	ErrKindMismatch = errors.New("configuration item kind mismatch")
	// ErrStringTooLong is returned when a string does not fit into an item's buffer.
	ErrStringTooLong = errors.New("string value exceeds item capacity")
	// ErrInvalidDescriptor is returned by Init for descriptors that cannot become items.
	ErrInvalidDescriptor = errors.New("invalid item descriptor")
	// ErrDuplicateItem is returned by Init when (module, name) is declared twice.
	ErrDuplicateItem = errors.New("duplicate configuration item")

	// ErrEmptyInput is returned by converters for an empty string.
	ErrEmptyInput = errors.New("empty input")
	// ErrSyntax is returned by converters for malformed text.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is returned by converters when the value does not fit the target kind.
	ErrRange = errors.New("value out of range")

	// ErrConfigNotFound is returned when a configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrUnsupportedFormat is returned for configuration formats that cannot be handled.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrCLIParse is returned when command-line arguments are malformed.
	ErrCLIParse = errors.New("failed to parse command-line arguments")
)
