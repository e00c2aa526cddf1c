// Package cfgitems provides a registry of typed configuration items declared by
// independent modules at program startup.
//
// Each item belongs to a module and has a name, a kind and a value. Supported kinds
// are bool, string, double and signed/unsigned integers of 8, 16, 32 and 64 bits.
// Items are collected into a Catalog, the Registry indexes them once, and values can
// then be read and written through typed accessors or overridden from a file.
//
// Features:
//   - Sorted index with binary-search lookup by (module, name)
//   - Typed accessors with kind checking
//   - Strict string-to-value converters shared by every loader
//   - INI-style configuration files, plus TOML, YAML, JSON and HCL
//   - Environment variable and command-line overrides
//   - Builder pattern with source precedence and validators
//
// Declaring items:
//
//	var _ = cfgitems.DefineBool(cfgitems.GlobalModule, "multithreaded", false)
//	var _ = cfgitems.DefineU16("server", "port", 8080)
//
//	func main() {
//	    if err := cfgitems.Init("app.ini"); err != nil {
//	        log.Print(err)
//	    }
//	    port, _ := cfgitems.GetU16("server", "port")
//	}
//
// Configuration file format:
//
//	; comment
//	# comment
//	multithreaded = on
//
//	[server]
//	port 0x1F90
//
// Lines that cannot be matched to a registered item or converted to its kind are
// skipped without aborting the file. Items declared without an explicit module live in
// GlobalModule ("_"), which sorts before every other module.
//
// Thread Safety:
// Registry operations are guarded by a read-write mutex. Initialization happens exactly
// once per Registry.
package cfgitems
