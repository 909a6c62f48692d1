/*
Package config holds the build configuration for extprep.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	   +-------+-------+-------+-------+
	   |       |               |       |
	+--+--+ +--+--+        +---+-+ +---+--+
	| YAML| | JSON|        | HCL | | TOML |
	+-----+ +-----+        +-----+ +------+

🎯 Purpose:
- Provides the built-in production build configuration
- Lets a config file override any field of it
- Validates and normalizes the result before a build starts

🔄 Flow:
1. Start from Default()
2. Decode the config file on top of it (fields the file omits keep their default)
3. Validate: required fields, bare process names, non-empty excludes,
   valid globs, and a destination that cannot delete the source

📝 Design Philosophy:
Configuration is a plain value handed to the operations at construction
time. Nothing reads globals after startup, so tests can build any
configuration they need.

Exclude entries are substrings, not globs: "git" excludes ".github/x" as
well as ".git/config". Globs live in their own ExcludeGlobs field.

🔍 Example:

	cfg, err := config.Resolve(ctx, "", ".")
	if err != nil {
		return err
	}
*/
package config
