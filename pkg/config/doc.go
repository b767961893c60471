// Package config loads packup's configuration.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the project file, packup.toml or .packup.toml in the project root
//  3. PACKUP_* environment variables (PACKUP_DEPLOY_OUTPUT=x.zip)
//  4. programmatic overrides, typically from command-line flags
//
// Lists replace the defaults, they do not append: a project file setting
// [exclude] dirs = [] clears the directory exclusions.
package config
