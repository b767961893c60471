// Package rules implements exclusion rule matching for packup.
//
// A rule excludes files from the deployment archive. Three kinds exist:
//
//   - directory rules exclude every file below a directory of that name
//   - filename rules exclude files whose base name matches exactly
//   - extension rules exclude files whose extension matches exactly
//
// Matching is byte-exact and case-sensitive. There are no globs or
// substring matches: a filename rule for `.env` excludes `.env` and
// nothing else, so `.env.example` survives.
//
// # Evaluation Order
//
// Rules are evaluated directory first, then filename, then extension. A
// candidate is excluded when any rule matches; the order only affects
// which rule gets reported for a match, never the outcome.
//
// # Configuration
//
// Rule names come from the [exclude] table of packup.toml:
//
//	[exclude]
//	dirs = [".git", "__pycache__"]
//	files = [".env"]
//	extensions = [".pyc"]
package rules
