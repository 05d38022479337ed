// Package format names the output formats: Snow text, and the node tree
// itself as JSON or YAML.
package format
