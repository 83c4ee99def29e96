// Package gen emits Go binding packages from a resolved resource
// specification.
//
// Generation uses text/template and golang.org/x/tools/imports for
// formatting. Output is deterministic: properties are ordered required
// first and then by wire name, and structures are emitted
// dependency-first.
//
// For every resource type one file is produced containing:
//   - the <Resource>TypeName constant
//   - the <Resource> wrapper with getters, setters and Attr* accessors
//   - <Resource>Props and <Resource>PropsArgs
//   - one <Resource>_<Structure> type (plus Args) per nested structure
//
// Each package also gets a doc.go listing its resource types.
package gen
