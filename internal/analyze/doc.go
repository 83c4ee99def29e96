// Package analyze loads generated binding packages with
// golang.org/x/tools/go/packages and extracts what they export.
//
// It is used to verify freshly generated code: the package must type-check
// against the runtime, and every requested resource type must appear as a
// wrapper embedding the runtime Resource.
//
// Key types:
//   - PackageInfo: one loaded binding package
//   - ResourceInfo: a resource wrapper, its CloudFormation type and accessors
//   - TypeKind: how an exported type participates in the bindings
package analyze
