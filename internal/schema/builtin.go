package schema

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// Builtin returns the embedded specification for every bundled service.
func Builtin() *Spec {
	spec, err := loadBuiltin()
	if err != nil {
		// Should never happen, the embedded documents are always valid.
		panic(err)
	}

	return spec
}

func loadBuiltin() (*Spec, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.json")
	if err != nil {
		return nil, err
	}

	specs := make([]*Spec, 0, len(names))

	for _, name := range names {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		s, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", name, err)
		}

		specs = append(specs, s)
	}

	return Merge(specs...)
}
