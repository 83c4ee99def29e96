package analyze

import (
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads binding packages generated against one runtime package.
type Analyzer struct {
	dir     string
	runtime string
}

// NewAnalyzer creates an Analyzer. dir is the working directory for
// package patterns ("" means the current one); runtime is the import path
// of the binding runtime.
func NewAnalyzer(dir, runtime string) *Analyzer {
	return &Analyzer{dir: dir, runtime: runtime}
}

// LoadPackages loads the given patterns and describes every package.
// Any load or type error fails the whole call.
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, a.processPackage(pkg))
	}

	return out, nil
}

// processPackage classifies the exported types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Kinds: make(map[string]TypeKind),
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		kind := a.kindOf(named)
		info.Kinds[name] = kind

		if kind == TypeKindResource {
			info.Resources = append(info.Resources, resourceInfo(scope, named))
		}
	}

	return info
}

func (a *Analyzer) kindOf(named *types.Named) TypeKind {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return TypeKindUnknown
	}

	if strings.HasSuffix(named.Obj().Name(), "Args") {
		return TypeKindArgs
	}

	for i := range st.NumFields() {
		f := st.Field(i)

		switch {
		case f.Embedded() && a.isRuntime(f.Type(), "Resource"):
			return TypeKindResource
		case f.Name() == "values" && a.isRuntime(f.Type(), "Values"):
			return TypeKindValues
		}
	}

	return TypeKindUnknown
}

// isRuntime reports whether t is *runtime.<name>.
func (a *Analyzer) isRuntime(t types.Type, name string) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := ptr.Elem().(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	return named.Obj().Pkg().Path() == a.runtime && named.Obj().Name() == name
}

func resourceInfo(scope *types.Scope, named *types.Named) ResourceInfo {
	r := ResourceInfo{GoName: named.Obj().Name()}

	if c, ok := scope.Lookup(r.GoName + "TypeName").(*types.Const); ok && c.Val().Kind() == constant.String {
		r.TypeName = constant.StringVal(c.Val())
	}

	for i := range named.NumMethods() {
		m := named.Method(i)
		if !m.Exported() {
			continue
		}

		switch name := m.Name(); {
		case strings.HasPrefix(name, "Set"):
			r.Setters = append(r.Setters, name)
		case strings.HasPrefix(name, "Attr"):
			r.Attributes = append(r.Attributes, name)
		default:
			r.Accessors = append(r.Accessors, name)
		}
	}

	slices.Sort(r.Accessors)
	slices.Sort(r.Attributes)
	slices.Sort(r.Setters)

	return r
}
