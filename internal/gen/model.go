/*
 * Copyright 2026 The standin Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package gen builds wrapper doubles for Go interfaces: it loads an
// interface with full type information and renders a forwarding struct
// whose methods record and dispatch through a Double.
package gen

import (
	"fmt"
	"go/types"
	"sort"
	"strings"
)

// Model is everything the template needs to render one wrapper double.
type Model struct {
	// Package is the name of the package the file is generated into.
	Package string

	// Name is the interface name.
	Name string

	// Imports are the extra import paths the method signatures require,
	// beyond the standin package itself.
	Imports []string

	Methods []Method
}

// Method is one interface method, with its signature pre-rendered.
type Method struct {
	Name string

	// Params is the rendered parameter list, e.g. "index int".
	Params string

	// Args are the parameter names forwarded to Invoke. A variadic
	// parameter is forwarded as its packed slice.
	Args []string

	// Results are the rendered result types, in order.
	Results []string

	// ResultDecl is the named result declaration, e.g. "(r0 int)",
	// empty for methods with no results.
	ResultDecl string
}

// NewModel builds the render model for iface as seen from package pkg.
func NewModel(pkg *types.Package, name string, iface *types.Interface) *Model {
	imports := make(map[string]bool)
	qual := func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		imports[other.Path()] = true
		return other.Name()
	}

	model := &Model{Package: pkg.Name(), Name: name}
	for i := 0; i < iface.NumMethods(); i++ {
		model.Methods = append(model.Methods, newMethod(iface.Method(i), qual))
	}

	for path := range imports {
		model.Imports = append(model.Imports, path)
	}
	sort.Strings(model.Imports)
	return model
}

func newMethod(m *types.Func, qual types.Qualifier) Method {
	sig := m.Type().(*types.Signature)
	method := Method{Name: m.Name()}

	params := make([]string, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		p := sig.Params().At(i)
		name := p.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("a%d", i)
		}
		t := types.TypeString(p.Type(), qual)
		if sig.Variadic() && i == sig.Params().Len()-1 {
			t = "..." + types.TypeString(p.Type().(*types.Slice).Elem(), qual)
		}
		params = append(params, name+" "+t)
		method.Args = append(method.Args, name)
	}
	method.Params = strings.Join(params, ", ")

	if n := sig.Results().Len(); n > 0 {
		decls := make([]string, 0, n)
		for i := 0; i < n; i++ {
			t := types.TypeString(sig.Results().At(i).Type(), qual)
			method.Results = append(method.Results, t)
			decls = append(decls, fmt.Sprintf("r%d %s", i, t))
		}
		method.ResultDecl = "(" + strings.Join(decls, ", ") + ")"
	}
	return method
}
