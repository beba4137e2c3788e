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

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

var doubleTemplate = template.Must(template.New("double").Parse(`// Code generated by doublegen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/standin-dev/standin/standin"
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// {{.Name}}Double is a test double for {{.Name}}.
type {{.Name}}Double struct {
	{{.Name}}
	*standin.Double
}

// New{{.Name}}Double returns a double for {{.Name}} with no recorded calls and no behavior rules.
func New{{.Name}}Double(t standin.T, configs ...func(*standin.Double)) *{{.Name}}Double {
	return &{{.Name}}Double{Double: standin.NewDouble(t, (*{{.Name}})(nil), configs...)}
}

// New{{.Name}}Spy returns a double for {{.Name}} that records every call and delegates unstubbed calls to real.
func New{{.Name}}Spy(t standin.T, real {{.Name}}, configs ...func(*standin.Double)) *{{.Name}}Double {
	return &{{.Name}}Double{Double: standin.NewSpy(t, (*{{.Name}})(nil), real, configs...)}
}
{{range .Methods}}
func (d *{{$.Name}}Double) {{.Name}}({{.Params}}) {{with .ResultDecl}}{{.}} {{end}}{
	d.Double.T().Helper()
{{- if .Results}}
	returns := d.Invoke("{{.Name}}"{{range .Args}}, {{.}}{{end}})
{{- range $i, $r := .Results}}
	r{{$i}}, _ = returns[{{$i}}].({{$r}})
{{- end}}
	return
{{- else}}
	d.Invoke("{{.Name}}"{{range .Args}}, {{.}}{{end}})
{{- end}}
}
{{end}}`))

// Render writes the gofmt-formatted wrapper double for the model to w.
func (m *Model) Render(w io.Writer) error {
	var buf bytes.Buffer
	if err := doubleTemplate.Execute(&buf, m); err != nil {
		return fmt.Errorf("rendering double for %s: %w", m.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting double for %s: %w", m.Name, err)
	}
	_, err = w.Write(src)
	return err
}
