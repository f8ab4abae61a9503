// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package configdoc generates a Markdown schema for a configuration file
// from the Go structs that define it. Struct and field doc comments become
// descriptions; struct tags give the key names.
package configdoc

import (
	"errors"
	"fmt"
	"go/ast"
	"io"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

const (
	// primaryFile holds the structs listed first, in source order. Structs
	// from other files follow in name order.
	primaryFile = "config.go"

	titleSuffix  = " Configuration"
	anchorSuffix = "-configuration"
)

var docTemplate = template.Must(template.New("doc").Parse(`# {{.Title}} Schema

This document describes the schema for {{.Title}}.
{{range .Structs}}
## {{.Title}}

{{if .SourceLink}}[Link to code]({{.SourceLink}})
{{end}}{{if .Doc}}{{.Doc}}
{{end}}| Field | Type | Description |
| :--- | :--- | :--- |
{{range .Fields}}| {{.Name}} | {{.Type}} | {{.Description}} |
{{end}}{{end}}`))

// Options configures [Generate].
type Options struct {
	// Dir is the directory of the package holding the structs.
	Dir string
	// Root is the struct the configuration file decodes into.
	Root string
	// RootTitle replaces Root in the heading of the root struct.
	RootTitle string
	// Tag is the struct tag naming the keys, such as "yaml".
	Tag string
	// Title is the name of the configuration file.
	Title string
	// LinkPrefix is prepended to module-relative source paths in links.
	LinkPrefix string
}

type pageData struct {
	Title   string
	Structs []structData
}

type structData struct {
	Title      string
	SourceLink string
	Doc        string
	Fields     []fieldData
}

type fieldData struct {
	Name        string
	Type        string
	Description string
}

// Generate loads the package in opts.Dir and writes its schema to w.
func Generate(w io.Writer, opts Options) error {
	pkg, err := loadPackage(opts.Dir)
	if err != nil {
		return fmt.Errorf("loading package: %w", err)
	}
	d, err := newDocData(pkg, opts)
	if err != nil {
		return fmt.Errorf("inspecting package syntax: %w", err)
	}
	return d.generate(w)
}

// loadPackage parses the Go package in dir. It fails if no package is found
// or the package has errors.
func loadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedName | packages.NeedFiles | packages.NeedModule,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	return pkg, nil
}

// docData holds the structs found in a package.
type docData struct {
	opts        Options
	pkg         *packages.Package
	structs     map[string]*ast.StructType
	docs        map[string]string
	sources     map[string]string
	primaryKeys []string
	otherKeys   []string
}

func newDocData(pkg *packages.Package, opts Options) (*docData, error) {
	d := &docData{
		opts:    opts,
		pkg:     pkg,
		structs: make(map[string]*ast.StructType),
		docs:    make(map[string]string),
		sources: make(map[string]string),
	}

	moduleRoot := "."
	if pkg.Module != nil {
		moduleRoot = pkg.Module.Dir
	}
	for _, file := range pkg.Syntax {
		fileName := pkg.Fset.File(file.Pos()).Name()
		relPath, err := filepath.Rel(moduleRoot, fileName)
		if err != nil {
			return nil, err
		}
		primary := filepath.Base(fileName) == primaryFile
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				d.addStruct(ts, doc, filepath.ToSlash(relPath), primary)
			}
		}
	}
	sort.Strings(d.otherKeys)
	return d, nil
}

func (d *docData) addStruct(ts *ast.TypeSpec, doc *ast.CommentGroup, relPath string, primary bool) {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return
	}
	name := ts.Name.Name
	if _, seen := d.structs[name]; seen {
		return
	}
	d.structs[name] = st
	if doc != nil {
		d.docs[name] = cleanDoc(doc.Text())
	}
	line := d.pkg.Fset.Position(ts.Pos()).Line
	d.sources[name] = fmt.Sprintf("%s%s#L%d", d.opts.LinkPrefix, relPath, line)
	if primary {
		d.primaryKeys = append(d.primaryKeys, name)
	} else {
		d.otherKeys = append(d.otherKeys, name)
	}
}

func (d *docData) generate(w io.Writer) error {
	page := pageData{Title: d.opts.Title}
	for _, name := range append(d.primaryKeys, d.otherKeys...) {
		page.Structs = append(page.Structs, d.structData(name))
	}
	return docTemplate.Execute(w, page)
}

func (d *docData) structData(name string) structData {
	title := name + titleSuffix
	if name == d.opts.Root && d.opts.RootTitle != "" {
		title = d.opts.RootTitle + titleSuffix
	}
	sd := structData{
		Title:      title,
		SourceLink: d.sources[name],
		Doc:        d.docs[name],
	}
	for _, field := range d.structs[name].Fields.List {
		if len(field.Names) == 0 {
			sd.Fields = append(sd.Fields, fieldData{
				Name: "(embedded)",
				Type: d.formatType(typeName(field.Type)),
			})
			continue
		}
		if !field.Names[0].IsExported() {
			continue
		}
		key := fieldKey(field, d.opts.Tag)
		if key == "-" {
			continue
		}
		var description string
		if field.Doc != nil {
			description = cleanDoc(field.Doc.Text())
		}
		sd.Fields = append(sd.Fields, fieldData{
			Name:        fmt.Sprintf("`%s`", key),
			Type:        d.formatType(typeName(field.Type)),
			Description: description,
		})
	}
	return sd
}

// fieldKey returns the key of a field in the configuration file: the name
// in the tag, or the lowercased field name the YAML decoder uses when the
// tag has none.
func fieldKey(field *ast.Field, tag string) string {
	if field.Tag != nil {
		value := reflect.StructTag(strings.Trim(field.Tag.Value, "`")).Get(tag)
		if name, _, _ := strings.Cut(value, ","); name != "" {
			return name
		}
	}
	return strings.ToLower(field.Names[0].Name)
}

func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeName(t.X)
	case *ast.ArrayType:
		return "[]" + typeName(t.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", typeName(t.Key), typeName(t.Value))
	case *ast.SelectorExpr:
		return fmt.Sprintf("%s.%s", typeName(t.X), t.Sel.Name)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// formatType renders a Go type for the table, linking structs of the same
// package to their section.
func (d *docData) formatType(name string) string {
	isSlice := strings.HasPrefix(name, "[]")
	name = strings.TrimPrefix(name, "[]")
	isPointer := strings.HasPrefix(name, "*")
	name = strings.TrimPrefix(name, "*")

	res := name
	if _, ok := d.structs[name]; ok {
		title := name
		if name == d.opts.Root && d.opts.RootTitle != "" {
			title = d.opts.RootTitle
		}
		res = fmt.Sprintf("[%s](#%s)", name, strings.ToLower(title)+anchorSuffix)
	}
	if isPointer {
		res += " (optional)"
	}
	if isSlice {
		res = "list of " + res
	}
	return res
}

func cleanDoc(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}
