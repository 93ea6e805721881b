// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package tmplutil

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Template is a parsed text template with the sprig functions and any extra
// functions available. Missing map keys are errors.
type Template struct {
	tmpl *template.Template
}

func New(name, tmplText string, funcs template.FuncMap) (*Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Funcs(funcs).Option("missingkey=error").Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", name, err)
	}

	return &Template{tmpl: tmpl}, nil
}

func Must(name, tmplText string, funcs template.FuncMap) *Template {
	t, err := New(name, tmplText, funcs)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Template) Execute(data any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := t.tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", t.tmpl.Name(), err)
	}

	return buf.String(), nil
}
