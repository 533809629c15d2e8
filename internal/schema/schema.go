// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema describes job files as JSON Schema or Markdown.
// Field names come from yaml tags and descriptions from docdesc tags.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNotStruct is returned when the definition is not a struct or a pointer to one.
var ErrNotStruct = errors.New("expected struct type")

// Field represents a field in a JSON schema.
type Field struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Properties  []Field `json:"properties,omitempty"`
	Items       *Field  `json:"items,omitempty"`
	// ScalarOrList marks a list that may also be written as a single value.
	ScalarOrList bool `json:"scalarOrList,omitempty"`
}

var bytesUnmarshaler = reflect.TypeFor[yaml.BytesUnmarshaler]()

// Generator provides methods to generate schemas from struct definitions.
type Generator struct {
	Title       string
	Description string
}

// NewGenerator creates a new Generator.
func NewGenerator(title, description string) *Generator {
	return &Generator{
		Title:       title,
		Description: description,
	}
}

// Fields returns the schema fields of def in declaration order.
func (g *Generator) Fields(def any) ([]Field, error) {
	return g.extractFields(reflect.TypeOf(def))
}

// Generate returns the JSON schema of def as a tree of maps.
func (g *Generator) Generate(def any) (map[string]any, error) {
	fields, err := g.Fields(def)
	if err != nil {
		return nil, err
	}

	root := objectProperty(fields)
	root["$schema"] = "https://json-schema.org/draft/2020-12/schema"

	if g.Title != "" {
		root["title"] = g.Title
	}

	if g.Description != "" {
		root["description"] = g.Description
	}

	return root, nil
}

// WriteJSONSchema writes the indented JSON schema of def to w.
func (g *Generator) WriteJSONSchema(w io.Writer, def any) error {
	schema, err := g.Generate(def)
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err //nolint:wrapcheck
	}

	bytes = append(bytes, '\n')
	_, err = w.Write(bytes)

	return err //nolint:wrapcheck
}

// WriteMarkdown writes one table per object in def to w.
// Nested objects are documented under their dotted path.
func (g *Generator) WriteMarkdown(w io.Writer, def any) error {
	fields, err := g.Fields(def)
	if err != nil {
		return err
	}

	var b strings.Builder

	if g.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", g.Title)
	}

	if g.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", g.Description)
	}

	writeMarkdownTable(&b, "", fields)

	_, err = io.WriteString(w, b.String())

	return err //nolint:wrapcheck
}

func writeMarkdownTable(b *strings.Builder, path string, fields []Field) {
	if path != "" {
		fmt.Fprintf(b, "## `%s`\n\n", path)
	}

	b.WriteString("| Field | Type | Required | Description |\n")
	b.WriteString("|-------|------|----------|-------------|\n")

	for _, f := range fields {
		required := "No"
		if f.Required {
			required = "Yes"
		}

		fmt.Fprintf(b, "| `%s` | %s | %s | %s |\n", f.Name, typeLabel(f), required, f.Description)
	}

	b.WriteString("\n")

	for _, f := range fields {
		if f.Type == "object" && len(f.Properties) > 0 {
			writeMarkdownTable(b, joinPath(path, f.Name), f.Properties)
		}
	}
}

func typeLabel(f Field) string {
	switch {
	case f.ScalarOrList && f.Items != nil:
		return fmt.Sprintf("%s or array of %s", f.Items.Type, f.Items.Type)
	case f.Type == "array" && f.Items != nil:
		return "array of " + f.Items.Type
	default:
		return f.Type
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

// extractFields extracts schema fields from a struct type using reflection.
func (g *Generator) extractFields(t reflect.Type) ([]Field, error) {
	if t == nil {
		return nil, ErrNotStruct
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrNotStruct, t.Kind())
	}

	var fields []Field

	for i := range t.NumField() {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			embedded, err := g.extractFields(field.Type)
			if err != nil {
				return nil, err
			}

			fields = append(fields, embedded...)

			continue
		}

		f, err := g.fieldToSchemaField(field)
		if err != nil {
			return nil, err
		}

		if f != nil {
			fields = append(fields, *f)
		}
	}

	return fields, nil
}

// fieldToSchemaField converts a reflect.StructField to a Field.
// A field is required when neither its yaml tag says omitempty nor its hcl tag says optional.
func (g *Generator) fieldToSchemaField(field reflect.StructField) (*Field, error) {
	yamlTag := field.Tag.Get("yaml")
	if yamlTag == "-" {
		return nil, nil //nolint:nilnil
	}

	name, yamlOpts, _ := strings.Cut(yamlTag, ",")
	if name == "" {
		name = strings.ToLower(field.Name)
	}

	hclTag := field.Tag.Get("hcl")
	optional := strings.Contains(yamlOpts, "omitempty") ||
		strings.Contains(hclTag, ",optional") ||
		strings.Contains(hclTag, ",block")

	f, err := g.typeField(field.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}

	f.Name = name
	f.Description = field.Tag.Get("docdesc")
	f.Required = !optional

	return &f, nil
}

// typeField describes t without a name.
func (g *Generator) typeField(t reflect.Type) (Field, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return Field{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Field{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return Field{Type: "number"}, nil
	case reflect.Bool:
		return Field{Type: "boolean"}, nil
	case reflect.Slice, reflect.Array:
		items, err := g.typeField(t.Elem())
		if err != nil {
			return Field{}, err
		}

		return Field{
			Type:         "array",
			Items:        &items,
			ScalarOrList: reflect.PointerTo(t).Implements(bytesUnmarshaler),
		}, nil
	case reflect.Struct:
		props, err := g.extractFields(t)
		if err != nil {
			return Field{}, err
		}

		return Field{Type: "object", Properties: props}, nil
	case reflect.Map:
		return Field{Type: "object"}, nil
	default:
		return Field{Type: "string"}, nil
	}
}

// property converts a Field to a JSON schema property.
func property(f Field) map[string]any {
	var prop map[string]any

	switch {
	case f.ScalarOrList && f.Items != nil:
		item := property(*f.Items)
		prop = map[string]any{
			"anyOf": []any{
				item,
				map[string]any{"type": "array", "items": item},
			},
		}
	case f.Type == "object":
		prop = objectProperty(f.Properties)
	case f.Type == "array" && f.Items != nil:
		prop = map[string]any{"type": "array", "items": property(*f.Items)}
	default:
		prop = map[string]any{"type": f.Type}
	}

	if f.Description != "" {
		prop["description"] = f.Description
	}

	return prop
}

func objectProperty(fields []Field) map[string]any {
	properties := make(map[string]any, len(fields))
	required := []string{}

	for _, f := range fields {
		properties[f.Name] = property(f)

		if f.Required {
			required = append(required, f.Name)
		}
	}

	prop := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}

	if len(required) > 0 {
		prop["required"] = required
	}

	return prop
}
