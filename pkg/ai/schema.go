package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"google.golang.org/genai"
)

// SchemaFor derives a response schema from a Go value's JSON shape. Struct
// fields without omitempty are required; embedded structs are flattened the
// way encoding/json flattens them.
func SchemaFor(v any) *genai.Schema {
	return schemaOf(reflect.TypeOf(v))
}

func schemaOf(t reflect.Type) *genai.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return &genai.Schema{Type: genai.TypeString}
	case reflect.Bool:
		return &genai.Schema{Type: genai.TypeBoolean}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &genai.Schema{Type: genai.TypeInteger}
	case reflect.Float32, reflect.Float64:
		return &genai.Schema{Type: genai.TypeNumber}
	case reflect.Slice, reflect.Array:
		return &genai.Schema{Type: genai.TypeArray, Items: schemaOf(t.Elem())}
	case reflect.Struct:
		s := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
		addFields(s, t)
		return s
	}
	panic(fmt.Sprintf("ai: no schema mapping for %s", t))
}

func addFields(s *genai.Schema, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			addFields(s, f.Type)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		s.Properties[name] = schemaOf(f.Type)
		s.PropertyOrdering = append(s.PropertyOrdering, name)
		if !strings.Contains(opts, "omitempty") {
			s.Required = append(s.Required, name)
		}
	}
}

// Validate checks a JSON document against schema: required properties must
// be present and non-null and every value must have the declared type.
// Properties the schema does not declare are ignored.
func Validate(schema *genai.Schema, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return validateValue(schema, doc, "$")
}

func validateValue(s *genai.Schema, v any, path string) error {
	switch s.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return mismatch(path, "object", v)
		}
		for _, name := range s.Required {
			if val, present := obj[name]; !present || val == nil {
				return fmt.Errorf("%w: %s.%s is required", ErrSchemaMismatch, path, name)
			}
		}
		for _, name := range s.PropertyOrdering {
			val, present := obj[name]
			if !present || val == nil {
				continue
			}
			if err := validateValue(s.Properties[name], val, path+"."+name); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return mismatch(path, "array", v)
		}
		for i, item := range arr {
			if err := validateValue(s.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return mismatch(path, "string", v)
		}
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return mismatch(path, "boolean", v)
		}
	case genai.TypeInteger, genai.TypeNumber:
		if _, ok := v.(json.Number); !ok {
			return mismatch(path, "number", v)
		}
	}
	return nil
}

func mismatch(path, want string, got any) error {
	return fmt.Errorf("%w: %s must be %s, got %T", ErrSchemaMismatch, path, want, got)
}
