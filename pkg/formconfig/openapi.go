package formconfig

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FieldOrderExtension lists request properties in display order.
const FieldOrderExtension = "x-field-order"

// FromOpenAPI derives a Config skeleton from the operation operationID of an
// OpenAPI 3 document: the operation path becomes the endpoint and the JSON
// request body properties become the fields. Name and FormID are left for the
// caller to fill in.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, errors.New("formconfig: openapi document is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Config{}, fmt.Errorf("formconfig: load openapi document: %w", err)
	}
	if doc.Paths == nil {
		return Config{}, errors.New("formconfig: openapi document has no paths")
	}

	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		op := item.GetOperation(http.MethodPost)
		if op == nil || op.OperationID != operationID {
			continue
		}
		schema := requestSchema(op.RequestBody)
		if schema == nil {
			return Config{}, fmt.Errorf("formconfig: operation %q has no JSON request body", operationID)
		}
		fields := orderedProperties(schema)
		if len(fields) == 0 {
			return Config{}, fmt.Errorf("formconfig: operation %q request body has no properties", operationID)
		}
		return Config{
			Endpoint: path,
			Fields:   fields,
		}, nil
	}
	return Config{}, fmt.Errorf("formconfig: POST operation %q not found", operationID)
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	mt, ok := body.Value.Content["application/json"]
	if !ok || mt == nil || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

// orderedProperties honours x-field-order, then lists required properties
// followed by optional ones, each group alphabetically.
func orderedProperties(schema *openapi3.Schema) []string {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}
	var ordered []string
	seen := make(map[string]struct{}, len(schema.Properties))

	if raw, ok := schema.Extensions[FieldOrderExtension]; ok {
		if list, ok := raw.([]any); ok {
			for _, item := range list {
				name, _ := item.(string)
				if _, exists := schema.Properties[name]; !exists {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				ordered = append(ordered, name)
			}
		}
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}
	var requiredNames, optionalNames []string
	for name := range schema.Properties {
		if _, done := seen[name]; done {
			continue
		}
		if _, ok := required[name]; ok {
			requiredNames = append(requiredNames, name)
			continue
		}
		optionalNames = append(optionalNames, name)
	}
	sort.Strings(requiredNames)
	sort.Strings(optionalNames)
	ordered = append(ordered, requiredNames...)
	return append(ordered, optionalNames...)
}
