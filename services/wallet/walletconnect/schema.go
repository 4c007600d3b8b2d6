package walletconnect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrSchemaMismatch = errors.New("document does not match schema")

var SessionRequestSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"id", "topic", "params"},
	"properties": map[string]interface{}{
		"id": map[string]interface{}{
			"type": "integer",
		},
		"topic": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"params": map[string]interface{}{
			"type":     "object",
			"required": []string{"request", "chainId"},
			"properties": map[string]interface{}{
				"chainId": map[string]interface{}{
					"type":    "string",
					"pattern": "^[-a-z0-9]{3,8}:[-_a-zA-Z0-9]{1,32}$",
				},
				"request": map[string]interface{}{
					"type":     "object",
					"required": []string{"method"},
					"properties": map[string]interface{}{
						"method": map[string]interface{}{
							"type":      "string",
							"minLength": 1,
						},
						"params": map[string]interface{}{
							"type": "array",
						},
						"expiryTimestamp": map[string]interface{}{
							"type": "integer",
						},
					},
				},
			},
		},
	},
}

var SessionSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"topic", "peer"},
	"properties": map[string]interface{}{
		"topic": map[string]interface{}{
			"type": "string",
		},
		"peer": map[string]interface{}{
			"type":     "object",
			"required": []string{"metadata"},
			"properties": map[string]interface{}{
				"metadata": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name":  map[string]interface{}{"type": "string"},
						"url":   map[string]interface{}{"type": "string"},
						"icons": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					},
				},
			},
		},
	},
}

// ValidateDocument checks a raw JSON document against one of the schemas above.
func ValidateDocument(schema map[string]interface{}, doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(details, "; "))
}
