package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"

	ai "github.com/omnigen-ai/omnigen"
)

func buildSchemaFormat(schema *ai.ResponseSchema) openai.ChatCompletionNewParamsResponseFormatUnion {
	var schemaMap map[string]any
	json.Unmarshal(schema.Schema, &schemaMap)

	name := schema.Name
	if name == "" {
		name = "response_schema"
	}

	// OpenAI strict mode requires additionalProperties: false on all objects
	if schema.Strict {
		addAdditionalPropertiesFalse(schemaMap)
	}

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type: "json_schema",
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   name,
				Schema: schemaMap,
				Strict: openai.Bool(schema.Strict),
			},
		},
	}
}

// addAdditionalPropertiesFalse recursively adds additionalProperties: false
// to all object schemas, as required by OpenAI's strict mode.
func addAdditionalPropertiesFalse(schema map[string]any) {
	if schema == nil {
		return
	}

	if schemaType, ok := schema["type"].(string); ok && schemaType == "object" {
		schema["additionalProperties"] = false
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				addAdditionalPropertiesFalse(propMap)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		addAdditionalPropertiesFalse(items)
	}
}
