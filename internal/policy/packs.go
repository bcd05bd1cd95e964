package policy

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed packs/industries.json
var packFS embed.FS

// packSchema constrains operator-maintained industry packs. A pack that
// drifts from this shape fails startup instead of silently resolving to
// empty layers.
const packSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["industries"],
	"properties": {
		"industries": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"required": ["key", "label"],
				"properties": {
					"key": {"type": "string", "minLength": 1},
					"label": {"type": "string", "minLength": 1},
					"model_id": {"type": "string"},
					"style_preset": {"type": "string"},
					"negative_guidance": {"type": "string"},
					"prompt_preamble": {"type": "string"}
				}
			}
		}
	}
}`

type industryPack struct {
	Industries []struct {
		Key              string `json:"key"`
		Label            string `json:"label"`
		ModelID          string `json:"model_id,omitempty"`
		StylePreset      string `json:"style_preset,omitempty"`
		NegativeGuidance string `json:"negative_guidance,omitempty"`
		PromptPreamble   string `json:"prompt_preamble,omitempty"`
	} `json:"industries"`
}

// LoadIndustryPacks reads and validates the embedded pack and returns the
// per-industry layers keyed by industry key.
func LoadIndustryPacks() (map[string]Layer, error) {
	raw, err := packFS.ReadFile("packs/industries.json")
	if err != nil {
		return nil, fmt.Errorf("read industry pack: %w", err)
	}
	if err := validatePack(raw); err != nil {
		return nil, err
	}

	var pack industryPack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("unmarshal industry pack: %w", err)
	}

	layers := make(map[string]Layer, len(pack.Industries))
	for _, ind := range pack.Industries {
		key := strings.ToLower(strings.TrimSpace(ind.Key))
		if _, dup := layers[key]; dup {
			return nil, fmt.Errorf("industry pack: duplicate key %q", key)
		}
		layers[key] = Layer{
			ModelID:          ind.ModelID,
			StylePreset:      ind.StylePreset,
			NegativeGuidance: ind.NegativeGuidance,
			PromptPreamble:   ind.PromptPreamble,
			IndustryKey:      key,
		}
	}
	return layers, nil
}

func validatePack(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("industries.schema.json", strings.NewReader(packSchema)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("industries.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(bytes.TrimSpace(data), &v); err != nil {
		return fmt.Errorf("unmarshal industry pack: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("industry pack does not match schema: %w", err)
	}
	return nil
}
