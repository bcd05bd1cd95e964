package policy

// Layer is one partial render configuration record. Empty fields mean "this
// layer has no opinion"; merging picks the first non-empty value in
// tenant > industry > platform order.
type Layer struct {
	Enabled          *bool  `json:"enabled,omitempty"`
	ModelID          string `json:"model_id,omitempty"`
	StylePreset      string `json:"style_preset,omitempty"`
	NegativeGuidance string `json:"negative_guidance,omitempty"`
	PromptPreamble   string `json:"prompt_preamble,omitempty"`
	IndustryKey      string `json:"industry_key,omitempty"`
}

// EffectiveRenderConfig is the fully merged policy for one tenant.
type EffectiveRenderConfig struct {
	Enabled          bool
	ModelID          string
	StylePreset      string
	NegativeGuidance string
	PromptPreamble   string
	IndustryKey      string
	MaxPerDay        int
}

// Merge applies layers in precedence order, first-non-empty wins per field.
// Enablement is resolved separately (fail closed), not merged here.
func Merge(layers ...Layer) Layer {
	var out Layer
	for _, l := range layers {
		if out.ModelID == "" {
			out.ModelID = l.ModelID
		}
		if out.StylePreset == "" {
			out.StylePreset = l.StylePreset
		}
		if out.NegativeGuidance == "" {
			out.NegativeGuidance = l.NegativeGuidance
		}
		if out.PromptPreamble == "" {
			out.PromptPreamble = l.PromptPreamble
		}
		if out.IndustryKey == "" {
			out.IndustryKey = l.IndustryKey
		}
	}
	return out
}
