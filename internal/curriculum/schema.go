package curriculum

import "github.com/jhalilaj/my-ai/internal/jsonx"

// sectionListSchema constrains segmentation replies to a non-empty
// list of section title strings.
var sectionListSchema = &jsonx.Schema{
	Name: "section_list",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
	},
}
