// Package styles holds the closed catalog of headshot styles: the prompt
// template sent to the image model plus the display metadata mirrored on the
// public API. The catalog is immutable after process start and safe for
// concurrent reads.
package styles

// StyleDefinition describes one headshot style.
type StyleDefinition struct {
	Key           string
	Name          string
	Description   string
	Prompt        string
	FallbackImage string
}

// DefaultKey is returned by Lookup for any unrecognized style key.
const DefaultKey = "corporate"

var catalog = []StyleDefinition{
	{
		Key:         "corporate",
		Name:        "Corporate Classic",
		Description: "Traditional business headshot with neutral background",
		Prompt: `Transform this photo into a professional corporate headshot with the following characteristics. Maintain the person’s original facial features. Replace casual or random clothing with a well-fitted business suit — navy, charcoal, or black — paired with a crisp white or light blue dress shirt. Add subtle natural lighting from the front, with a softly blurred office or neutral background. Ensure realistic proportions, sharp focus, and flattering skin tones suitable for LinkedIn or corporate profile photos`,
		FallbackImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=1000&fit=crop&q=80",
	},
	{
		Key:         "creative",
		Name:        "Creative Professional",
		Description: "Modern, approachable style with contemporary aesthetic",
		Prompt: `Transform this photo into a close-up portrait with shallow depth of field creating soft bokeh background. Warm, natural lighting highlighting subject’s features. Casual attire and genuine, engaging smile. Subject fills more of the frame. Background hints at creative workspace or outdoor setting with beautiful blur. Preserve natural skin texture and authentic features. Modern, approachable creative professional aesthetic. Make subject look great and accurate to their original appearance.`,
		FallbackImage: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=800&h=1000&fit=crop&q=80",
	},
	{
		Key:         "executive",
		Name:        "Executive Portrait",
		Description: "High-end, authoritative look with dramatic lighting",
		Prompt: `Transform this photo into a dramatic black and white portrait in editorial style. Preserve subject’s authentic features and character. Apply these specifications: monochromatic treatment with rich grayscale tones, deep charcoal or black background with subtle gradation, dramatic side lighting creating strong shadows and highlights on face (Rembrandt or split lighting), preserve all natural skin texture and detail - no smoothing, sharp focus capturing fine details in eyes and facial features, relaxed and contemplative expression - not smiling, casual professional attire (dark textured jacket, no tie), hand gesture near chest or face for dynamic composition, high contrast with deep blacks and bright highlights, cinematic film grain for texture. Maintain editorial photography aesthetic - artistic but professional. Make subject look great and accurate to their original appearance.`,
		FallbackImage: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=800&h=1000&fit=crop&q=80",
	},
}

var byKey = func() map[string]StyleDefinition {
	m := make(map[string]StyleDefinition, len(catalog))
	for _, def := range catalog {
		m[def.Key] = def
	}
	return m
}()

// Lookup resolves a style key to its definition. Unknown keys fall back to
// the default style instead of failing; strict validation belongs to the
// request layer via Valid.
func Lookup(key string) StyleDefinition {
	if def, ok := byKey[key]; ok {
		return def
	}
	return byKey[DefaultKey]
}

// Valid reports whether key belongs to the closed style enumeration.
func Valid(key string) bool {
	_, ok := byKey[key]
	return ok
}

// All returns the catalog in stable display order.
func All() []StyleDefinition {
	out := make([]StyleDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// Keys returns the style identifiers in stable display order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, def := range catalog {
		keys[i] = def.Key
	}
	return keys
}
