// Package builder wires the variant catalog and pattern constraint
// models into the solver and path validator, implementing the retry
// loop spec.md §4.5/§4.6 describe as a single outer "build" call.
package builder

import "image"

// Source is a discriminated union over the two ways a build can obtain
// its variants, per spec.md §9's "Polymorphic variant sources" design
// note: modeled as a sum type rather than a shared base type. Exactly
// one of Image or Text should be set. Weight/neighbor overrides for
// image-mode variants come from config.Config.Variants, not Source.
type Source struct {
	// Image, if non-nil, is tiled into a rotation/dedupe catalog
	// (spec.md §4.3's image mode).
	Image image.Image

	// Text, if non-empty, is parsed into a chunk.Map and pattern-matched
	// (spec.md §4.4's textual mode).
	Text string
}

// IsText reports whether this source should be built via the textual
// pattern path rather than the image path.
func (s Source) IsText() bool {
	return s.Image == nil && s.Text != ""
}
