package texture

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PackedMarker is inserted between the base name and the extension of a
// packed metallic/roughness texture.
const PackedMarker = "_metallicRoughness"

// MetallicSuffixes are the stem suffixes that identify a metallic map, in
// match order.
var MetallicSuffixes = []string{"_metallic", "-metallic", "metallic"}

// StripSuffix removes the first suffix of suffixes that stem ends with.
// Suffixes are tried in list order, not by length, and must be lower case.
// The comparison ignores case but the returned prefix keeps the casing of
// stem. If nothing matches, stem is returned unchanged.
func StripSuffix(stem string, suffixes []string) string {
	lower := cases.Lower(language.Und)
	for _, suffix := range suffixes {
		if len(stem) < len(suffix) {
			continue
		}
		cut := len(stem) - len(suffix)
		if lower.String(stem[cut:]) == suffix {
			return stem[:cut]
		}
	}
	return stem
}

// OutputPath derives the packed texture path from the metallic map path:
// the metallic suffix is stripped from the stem, PackedMarker is appended and
// the original extension is kept. The result lives next to the metallic map.
//
//	OutputPath("textures/Rock_Metallic.png") == "textures/Rock_metallicRoughness.png"
func OutputPath(metallicPath string) string {
	dir, file := filepath.Split(metallicPath)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	return filepath.Join(dir, StripSuffix(stem, MetallicSuffixes)+PackedMarker+ext)
}
