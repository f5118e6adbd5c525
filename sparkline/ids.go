package sparkline

import (
	"strings"

	"github.com/google/uuid"
)

// idNamespace scopes the name-based UUIDs used for element ids.
var idNamespace = uuid.MustParse("5b0e7c43-6a2d-4f1e-9c8a-3d6f2b1e4a70")

// elementIDs names the cross-referenced parts of one document.
type elementIDs struct {
	fill string
	fade string
	mask string
}

// deriveIDs prefers the caller's prefix. Otherwise it hashes the document
// content, so identical renders share ids and different renders embedded
// in the same page do not collide.
func deriveIDs(prefix string, content ...string) elementIDs {
	prefix = sanitizeID(prefix)
	if prefix == "" {
		sum := uuid.NewSHA1(idNamespace, []byte(strings.Join(content, "|")))
		prefix = "spark-" + strings.ReplaceAll(sum.String(), "-", "")[:12]
	}
	return elementIDs{
		fill: prefix + "-fill",
		fade: prefix + "-fade",
		mask: prefix + "-mask",
	}
}

// sanitizeID keeps characters that are safe inside both an XML id and a
// url(#...) reference.
func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	// XML names cannot start with a digit or hyphen.
	if out != "" && (out[0] == '-' || (out[0] >= '0' && out[0] <= '9')) {
		out = "s" + out
	}
	return out
}
