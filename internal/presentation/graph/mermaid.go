package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/navstack/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a saved stack, root at the
// top. It applies semantic styling:
// - Root: ((Circle))
// - Tagged entry: [/Parallelogram/]
// - Default: [Rectangle]
// The top entry is styled as current.
func GenerateMermaid(snap *domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, e := range snap.Entries {
		id := fmt.Sprintf("e%d", i)

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case e.Tag != "":
			opener, closer = "[/", "/]"
		}

		label := sanitizeLabel(e.Kind)
		if e.Tag != "" {
			label = fmt.Sprintf("%s <br/> #%s", label, sanitizeLabel(e.Tag))
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

		if i > 0 {
			fmt.Fprintf(&sb, "    e%d --> %s\n", i-1, id)
		}
	}

	if n := len(snap.Entries); n > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both themes.
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class e%d current;\n", n-1)
	}

	return sb.String()
}

func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
