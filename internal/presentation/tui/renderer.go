package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour,
// styled for the detected terminal background.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render, nil
}

// SnapshotMarkdown describes a snapshot as a markdown document, top of the
// stack last.
func SnapshotMarkdown(key string, snap *domain.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", key)
	fmt.Fprintf(&sb, "- **container**: `%s`\n", snap.ContainerID)
	fmt.Fprintf(&sb, "- **depth**: %d\n", snap.Depth())
	if !snap.SavedAt.IsZero() {
		fmt.Fprintf(&sb, "- **saved**: %s\n", snap.SavedAt.Format("2006-01-02 15:04:05 MST"))
	}
	if snap.Depth() == 0 {
		sb.WriteString("\n_empty stack_\n")
		return sb.String()
	}

	sb.WriteString("\n| # | kind | tag | args |\n|---|------|-----|------|\n")
	for i, e := range snap.Entries {
		tag := e.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i, e.Kind, tag, formatArgs(e.Args))
	}
	return sb.String()
}

func formatArgs(args map[string]any) string {
	if len(args) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, args[k])
	}
	return strings.Join(parts, " ")
}
