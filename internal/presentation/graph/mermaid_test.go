package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/navstack/internal/presentation/graph"
	"github.com/aretw0/navstack/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		entries     []domain.SnapshotEntry
		contains    []string
		notContains []string
	}{
		{
			name:    "Root Shape",
			entries: []domain.SnapshotEntry{{Kind: "color"}},
			contains: []string{
				"e0((\"color\"))",
				"class e0 current;",
			},
			notContains: []string{"-->"},
		},
		{
			name: "Tagged Entry Shape",
			entries: []domain.SnapshotEntry{
				{Kind: "color"},
				{Kind: "number", Tag: "n1"},
				{Kind: "color"},
			},
			contains: []string{
				"e1[/\"number <br/> #n1\"/]",
				"e2[\"color\"]",
				"e0 --> e1",
				"e1 --> e2",
				"class e2 current;",
			},
		},
		{
			name:    "Quotes Escaped",
			entries: []domain.SnapshotEntry{{Kind: `say "hi"`}},
			contains: []string{
				"e0((\"say 'hi'\"))",
			},
		},
		{
			name:        "Empty Stack",
			entries:     nil,
			contains:    []string{"graph TD"},
			notContains: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(&domain.Snapshot{Entries: tt.entries})
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}
