package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/navstack/internal/presentation/graph"
	"github.com/aretw0/navstack/internal/presentation/tui"
	"github.com/aretw0/navstack/pkg/ports"
)

// ListSnapshots prints the stored keys, one per line.
func ListSnapshots(ctx context.Context, w io.Writer, store ports.SnapshotStore) error {
	keys, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing snapshots: %w", err)
	}
	if len(keys) == 0 {
		fmt.Fprintln(w, "No snapshots found.")
		return nil
	}
	fmt.Fprintln(w, "Snapshots:")
	for _, k := range keys {
		fmt.Fprintln(w, "- "+k)
	}
	return nil
}

// InspectSnapshot prints the snapshot stored under key, as rendered markdown
// when pretty is set and as indented JSON otherwise.
func InspectSnapshot(ctx context.Context, w io.Writer, store ports.SnapshotStore, key string, pretty bool) error {
	snap, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("error loading snapshot '%s': %w", key, err)
	}

	if pretty {
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(tui.SnapshotMarkdown(key, snap))
		if err != nil {
			return fmt.Errorf("error rendering snapshot: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// GraphSnapshot prints the snapshot stored under key as a Mermaid flowchart.
func GraphSnapshot(ctx context.Context, w io.Writer, store ports.SnapshotStore, key string) error {
	snap, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("error loading snapshot '%s': %w", key, err)
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(snap))
	return err
}

// RemoveSnapshots deletes keys, or every stored key when all is set.
// It keeps going after a failure and reports the last error.
func RemoveSnapshots(ctx context.Context, w io.Writer, store ports.SnapshotStore, keys []string, all bool) error {
	if all {
		var err error
		keys, err = store.List(ctx)
		if err != nil {
			return fmt.Errorf("error listing snapshots: %w", err)
		}
	}

	var lastErr error
	for _, k := range keys {
		if err := store.Delete(ctx, k); err != nil {
			fmt.Fprintf(w, "Error removing '%s': %v\n", k, err)
			lastErr = err
			continue
		}
		fmt.Fprintf(w, "Removed snapshot '%s'\n", k)
	}
	return lastErr
}
