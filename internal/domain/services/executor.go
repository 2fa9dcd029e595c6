package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ersonp/qdrant-sweep/internal/domain/entities"
	"github.com/ersonp/qdrant-sweep/internal/domain/ports"
)

// Action is the destructive operation applied to each target collection.
type Action int

const (
	// ActionClear removes all points, keeping the collection.
	ActionClear Action = iota
	// ActionDelete removes the collection entirely.
	ActionDelete
)

// String returns the operator-facing verb for the action.
func (a Action) String() string {
	if a == ActionDelete {
		return "delete"
	}
	return "clear"
}

// Executor applies a destructive action to a set of collections, one at a
// time, gated by operator confirmation.
type Executor struct {
	admin   ports.VectorAdmin
	confirm ports.Confirmer
	out     io.Writer
}

// NewExecutor creates a new executor writing progress to stdout.
func NewExecutor(admin ports.VectorAdmin, confirm ports.Confirmer) *Executor {
	return &Executor{admin: admin, confirm: confirm, out: os.Stdout}
}

// SetOutput redirects progress output, used by tests.
func (e *Executor) SetOutput(w io.Writer) {
	e.out = w
}

// Execute applies the action to each target in order and returns the number
// of targets processed successfully. Unless confirmed is already true, the
// operator is shown the exact target set and asked for consent; a declined
// confirmation cancels the whole batch with zero side effects. A failure on
// one target never stops the rest of the batch.
func (e *Executor) Execute(ctx context.Context, action Action, targets []entities.Collection, confirmed bool) (int, error) {
	if len(targets) == 0 {
		return 0, nil
	}

	if !confirmed {
		if !e.confirm.Confirm(e.buildPrompt(action, targets)) {
			fmt.Fprintln(e.out, "Cancelled.")
			return 0, nil
		}
	}

	success := 0
	for _, col := range targets {
		// An operator interrupt stops the batch between items; the item in
		// flight either completed or never happened.
		if err := ctx.Err(); err != nil {
			return success, err
		}

		fmt.Fprintf(e.out, "Processing %q...\n", col.Name)

		var err error
		switch action {
		case ActionDelete:
			err = e.admin.DeleteCollection(ctx, col.Name)
		default:
			err = e.clear(ctx, col.Name)
		}

		if err != nil {
			fmt.Fprintf(e.out, "  failed: %v\n", err)
			continue
		}
		success++
	}

	fmt.Fprintf(e.out, "%d/%d collections processed\n", success, len(targets))
	return success, nil
}

// clear removes all points from one collection. A collection that is already
// empty counts as success without issuing a destructive call. The count is
// re-read here because inventory counts may be stale by execution time.
func (e *Executor) clear(ctx context.Context, name string) error {
	count, err := e.admin.CollectionPointCount(ctx, name)
	if err != nil {
		return fmt.Errorf("getting point count: %w", err)
	}

	if count == 0 {
		fmt.Fprintf(e.out, "  %q is already empty\n", name)
		return nil
	}

	fmt.Fprintf(e.out, "  clearing %d points\n", count)
	if err := e.admin.ClearCollection(ctx, name); err != nil {
		return fmt.Errorf("clearing points: %w", err)
	}

	return nil
}

// buildPrompt describes the action and the exact target set, including the
// aggregate point count.
func (e *Executor) buildPrompt(action Action, targets []entities.Collection) string {
	var b strings.Builder
	var total uint64

	fmt.Fprintf(&b, "About to %s %d collection(s):\n", action, len(targets))
	for _, col := range targets {
		fmt.Fprintf(&b, "  %s (%d points)\n", col.Name, col.Points)
		total += col.Points
	}
	fmt.Fprintf(&b, "%s %d collection(s) with %d points total?", actionTitle(action), len(targets), total)

	return b.String()
}

func actionTitle(action Action) string {
	if action == ActionDelete {
		return "Delete"
	}
	return "Clear"
}
