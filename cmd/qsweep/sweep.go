package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ersonp/qdrant-sweep/internal/domain/entities"
	"github.com/ersonp/qdrant-sweep/internal/domain/ports"
	"github.com/ersonp/qdrant-sweep/internal/domain/services"
)

type sweepFlags struct {
	list     bool
	tenant   string
	all      bool
	clear    bool
	delete   bool
	url      string
	password string
}

// usageError marks a flag conflict. It is reported with usage guidance and
// the process exits through the normal path: no action was performed, so
// there is nothing to fail.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func newRootCmd() *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:     "qsweep",
		Short:   "Bulk-clear or delete Qdrant collections",
		Version: version,
		Long: `qsweep clears or deletes Qdrant collections, either for a single
tenant (the products_<id> and conversations_<id> pair) or for the whole
deployment. Destructive runs always ask for confirmation first.

Configuration: QDRANT_URL and QDRANT_PASSWORD environment variables,
overridden by --url and --password. Flag conflicts print usage and exit 0.`,
		Example: `  qsweep --list
  qsweep --tenant abc123 --clear
  qsweep --tenant abc123 --delete
  qsweep --all --clear
  qsweep --all --delete`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.list, "list", false, "List all collections with point counts")
	cmd.Flags().StringVar(&flags.tenant, "tenant", "", "Restrict to the tenant's collections")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Target every collection")
	cmd.Flags().BoolVar(&flags.clear, "clear", false, "Remove all points, keep the collections")
	cmd.Flags().BoolVar(&flags.delete, "delete", false, "Drop the collections entirely")
	cmd.Flags().StringVar(&flags.url, "url", "", "Qdrant address (overrides QDRANT_URL)")
	cmd.Flags().StringVar(&flags.password, "password", "", "Qdrant credential (overrides QDRANT_PASSWORD)")

	return cmd
}

// validateFlags checks flag combinations for a non-list run.
func validateFlags(flags sweepFlags) error {
	if flags.list {
		return nil
	}
	if flags.clear && flags.delete {
		return &usageError{msg: "use either --clear or --delete, not both"}
	}
	if !flags.clear && !flags.delete {
		return &usageError{msg: "specify --clear or --delete"}
	}
	if flags.tenant == "" && !flags.all {
		return &usageError{msg: "specify --tenant <id> or --all"}
	}
	return nil
}

// resolveAction maps validated flags to the executor action.
func resolveAction(flags sweepFlags) services.Action {
	if flags.delete {
		return services.ActionDelete
	}
	return services.ActionClear
}

func runSweep(cmd *cobra.Command, flags sweepFlags) error {
	ctx := cmd.Context()

	if err := validateFlags(flags); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n\n%s", uerr.msg, cmd.UsageString())
			return nil
		}
		return err
	}

	return withAdmin(ctx, flags, func(admin ports.VectorAdmin) error {
		collections, err := services.NewInventory(admin).List(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// A failed inventory degrades to an empty set; the run itself
			// stays alive so the operator sees the state instead of a stack
			// of retries.
			fmt.Fprintf(cmd.ErrOrStderr(), "could not list collections: %v\n", err)
			collections = nil
		}

		if flags.list {
			printCollections(collections)
			return nil
		}

		var targets []entities.Collection
		switch {
		case flags.tenant != "":
			if uuid.Validate(flags.tenant) != nil {
				fmt.Printf("note: tenant id %q is not a UUID\n", flags.tenant)
			}
			targets = services.SelectForTenant(flags.tenant, collections)
			if len(targets) == 0 {
				fmt.Printf("No collections found for tenant %q\n", flags.tenant)
				return nil
			}
		default:
			targets = services.SelectAll(collections)
			if len(targets) == 0 {
				fmt.Println("No collections found.")
				return nil
			}
		}

		executor := services.NewExecutor(admin, newConsoleConfirmer())
		_, err = executor.Execute(ctx, resolveAction(flags), targets, false)
		return err
	})
}

func printCollections(collections []entities.Collection) {
	if len(collections) == 0 {
		fmt.Println("No collections found.")
		return
	}

	fmt.Printf("Collections (%d):\n", len(collections))
	for _, col := range collections {
		fmt.Printf("  %s (%d points)\n", col.Name, col.Points)
	}
}
