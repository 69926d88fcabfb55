package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/registry"
	"github.com/roach88/quickcart/internal/store"
)

// UsersOptions holds flags shared by the users subcommands.
type UsersOptions struct {
	*RootOptions
	Database string
}

// NewUsersCommand creates the users command group. Self-registration
// over the API only creates customers; this is where admins come from.
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UsersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage storefront accounts",
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite slot database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newUsersListCommand(opts))
	cmd.AddCommand(newUsersAddCommand(opts))
	cmd.AddCommand(newUsersDeleteCommand(opts))

	return cmd
}

// withRegistry opens the slot database, loads the users collection and
// hands the registry to fn, closing the database afterwards.
func withRegistry(opts *UsersOptions, fn func(ctx context.Context, reg *registry.Registry) error) error {
	slots, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer slots.Close()

	ctx := context.Background()
	reg := registry.New(slots)
	if err := reg.Refresh(ctx); err != nil {
		return WrapExitError(ExitCommandError, "failed to load users", err)
	}
	return fn(ctx, reg)
}

func newUsersListCommand(opts *UsersOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List registered accounts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersList(opts, cmd)
		},
	}
}

func runUsersList(opts *UsersOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	return withRegistry(opts, func(ctx context.Context, reg *registry.Registry) error {
		users := reg.List()
		for i := range users {
			users[i].Password = ""
		}

		if formatter.Format == "json" {
			return formatter.Success(map[string]any{"users": users})
		}

		if len(users) == 0 {
			fmt.Fprintln(formatter.Writer, "No accounts registered.")
			return nil
		}
		for _, u := range users {
			fmt.Fprintf(formatter.Writer, "%s  %-8s  %s <%s>\n", u.ID, u.Role, u.Name, u.Email)
		}
		return nil
	})
}

// AddUserOptions holds flags for users add.
type AddUserOptions struct {
	*UsersOptions
	Name     string
	Email    string
	Password string
	Admin    bool
}

func newUsersAddCommand(opts *UsersOptions) *cobra.Command {
	addOpts := &AddUserOptions{UsersOptions: opts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an account",
		Long: `Register an account directly in the slot database.

Example:
  quickcart users add --db shop.db --name Asha --email asha@example.com --password secret --admin`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersAdd(addOpts, cmd)
		},
	}

	cmd.Flags().StringVar(&addOpts.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&addOpts.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&addOpts.Password, "password", "", "login password (required)")
	cmd.Flags().BoolVar(&addOpts.Admin, "admin", false, "grant the admin role")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runUsersAdd(opts *AddUserOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	role := model.RoleCustomer
	if opts.Admin {
		role = model.RoleAdmin
	}

	return withRegistry(opts.UsersOptions, func(ctx context.Context, reg *registry.Registry) error {
		u, err := reg.Register(ctx, opts.Name, opts.Email, opts.Password, role)
		if err != nil {
			_ = formatter.Error("user", err.Error(), nil)
			return WrapExitError(ExitFailure, "failed to register account", err)
		}

		u.Password = ""
		if formatter.Format == "json" {
			return formatter.Success(map[string]any{"user": u})
		}
		fmt.Fprintf(formatter.Writer, "✓ Registered %s (%s) as %s\n", u.Name, u.Email, u.Role)
		return nil
	})
}

func newUsersDeleteCommand(opts *UsersOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <user-id>",
		Short:         "Delete an account by ID",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersDelete(opts, args[0], cmd)
		},
	}
}

func runUsersDelete(opts *UsersOptions, id string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	return withRegistry(opts, func(ctx context.Context, reg *registry.Registry) error {
		// No session at the CLI, so the self-deletion guard never trips.
		if err := reg.Delete(ctx, id, ""); err != nil {
			_ = formatter.Error("user", err.Error(), nil)
			return WrapExitError(ExitFailure, "failed to delete account", err)
		}

		if formatter.Format == "json" {
			return formatter.Success(map[string]string{"deleted": id})
		}
		fmt.Fprintf(formatter.Writer, "✓ Deleted %s\n", id)
		return nil
	})
}
