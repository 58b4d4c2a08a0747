package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
)

type clientOptions struct {
	id     string
	secret string
	name   string
	role   string
	scopes string
}

func newCreateClientCmd(flags *dbFlags) *cobra.Command {
	opts := clientOptions{}
	cmd := &cobra.Command{
		Use:   "create-client",
		Short: "Register an OAuth2 client for the client credentials grant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.role != models.RoleAdmin && opts.role != models.RoleUser {
				return fmt.Errorf("invalid role %q (admin or user)", opts.role)
			}
			db, err := flags.open()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return createClient(cmd.Context(), db, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.role, "role", models.RoleAdmin, "client role (admin or user)")
	cmd.Flags().StringVar(&opts.id, "id", "", "client id; defaults to <role>-client")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "client secret; generated when empty")
	cmd.Flags().StringVar(&opts.name, "name", "", "display name")
	cmd.Flags().StringVar(&opts.scopes, "scopes", "read write", "space separated scopes")
	return cmd
}

func createClient(ctx context.Context, db *gorm.DB, opts clientOptions, out io.Writer) error {
	if opts.id == "" {
		opts.id = opts.role + "-client"
	}
	if opts.name == "" {
		opts.name = fmt.Sprintf("Development %s Client", opts.role)
	}

	clients := services.NewClientService(db)
	existing, err := clients.GetClientByID(ctx, opts.id)
	if err == nil {
		fmt.Fprintf(out, "Client %q already exists with role '%s', secret unchanged\n", existing.ID, existing.Role)
		return nil
	}
	if !errors.Is(err, services.ErrClientNotFound) {
		return err
	}

	secret := opts.secret
	if secret == "" {
		secret = uuid.New().String()
	}
	client := &models.OAuthClient{
		ID:         opts.id,
		Secret:     secret,
		Name:       opts.name,
		Domain:     "http://localhost",
		Role:       opts.role,
		Scopes:     opts.scopes,
		GrantTypes: "client_credentials",
	}
	if err := clients.CreateClient(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	fmt.Fprintf(out, "OAuth client created for role '%s'\n", client.Role)
	fmt.Fprintf(out, "Client ID: %s\n", client.ID)
	fmt.Fprintf(out, "Client Secret: %s\n", secret)
	fmt.Fprintln(out, "\nRequest a token with:")
	fmt.Fprintf(out, "curl -X POST http://localhost:8080/oauth/token \\\n")
	fmt.Fprintf(out, "  -d 'grant_type=client_credentials' \\\n")
	fmt.Fprintf(out, "  -d 'client_id=%s' \\\n", client.ID)
	fmt.Fprintf(out, "  -d 'client_secret=%s'\n", secret)
	return nil
}
