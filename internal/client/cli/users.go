package cli

import (
	"bufio"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/spf13/cobra"
)

func newUsersCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Add or list users",
	}
	cmd.AddCommand(newUsersAddCommand(o), newUsersListCommand(o))
	return cmd
}

func newUsersAddCommand(o *options) *cobra.Command {
	var u models.User

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Long: `Register a user. Name, surname and email that are not given as flags
are asked for interactively; the password is read without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			prompts := []struct {
				field  *string
				prompt string
			}{
				{&u.Name, "Name"},
				{&u.Surname, "Surname"},
				{&u.Email, "Email"},
			}
			for _, p := range prompts {
				if *p.field != "" {
					continue
				}
				v, err := GetSimpleText(reader, p.prompt, out)
				if err != nil {
					return fmt.Errorf("read %s: %w", p.prompt, err)
				}
				*p.field = v
			}

			if !cmd.Flags().Changed("password") {
				pw, err := GetPassword(out)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				u.Password = pw
			}

			created, err := o.api().AddUser(cmd.Context(), &u)
			if err != nil {
				return err
			}

			if o.jsonOutput {
				return printJSON(out, created)
			}
			fmt.Fprintf(out, "Created user: %s\n", created.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&u.Name, "name", "", "first name")
	cmd.Flags().StringVar(&u.Surname, "surname", "", "surname")
	cmd.Flags().StringVar(&u.Email, "email", "", "email address")
	cmd.Flags().StringVar(&u.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&u.IsAdmin, "admin", false, "mark the user as administrator")

	return cmd
}

func newUsersListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := o.api().ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				return printJSON(out, lines)
			}
			for _, l := range lines {
				fmt.Fprintln(out, l)
			}
			return nil
		},
	}
}
