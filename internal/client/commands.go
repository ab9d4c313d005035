package client

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

const defaultExportFile = "passwords.json"

func (a *App) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all entries",
		Args:  cobra.NoArgs,
	}
	reveal := cmd.Flags().Bool("reveal", false, "Show passwords")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, _ []string, session service.VaultSession) error {
		entries, err := session.Entries()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderEntries(indexAll(entries), *reveal))
		return nil
	})
	return cmd
}

func (a *App) newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find entries whose site or username contains term",
		Args:  cobra.ExactArgs(1),
	}
	reveal := cmd.Flags().Bool("reveal", false, "Show passwords")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, args []string, session service.VaultSession) error {
		found, err := session.Search(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderEntries(found, *reveal))
		return nil
	})
	return cmd
}

func (a *App) newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Args:  cobra.NoArgs,
	}
	site := cmd.Flags().String("site", "", "Site name or URL")
	username := cmd.Flags().String("username", "", "Username on the site")
	password := cmd.Flags().String("password", "", "Password on the site, prompted when omitted in manual mode")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, _ []string, session service.VaultSession) error {
		entry := models.VaultEntry{Site: *site, Username: *username, Password: *password}

		if account, _ := session.Account(); account.Method == models.LoginMethodManual && entry.Password == "" {
			p, err := a.opts.Passwords.ReadPassword("Entry password: ")
			if err != nil {
				return err
			}
			entry.Password = p
		}

		if err := session.Save(entry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", entry.Site)
		return nil
	})
	return cmd
}

func (a *App) newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <number>",
		Short: "Change fields of an entry",
		Args:  cobra.ExactArgs(1),
	}
	site := cmd.Flags().String("site", "", "New site")
	username := cmd.Flags().String("username", "", "New username")
	password := cmd.Flags().String("password", "", "New password")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, args []string, session service.VaultSession) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		entry, err := session.BeginEdit(index)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("site") {
			entry.Site = *site
		}
		if flags.Changed("username") {
			entry.Username = *username
		}
		if flags.Changed("password") {
			entry.Password = *password
		}

		if err = session.Save(entry); err != nil {
			session.CancelEdit()
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated #%s\n", args[0])
		return nil
	})
	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <number>",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = a.withSession(func(cmd *cobra.Command, args []string, session service.VaultSession) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		if err = session.Delete(index); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted #%s\n", args[0])
		return nil
	})
	return cmd
}

func (a *App) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all entries as plain JSON",
		Args:  cobra.NoArgs,
	}
	output := cmd.Flags().StringP("output", "o", defaultExportFile, "Output file")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, _ []string, session service.VaultSession) error {
		data, err := session.Export()
		if err != nil {
			return err
		}
		if err = os.WriteFile(*output, data, 0o600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", *output)
		return nil
	})
	return cmd
}

func (a *App) newCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <number>",
		Short: "Copy a username or password to the clipboard",
		Args:  cobra.ExactArgs(1),
	}
	field := cmd.Flags().StringP("field", "f", "password", "Field to copy: username or password")

	cmd.RunE = a.withSession(func(cmd *cobra.Command, args []string, session service.VaultSession) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		entries, err := session.Entries()
		if err != nil {
			return err
		}
		if index >= len(entries) {
			return fmt.Errorf("%w: %d", service.ErrIndexOutOfRange, index)
		}

		var text string
		switch *field {
		case "password":
			text = entries[index].Password
		case "username":
			text = entries[index].Username
		default:
			return ErrUnknownCopyField
		}

		if err = a.opts.Clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s of #%s copied\n", *field, args[0])
		return nil
	})
	return cmd
}

// parseIndex turns a 1-based entry number into a list position.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, arg)
	}
	return n - 1, nil
}
