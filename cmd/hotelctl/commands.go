package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errNoToken = errors.New("no token: pass --token or set HOTELCTL_TOKEN (hotelctl login prints one)")

func requireToken(opts *globalOpts) error {
	if strings.TrimSpace(opts.token) == "" {
		return errNoToken
	}
	return nil
}

func newLoginCmd(opts *globalOpts) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a bearer token and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			tok, err := c.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newListCmd(opts *globalOpts) *cobra.Command {
	var (
		page    int
		size    int
		filters []string
	)
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Print one page of a resource with its page window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(opts); err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			f, err := parseFilters(filters)
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := resourceFor(c, args[0])
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), res, opts.token, page, size, f)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 10, "Rows per page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "Filter as key=value (repeatable)")
	return cmd
}

func newGetCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Print one record as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(opts); err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := resourceFor(c, args[0])
			if err != nil {
				return err
			}
			rec, err := res.Get(cmd.Context(), opts.token, id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
}

func newSetStatusCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <resource> <id> <status>",
		Short: "Change a record's status and print the stored record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(opts); err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			st, err := statusValue(args[0], args[2])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := resourceFor(c, args[0])
			if err != nil {
				return err
			}
			rec, err := res.SetStatus(cmd.Context(), opts.token, id, st)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
}

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the resource names the other commands accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range resourceNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseFilters(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, kv := range raw {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("filter %q is not key=value", kv)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
