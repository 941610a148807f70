package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/photom/photom/internal/output"
)

// requestPath adds the leading slash the base URL expects.
func requestPath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func newGetCmd(a *app) *cobra.Command {
	var opts output.JSONOptions

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "GET a path and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Get(cmd.Context(), requestPath(args[0]))
			if err != nil {
				return err
			}
			return output.JSON(a.out, v, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "gjson path to print instead of the whole response")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "print JSON on one line")
	return cmd
}

func newPostCmd(a *app) *cobra.Command {
	var (
		opts output.JSONOptions
		data string
		sets []string
	)

	cmd := &cobra.Command{
		Use:   "post <path>",
		Short: "POST a JSON body to a path and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := output.BuildBody(data, sets)
			if err != nil {
				return fmt.Errorf("build body: %w", err)
			}

			v, err := a.client.Post(cmd.Context(), requestPath(args[0]), json.RawMessage(body))
			if err != nil {
				return err
			}
			return output.JSON(a.out, v, opts)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "raw JSON request body (default {})")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set a body field, key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "gjson path to print instead of the whole response")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "print JSON on one line")
	return cmd
}
