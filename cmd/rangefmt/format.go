package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/menmos/httprange-go"
	"github.com/menmos/httprange-go/payload"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Format a JSON range document read from stdin as a Range header value",
		Long: `Read a JSON document of the form

  {"rangeUnit": "bytes", "rangeSet": [{"firstPos": 0, "lastPos": 99}, {"suffixLength": 10}, "other"]}

from stdin and print the corresponding Range header value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := payload.DecodeDocument(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "invalid range document")
			}

			if !a.profile.AcceptsUnit(r.Unit) {
				return errors.Errorf("range unit '%s' is not accepted", r.Unit)
			}

			value, err := httprange.Stringify(r)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
