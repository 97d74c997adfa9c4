package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/menmos/httprange-go/config"
	"github.com/menmos/httprange-go/payload"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [value...]",
		Short: "Check Range header values, exiting non-zero if any is invalid",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			failed := false

			for _, value := range values {
				result := payload.CheckResult{Input: value, Valid: true}
				if _, err := a.parseAccepted(value); err != nil {
					failed = true
					result.Valid = false
					result.Error = err.Error()
				}

				if a.profile.OutputFormat() == config.OutputJSON {
					if err := encoder.Encode(result); err != nil {
						return errors.Wrap(err, "failed to encode result")
					}
					continue
				}

				if result.Valid {
					fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", value)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\t%s\n", value, result.Error)
				}
			}

			if failed {
				return errInvalidInput
			}
			return nil
		},
	}
}
