package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/menmos/httprange-go"
	"github.com/menmos/httprange-go/config"
	"github.com/menmos/httprange-go/payload"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [value...]",
		Short: "Parse Range header values and print their canonical form",
		Long: `Parse each Range header value given as an argument, or each line of
stdin when no argument is given, and print its canonical form.

With --output json, one JSON object is printed per value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			failed := false

			for _, value := range values {
				result := a.parse(value)
				if result.Error != "" {
					failed = true
					a.logger.Error("invalid range", "input", value, "err", result.Error)
				}

				if a.profile.OutputFormat() == config.OutputJSON {
					if err := encoder.Encode(result); err != nil {
						return errors.Wrap(err, "failed to encode result")
					}
				} else if result.Error == "" {
					fmt.Fprintln(cmd.OutOrStdout(), result.Canonical)
				}
			}

			if failed {
				return errInvalidInput
			}
			return nil
		},
	}
}

func (a *app) parse(value string) payload.ParseResult {
	r, err := a.parseAccepted(value)
	if err != nil {
		return payload.ParseResult{Input: value, Error: err.Error()}
	}

	canonical, err := httprange.Stringify(r)
	if err != nil {
		return payload.ParseResult{Input: value, Error: err.Error()}
	}

	doc := payload.NewDocument(r)
	return payload.ParseResult{Input: value, Canonical: canonical, Range: &doc}
}

// parseAccepted parses value and checks its unit against the profile.
func (a *app) parseAccepted(value string) (httprange.Range, error) {
	r, err := httprange.Parse(value)
	if err != nil {
		return httprange.Range{}, err
	}

	if !a.profile.AcceptsUnit(r.Unit) {
		return httprange.Range{}, errors.Errorf("range unit '%s' is not accepted", r.Unit)
	}

	a.logger.Debug("parsed range", "input", value, "unit", r.Unit, "specs", len(r.Set))
	return r, nil
}
