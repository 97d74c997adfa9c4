package config

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/menmos/httprange-go"
)

// Output formats understood by rangefmt.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// A Profile holds the rangefmt settings selected with --profile.
type Profile struct {
	// Units lists the accepted range units. Empty accepts any unit.
	Units []string `json:"units,omitempty"`

	// Output is either "text" or "json". Empty means "text".
	Output string `json:"output,omitempty"`
}

// AcceptsUnit reports whether unit is allowed by the profile.
func (p *Profile) AcceptsUnit(unit string) bool {
	if len(p.Units) == 0 {
		return true
	}
	for _, u := range p.Units {
		if u == unit {
			return true
		}
	}
	return false
}

// OutputFormat returns the configured output format, defaulting to text.
func (p *Profile) OutputFormat() string {
	if p.Output == "" {
		return OutputText
	}
	return p.Output
}

func (p *Profile) validate() error {
	for _, unit := range p.Units {
		if err := httprange.AssertRangeUnitFormat(unit); err != nil {
			return errors.Wrap(err, "invalid unit")
		}
	}

	switch p.Output {
	case "", OutputText, OutputJSON:
		return nil
	}
	return errors.New(fmt.Sprintf("unknown output format '%s'", p.Output))
}
