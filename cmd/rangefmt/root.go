package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/menmos/httprange-go/config"
)

// errInvalidInput is returned once every input has been reported, when at
// least one of them was rejected.
var errInvalidInput = errors.New("one or more inputs are invalid")

type app struct {
	v       *viper.Viper
	logger  *log.Logger
	profile *config.Profile
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "rangefmt",
		Short:         "Parse, check and format HTTP Range header values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("profile", "p", config.DefaultProfileName, "configuration profile")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: text or json (overrides the profile)")
	rootCmd.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/httprange/rangefmt.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = a.v.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = a.v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = a.v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	a.v.SetEnvPrefix("RANGEFMT")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newFormatCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "rangefmt",
	})
	if a.v.GetBool("verbose") {
		a.logger.SetLevel(log.DebugLevel)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	profile, err := cfg.Profile(a.v.GetString("profile"))
	if err != nil {
		return err
	}

	switch output := a.v.GetString("output"); output {
	case "":
	case config.OutputText, config.OutputJSON:
		profile.Output = output
	default:
		return errors.Errorf("unknown output format '%s'", output)
	}

	a.logger.Debug("profile selected", "name", a.v.GetString("profile"), "units", profile.Units, "output", profile.OutputFormat())
	a.profile = profile
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if path := a.v.GetString("config"); path != "" {
		a.logger.Debug("loading config", "path", path)
		return config.Load(path)
	}
	return config.LoadDefault()
}

// inputs returns the header values given as arguments, or one per non-blank
// line of stdin when there are none.
func inputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var values []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			values = append(values, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return values, nil
}
