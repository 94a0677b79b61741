// Package cli implements the specmix command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-specmix/internal/config"
)

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"weights":    "mix.weights",
	"components": "mix.components",
	"crop":       "mix.crop",
	"rect":       "mix.rect",
	"resize":     "mix.resize",
	"clip-min":   "mix.clip_min",
	"clip-max":   "mix.clip_max",
	"timeout":    "mix.timeout",
	"output":     "output.path",
	"stretch":    "output.stretch",
}

type app struct {
	configFile string
	v          *viper.Viper
	logger     *zap.Logger
	stdout     io.Writer
	stderr     io.Writer
}

// NewRootCommand builds the specmix command tree.
func NewRootCommand() *cobra.Command {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "specmix",
		Short: "Mix images in the frequency domain",
		Long: `specmix reconstructs one image from weighted Fourier components of four
source images. All four selections come from one family: magnitude and phase,
or real and imaginary. An optional rectangle keeps (inner) or removes (outer)
a region of the spectrum.

Settings are read from specmix.yaml, SPECMIX_* environment variables and flags,
with flags taking precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"config file (default is ./specmix.yaml or $XDG_CONFIG_HOME/specmix/specmix.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newMixCommand(a), newInspectCommand(a), newConfigCommand(a))
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	a.v = v

	logger, err := newLogger(v.GetString("log_level"), a.stderr)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// bindFlags binds every flag of cmd to its config key.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
		env := config.EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
		if err := v.BindEnv(key, env); err != nil {
			lastErr = err
		}
	})
	return lastErr
}

func (a *app) load() (*config.Config, error) {
	return config.Load(a.v)
}
