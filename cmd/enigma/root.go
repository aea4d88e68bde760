package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/enigma"
	"github.com/706f6c6c7578/enigma/internal/stream"
)

const version = "0.2.0"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "enigma [CONFIG] [INPUT [OUTPUT]]",
		Short: "Encrypt and decrypt messages with a rotor cipher machine",
		Long: `Configure a rotor machine from CONFIG (or a built-in --preset) and run the
messages read from INPUT (default stdin) through it, writing the result to
OUTPUT (default stdout) in groups of five letters.

The input starts with a setup line:

  * B Beta III IV I AXLE [RINGS] [(HQ) (EX) (IP) (TR) (BY)]

naming the reflector and rotors leftmost first, the initial setting of every
rotor but the reflector, an optional ring setting and optional plugboard
cycles. Every later setup line reconfigures the machine.

Configuration files ending in .yaml or .yml are read as YAML; anything else
uses the classic text format. Flags can also be set through ENIGMA_PRESET,
ENIGMA_GROUP and ENIGMA_VERBOSE.`,
		Args: cobra.RangeArgs(0, 3),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), v.GetBool("verbose"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMachine(cmd, v, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.Flags().StringP("preset", "p", "", "use a built-in machine instead of a configuration file")
	cmd.Flags().IntP("group", "g", stream.DefaultGroupSize, "output group width (0 disables grouping)")

	v.SetEnvPrefix("ENIGMA")
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.PersistentFlags())
	_ = v.BindPFlags(cmd.Flags())

	cmd.AddCommand(newPresetsCmd(), newVersionCmd())
	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

func runMachine(cmd *cobra.Command, v *viper.Viper, args []string) (err error) {
	var desc *config.Description
	if preset := v.GetString("preset"); preset != "" {
		desc, err = config.Preset(preset)
		if err != nil {
			return err
		}
		slog.Debug("using preset", "name", preset)
	} else {
		if len(args) == 0 {
			return enigma.Errorf(enigma.KindConfig, "a configuration file or --preset is required")
		}
		desc, err = config.Load(args[0])
		if err != nil {
			return err
		}
		slog.Debug("loaded configuration", "path", args[0])
		args = args[1:]
	}
	if len(args) > 2 {
		return enigma.Errorf(enigma.KindConfig, "only an input and an output file may follow the configuration")
	}

	machine, err := desc.Build()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return enigma.Wrapf(enigma.KindConfig, err, "could not open %s", args[0])
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	out := cmd.OutOrStdout()
	if len(args) > 1 {
		f, cerr := os.Create(args[1])
		if cerr != nil {
			return enigma.Wrapf(enigma.KindConfig, cerr, "could not create %s", args[1])
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = enigma.Wrapf(enigma.KindConfig, cerr, "could not close %s", args[1])
			}
		}()
		out = f
	}

	p := stream.NewProcessor(machine,
		stream.WithLogger(slog.Default()),
		stream.WithGroupSize(v.GetInt("group")))
	return p.Run(in, out)
}
