// Licensed under the MIT license. See license text in the LICENSE file.

// Command ternsim demonstrates the balanced-ternary circuit library: it
// builds small circuits out of gates and wires and drives them from the
// command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ternsim/ternsim"
)

// config holds the simulation settings read from the optional YAML config
// file.
type config struct {
	// Gate propagation delay, e.g. "10ms". Empty disables delayed mode.
	Delay string `yaml:"delay"`
	// Log warnings and per-step detail.
	Verbose bool `yaml:"verbose"`

	delay time.Duration
}

var (
	cfgFile string
	cfg     config
)

func loadConfig() error {
	if cfgFile != "" {
		b, err := os.ReadFile(cfgFile)
		if err != nil {
			return errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return errors.Wrap(err, "parse config")
		}
	}
	if cfg.Delay != "" {
		d, err := time.ParseDuration(cfg.Delay)
		if err != nil {
			return errors.Wrap(err, "parse delay")
		}
		cfg.delay = d
	}
	if !cfg.Verbose {
		// drop the wire-contention and role warnings unless asked for
		ternsim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	}
	return nil
}

// gateOptions returns the construction options implied by the config, plus
// the scheduler to advance when delayed mode is on.
func gateOptions() ([]ternsim.Option, *ternsim.Scheduler) {
	if cfg.delay <= 0 {
		return nil, nil
	}
	s := ternsim.NewScheduler()
	return []ternsim.Option{ternsim.WithDelay(cfg.delay, s)}, s
}

// settle runs pending delayed writes, if any, until the circuit is idle.
func settle(s *ternsim.Scheduler) error {
	if s == nil {
		return nil
	}
	for s.Pending() > 0 {
		if _, err := s.RunNext(); err != nil {
			return err
		}
	}
	return nil
}

func adderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adder",
		Short: "Drive a one-trit adder through all nine input pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, sched := gateOptions()
			gate := ternsim.NewSum(opts...)

			a := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
			b := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
			sum := ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)
			over := ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)

			wa, wb, ws, wo := ternsim.NewWire(), ternsim.NewWire(), ternsim.NewWire(), ternsim.NewWire()
			for _, err := range []error{
				wa.Connect(a), wb.Connect(b), ws.Connect(sum), wo.Connect(over),
				gate.SetInputWire1(wa), gate.SetInputWire2(wb),
				gate.SetOutputWire(ws), gate.SetOverflowWire(wo),
			} {
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "  a   b  | sum over")
			for _, va := range []ternsim.Trit{ternsim.Minus, ternsim.Neutral, ternsim.Plus} {
				for _, vb := range []ternsim.Trit{ternsim.Minus, ternsim.Neutral, ternsim.Plus} {
					if err := a.SetFromWrite(va); err != nil {
						return err
					}
					if err := b.SetFromWrite(vb); err != nil {
						return err
					}
					if err := settle(sched); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), " %s %s | %s %s\n", va, vb, sum.Value(), over.Value())
				}
			}
			return nil
		},
	}
}

func tryteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tryte",
		Short: "Latch a nine-trit word into a register, freeze it, then negate it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, sched := gateOptions()
			reg := ternsim.NewTryte(opts...)

			var (
				writers [ternsim.TryteSize]*ternsim.ConnectionPoint
				readers [ternsim.TryteSize]*ternsim.ConnectionPoint
				ins     []*ternsim.Wire
				outs    []*ternsim.Wire
			)
			for i := 0; i < ternsim.TryteSize; i++ {
				writers[i] = ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
				readers[i] = ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)
				wi, wo := ternsim.NewWire(), ternsim.NewWire()
				if err := wi.Connect(writers[i]); err != nil {
					return err
				}
				if err := wo.Connect(readers[i]); err != nil {
					return err
				}
				ins = append(ins, wi)
				outs = append(outs, wo)
			}
			ctl := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
			wc := ternsim.NewWire()
			if err := wc.Connect(ctl); err != nil {
				return err
			}
			if err := reg.SetInputWires(ins); err != nil {
				return err
			}
			if err := reg.SetOutputWires(outs); err != nil {
				return err
			}
			if err := reg.SetReadWire(wc); err != nil {
				return err
			}

			word := [ternsim.TryteSize]ternsim.Trit{
				ternsim.Plus, ternsim.Minus, ternsim.Neutral,
				ternsim.Plus, ternsim.Plus, ternsim.Minus,
				ternsim.Neutral, ternsim.Minus, ternsim.Plus,
			}
			show := func(label string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s", label)
				for _, r := range readers {
					fmt.Fprint(cmd.OutOrStdout(), r.Value())
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			for i, w := range writers {
				if err := w.SetFromWrite(word[i]); err != nil {
					return err
				}
			}
			steps := []struct {
				label string
				ctl   ternsim.Trit
			}{
				{"latched (ctl=+):", ternsim.Plus},
				{"frozen (ctl=0):", ternsim.Neutral},
				{"negated (ctl=-):", ternsim.Minus},
			}
			for _, st := range steps {
				if err := ctl.SetFromWrite(st.ctl); err != nil {
					return err
				}
				if err := settle(sched); err != nil {
					return err
				}
				show(st.label)
			}
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:           "ternsim",
		Short:         "Balanced-ternary logic circuit demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (delay, verbose)")
	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "log non-fatal warnings")
	root.AddCommand(adderCmd(), tryteCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ternsim:", err)
		os.Exit(1)
	}
}
