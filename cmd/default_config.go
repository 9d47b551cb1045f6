package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cascade-sim/cascade-sim/sim"
)

// writeParameters renders spec as a parameter file that `run --params` accepts.
func writeParameters(w io.Writer, spec sim.ParameterSpec) error {
	data, err := sim.MarshalParameterSpec(spec)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

var checkParamsPath string

// defaultsCmd prints the built-in parameters, or validates a parameter file.
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in parameter file",
	Long:  "Print the built-in parameters as YAML for editing. With --check, validate a parameter file instead and print it back normalized.",
	Run: func(cmd *cobra.Command, args []string) {
		spec := sim.DefaultParameterSpec()
		if checkParamsPath != "" {
			p, err := sim.LoadParameters(checkParamsPath)
			if err != nil {
				logrus.Fatalf("Invalid parameter file %s: %v", checkParamsPath, err)
			}
			spec = p.Spec()
		}
		if err := writeParameters(os.Stdout, spec); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	defaultsCmd.Flags().StringVar(&checkParamsPath, "check", "", "Validate this parameter file")
	rootCmd.AddCommand(defaultsCmd)
}
