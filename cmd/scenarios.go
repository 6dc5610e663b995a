package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/infra/logger"
	"github.com/kilianp07/dayplan/qa/scenarios"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [dir]",
	Short: "Run declarative planning scenarios and report pass/fail",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	dir := "qa/scenarios"
	if len(args) == 1 {
		dir = args[0]
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scenario files in %s", dir)
	}

	logg := logger.New("scenarios")
	failed := 0
	for _, f := range files {
		sc, err := scenarios.Load(f)
		if err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
		failures, err := scenarios.Check(sc)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if len(failures) == 0 {
			logg.Infof("PASS %s", sc.Name)
			continue
		}
		failed++
		for _, msg := range failures {
			logg.Errorf("FAIL %s: %s", sc.Name, msg)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(files))
	}
	logg.Infof("%d scenarios passed", len(files))
	return nil
}
