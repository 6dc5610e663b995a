package cmd

import "github.com/spf13/cobra"

var (
	cfgPath   string
	tasksPath string
	output    string
)

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Contextual daily schedule optimizer",
	RunE:  runPlan,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringVarP(&tasksPath, "tasks", "t", "tasks.yaml", "task definition file")
	rootCmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or csv")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
