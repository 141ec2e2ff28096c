package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goaty-loaty/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is looked up in this order:
  --config <path>
  ~/.goaty/configs/goaty.yaml
  ./configs/goaty.yaml
  built-in defaults

Examples:
  goaty config
  goaty config --config ./my-goaty.yaml
  goaty config --defaults > ~/.goaty/configs/goaty.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
