package main

import (
	"github.com/spf13/cobra"

	"chartqa-viewer/internal/config"
	"chartqa-viewer/internal/dataset"
)

func newRootCommand() *cobra.Command {
	var datasetFlag string
	var configFlag string

	env := &commandEnv{dataset: &datasetFlag, config: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "dsctl",
		Short:         "Inspect a misleading chart QA dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&datasetFlag, "dataset", "d", ".", "Dataset directory (conventional layout)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "TOML config file overriding the dataset layout")

	rootCmd.AddCommand(newListCommand(env))
	rootCmd.AddCommand(newCheckCommand(env))
	rootCmd.AddCommand(newShowCommand(env))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// commandEnv resolves the shared flags into a catalog and resolver.
type commandEnv struct {
	dataset *string
	config  *string
}

func (e *commandEnv) resolveConfig() (config.Config, error) {
	if *e.config != "" {
		return config.Load(*e.config)
	}
	return config.Default(*e.dataset), nil
}

func (e *commandEnv) open() (dataset.Catalog, *dataset.Resolver, error) {
	cfg, err := e.resolveConfig()
	if err != nil {
		return dataset.Catalog{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return dataset.Catalog{}, nil, err
	}

	catalog, err := dataset.Scan(cfg.Dataset.FiguresDir)
	if err != nil {
		return dataset.Catalog{}, nil, err
	}

	resolver := dataset.NewResolver(dataset.Roots{
		Figures:     cfg.Dataset.FiguresDir,
		Screenshots: cfg.Dataset.ScreenshotsDir,
		Data:        cfg.Dataset.DataDir,
		QA:          cfg.Dataset.QADir,
	})
	return catalog, resolver, nil
}
