package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptdeck/internal/config"
	"promptdeck/internal/corpus"
	"promptdeck/internal/query"
	"promptdeck/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadEnvironment()
	if err != nil {
		return err
	}

	category := flagCategory
	if category == "" {
		category = cfg.StartCategory()
	}
	category = resolveCategory(query.New(store).Taxonomy(), category)

	return tui.Run(tui.RunOpts{
		Cfg:      cfg,
		Store:    store,
		Category: category,
		Search:   flagSearch,
	})
}

// loadEnvironment loads config and the corpus it points at. The --corpus flag
// wins over the config value; empty means the built-in corpus.
func loadEnvironment() (*config.Config, *corpus.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	source := flagCorpus
	if source == "" {
		source = cfg.Corpus
	}

	store, err := corpus.Load(source)
	if err != nil {
		return nil, nil, fmt.Errorf("loading corpus: %w", err)
	}
	return cfg, store, nil
}
