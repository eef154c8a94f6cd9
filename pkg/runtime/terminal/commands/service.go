package commands

import (
	"github.com/de-tools/retail-atlas/pkg/services/config"
	"github.com/de-tools/retail-atlas/pkg/services/dataset"
	"github.com/de-tools/retail-atlas/pkg/services/summary"
)

// buildService wires the loader, cache and aggregator from the shared command
// flags. Flag values take precedence over the config file.
func buildService(configPath, dataPath string, topN int) (summary.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if dataPath == "" {
		dataPath = cfg.DataPath
	}
	if topN <= 0 {
		topN = cfg.TopCustomers
	}

	loader := dataset.NewLoader()
	if dataPath != "" {
		loader = dataset.NewLoaderWithPath(dataPath)
	}

	return summary.NewService(dataset.NewCache(loader), topN), nil
}
