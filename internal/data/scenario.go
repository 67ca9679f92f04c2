package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ActorTemplate describes one kind of actor a scenario spawns.
type ActorTemplate struct {
	Name       string `yaml:"name"`
	Count      int    `yaml:"count"` // instances to spawn, minimum 1
	Health     int    `yaml:"health"`
	PoisonRate int    `yaml:"poison_rate"` // 0 = not poisoned
}

type scenarioFile struct {
	Actors []ActorTemplate `yaml:"actors"`
}

// LoadScenario loads actor templates from a YAML scenario file.
func LoadScenario(path string) ([]ActorTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	for i := range f.Actors {
		if f.Actors[i].Count <= 0 {
			f.Actors[i].Count = 1
		}
	}
	return f.Actors, nil
}
