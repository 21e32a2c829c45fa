package network

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRoutesFile reads a yaml route list, for seeding a Registry.
func LoadRoutesFile(fileName string) (routes []Route, err error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &routes)

	return
}

func SaveRoutesFile(fileName string, routes []Route) (err error) {
	d, err := yaml.Marshal(routes)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}
