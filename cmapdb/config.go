package cmapdb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bioinf-mcb/deepfri-cmap/structure"
)

// FormatVersion is written into every database config. It guards against
// opening databases written by an incompatible layout.
const FormatVersion = 1

// DefaultThreshold is the contact distance threshold, in angstroms, used
// when a caller does not supply one.
const DefaultThreshold = 6.0

// Config describes how a database's atom files are turned into contact maps.
// It is written once at creation time to the config.json sidecar.
type Config struct {
	FormatVersion  int
	Threshold      float64
	Representative string
}

// DefaultConfig returns the configuration used when Create is given a zero
// Config: 6.0 angstrom threshold, first-atom representatives.
func DefaultConfig() Config {
	return Config{
		FormatVersion:  FormatVersion,
		Threshold:      DefaultThreshold,
		Representative: structure.RepFirstAtom.String(),
	}
}

// policy resolves the configured representative policy name.
func (conf Config) policy() (structure.RepresentativePolicy, error) {
	return structure.ParsePolicy(conf.Representative)
}

func openConfig(p string) (conf Config, err error) {
	f, err := os.Open(p)
	if err != nil {
		return conf,
			fmt.Errorf("cmapdb: opening the config file '%s': %w", p, err)
	}

	decoder := json.NewDecoder(f)
	if err = decoder.Decode(&conf); err != nil {
		f.Close()
		return conf,
			fmt.Errorf("cmapdb: decoding JSON in '%s': %w", p, err)
	}
	if err = f.Close(); err != nil {
		return
	}
	if conf.FormatVersion != FormatVersion {
		return conf, fmt.Errorf("cmapdb: '%s' has format version %d; this "+
			"package reads version %d", p, conf.FormatVersion, FormatVersion)
	}
	if _, err = conf.policy(); err != nil {
		return conf, err
	}
	return conf, nil
}

func (conf Config) write(p string) (err error) {
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("cmapdb: creating the config file '%s': %w", p, err)
	}

	encoder := json.NewEncoder(f)
	if err = encoder.Encode(conf); err != nil {
		f.Close()
		return
	}
	return f.Close()
}
