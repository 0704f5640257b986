package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the models directory.
const (
	forestFile       = "forest.json"
	scalerFile       = "scaler.json"
	featureNamesFile = "feature_names.json"
)

// Bundle holds the optional trained artifacts: a decision forest, a fitted
// scaler, and the ordered feature names the forest was trained on. All
// three are nil-able; an empty bundle means rule-based scoring. Bundles
// are loaded once at startup and read-only afterwards.
type Bundle struct {
	Forest       *Forest
	Scaler       *Scaler
	FeatureNames []string
}

// HasForest reports whether a usable classifier was loaded.
func (b *Bundle) HasForest() bool {
	return b != nil && b.Forest != nil
}

// Load reads whatever artifacts exist under dir. Missing files are normal
// (rule-based mode); present-but-unreadable artifacts are skipped and
// reported as warnings. Load never fails.
func Load(dir string) (*Bundle, []string) {
	b := &Bundle{}
	var warnings []string

	var forest Forest
	switch err := loadJSON(filepath.Join(dir, forestFile), &forest); {
	case err == nil:
		if verr := forest.Validate(); verr != nil {
			warnings = append(warnings, fmt.Sprintf("classifier model rejected: %v", verr))
		} else {
			b.Forest = &forest
		}
	case !os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("loading classifier model: %v", err))
	}

	var scaler Scaler
	switch err := loadJSON(filepath.Join(dir, scalerFile), &scaler); {
	case err == nil:
		b.Scaler = &scaler
	case !os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("loading feature scaler: %v", err))
	}

	var names []string
	switch err := loadJSON(filepath.Join(dir, featureNamesFile), &names); {
	case err == nil:
		b.FeatureNames = names
	case !os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("loading feature names: %v", err))
	}

	return b, warnings
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
