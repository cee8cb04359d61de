// params.go - Trainings-Hyperparameter und Run-Name
// Hauptfunktionen: LoadParameters, TrainingParameters.RunName
package convert

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TrainingParameters - Auszug aus trainingparameters.yaml.
// Nur die Felder, aus denen der Run-Name gebildet wird.
type TrainingParameters struct {
	RunTag        string  `yaml:"runtag"`
	Scheduler     string  `yaml:"scheduler"`
	LearningRate  float64 `yaml:"learning_rate"`
	Augmentation  bool    `yaml:"augmentation"`
	WScale        string  `yaml:"WScale"`
	QuantType     string  `yaml:"QuantType"`
	NormType      string  `yaml:"NormType"`
	NetworkWidth1 int     `yaml:"network_width1"`
	NetworkWidth2 int     `yaml:"network_width2"`
	NetworkWidth3 int     `yaml:"network_width3"`
	BatchSize     int     `yaml:"batch_size"`
	NumEpochs     int     `yaml:"num_epochs"`
}

// LoadParameters liest die Hyperparameter-Datei
func LoadParameters(path string) (*TrainingParameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p TrainingParameters
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &p, nil
}

// RunName bildet den Namen des Trainingslaufs, unter dem der Checkpoint gespeichert wurde
func (p *TrainingParameters) RunName() string {
	var sb strings.Builder
	sb.WriteString(p.RunTag)
	sb.WriteString(p.Scheduler)
	sb.WriteString("_lr")
	sb.WriteString(pyFloat(p.LearningRate))
	if p.Augmentation {
		sb.WriteString("_Aug")
	}
	sb.WriteString("_BitMnist_")
	sb.WriteString(p.WScale)
	sb.WriteString("_")
	sb.WriteString(p.QuantType)
	sb.WriteString("_")
	sb.WriteString(p.NormType)
	fmt.Fprintf(&sb, "_width%d_%d_%d", p.NetworkWidth1, p.NetworkWidth2, p.NetworkWidth3)
	fmt.Fprintf(&sb, "_bs%d_epochs%d", p.BatchSize, p.NumEpochs)
	return sb.String()
}

// pyFloat formatiert wie Pythons str(float): kuerzeste Darstellung, immer mit Nachkommastelle
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
