// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package diagram

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

// Style controls colors and layout hints of the generated diagram. Empty
// fields are taken from DefaultStyle.
type Style struct {
	SpineColor      string `json:"spineColor,omitempty" validate:"required"`
	SwitchColor     string `json:"switchColor,omitempty" validate:"required"`
	HCAColor        string `json:"hcaColor,omitempty" validate:"required"`
	SwitchLinkColor string `json:"switchLinkColor,omitempty" validate:"required"`
	ArrowHead       string `json:"arrowHead,omitempty" validate:"oneof=normal inv dot odot none empty open vee tee diamond box"`
	RankDir         string `json:"rankDir,omitempty" validate:"oneof=TB LR BT RL"`
	FontName        string `json:"fontName,omitempty" validate:"required"`
}

var DefaultStyle = Style{
	SpineColor:      "orange",
	SwitchColor:     "cyan",
	HCAColor:        "grey",
	SwitchLinkColor: "black",
	ArrowHead:       "normal",
	RankDir:         "TB",
	FontName:        "Arial",
}

var styleValidate = validator.New()

// LoadStyle reads a style file, fills in the defaults and validates the
// result. An empty path returns DefaultStyle.
func LoadStyle(path string) (Style, error) {
	style := Style{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Style{}, fmt.Errorf("reading style: %w", err)
		}

		if err := yaml.UnmarshalStrict(data, &style); err != nil {
			return Style{}, fmt.Errorf("unmarshaling style: %w", err)
		}
	}

	if err := mergo.Merge(&style, DefaultStyle); err != nil {
		return Style{}, fmt.Errorf("merging style defaults: %w", err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, err
	}

	return style, nil
}

func (s Style) Validate() error {
	if err := styleValidate.Struct(s); err != nil {
		return fmt.Errorf("validating style: %w", err)
	}

	return nil
}

func (s Style) tierColor(tier Tier) string {
	switch tier {
	case TierSpine:
		return s.SpineColor
	case TierSwitch:
		return s.SwitchColor
	default:
		return s.HCAColor
	}
}
