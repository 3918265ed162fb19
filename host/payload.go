package host

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Analysis is the audioAnalysis event body.
type Analysis struct {
	DryRMS        float64   `json:"dryRms"`
	WetRMS        float64   `json:"wetRms"`
	DryWidth      float64   `json:"dryWidth"`
	WetWidth      float64   `json:"wetWidth"`
	InputL        float64   `json:"inputL"`
	InputR        float64   `json:"inputR"`
	OutputL       float64   `json:"outputL"`
	OutputR       float64   `json:"outputR"`
	SpectralLow   float64   `json:"spectralLow"`
	SpectralMid   float64   `json:"spectralMid"`
	SpectralHigh  float64   `json:"spectralHigh"`
	SpectralBands []float64 `json:"spectralBands,omitempty"`
	HostBypass    bool      `json:"cppBypass,omitempty"`
}

type slider struct {
	ScaledValue *float64 `json:"scaledValue,omitempty"`
}

type toggle struct {
	Value *bool `json:"value,omitempty"`
}

// DecodeAnalysis parses an audioAnalysis payload.
func DecodeAnalysis(payload []byte) (Analysis, error) {
	var a Analysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return Analysis{}, errors.Wrap(err, "bad analysis payload")
	}
	return a, nil
}

// DecodeSlider parses a slider payload. ok is false when the payload carries
// no value.
func DecodeSlider(payload []byte) (value float64, ok bool, err error) {
	var s slider
	if err = json.Unmarshal(payload, &s); err != nil {
		return 0, false, errors.Wrap(err, "bad slider payload")
	}

	if s.ScaledValue == nil {
		return 0, false, nil
	}

	return *s.ScaledValue, true, nil
}

// DecodeToggle parses a toggle payload. ok is false when the payload carries
// no value.
func DecodeToggle(payload []byte) (value bool, ok bool, err error) {
	var tg toggle
	if err = json.Unmarshal(payload, &tg); err != nil {
		return false, false, errors.Wrap(err, "bad toggle payload")
	}

	if tg.Value == nil {
		return false, false, nil
	}

	return *tg.Value, true, nil
}

// EncodeAnalysis builds an audioAnalysis payload. Non-finite levels cannot
// be encoded and return an error.
func EncodeAnalysis(a Analysis) ([]byte, error) {
	b, err := json.Marshal(a)
	return b, errors.Wrap(err, "failed to encode analysis")
}

// EncodeSlider builds a slider payload. value must be finite, which clamped
// parameter values always are; a non-finite value yields a nil payload.
func EncodeSlider(value float64) []byte {
	b, _ := json.Marshal(slider{ScaledValue: &value})
	return b
}

// EncodeToggle builds a toggle payload. It cannot fail.
func EncodeToggle(value bool) []byte {
	b, _ := json.Marshal(toggle{Value: &value})
	return b
}
