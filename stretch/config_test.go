package stretch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_MatchesExtractionSettings(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		StrainThreshold: 0.003,
		RatioLimit:      0.5,
		Mode:            SearchBisect,
	}
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestConfigValidate_RejectsBadValues(t *testing.T) {
	cases := []Config{
		{StrainThreshold: 0.003, RatioLimit: 0, Mode: SearchBisect},
		{StrainThreshold: 0.003, RatioLimit: 1, Mode: SearchBisect},
		{StrainThreshold: 0.003, RatioLimit: -0.2, Mode: SearchBisect},
		{StrainThreshold: 0.003, RatioLimit: 0.5, Mode: "newton"},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected %+v to fail validation", cfg)
		}
	}
}

func TestConfigValidate_EmptyModeDefaultsToBisect(t *testing.T) {
	cfg := Config{StrainThreshold: 0.003, RatioLimit: 0.5}
	assert.NoError(t, cfg.Validate())
}
