package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, LLMProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.InDelta(t, 0.1, cfg.KPI.WeakSkillThreshold, 1e-9)
	assert.Equal(t, 0, cfg.KPI.NormalizerDefault)
	assert.Equal(t, 90*time.Second, cfg.Reports.RequestTimeout)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("LLM_PROVIDER", "Gemini")
	v.Set("KPI_WEAK_SKILL_THRESHOLD", 2.5)
	v.Set("LLM_TIMEOUT", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := fromViper(v)

	assert.Equal(t, LLMProviderGemini, cfg.LLM.Provider)
	assert.InDelta(t, 0.1, cfg.KPI.WeakSkillThreshold, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}
