package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosammostafait/AICareerAdvisor/config"
	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
)

func mockConfig(t *testing.T, key string) loadConfig {
	return func() (config.AppConfig, error) {
		return config.AppConfig{
			DBPath:       filepath.Join(t.TempDir(), "masar.db"),
			GeminiAPIKey: key,
			GeminiModel:  "mock",
			LLMProvider:  "mock",
			LogLevel:     "error",
		}, nil
	}
}

func run(load loadConfig, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(load)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, _, err := run(mockConfig(t, "dev-key"), "generate",
		"--profession", "معلم مدرسي", "--tasks", "تحضير الدروس", "--experience", "beginner", "--format", "json")
	require.NoError(t, err)

	var plan entities.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.NotEmpty(t, plan.Tools)
	require.NotEmpty(t, plan.Videos)
	assert.Equal(t, "https://www.youtube.com/@Ektebsa7", plan.Videos[0].URL)
	require.Len(t, plan.Articles, 1)
	assert.Equal(t, "https://www.ektebsa7.com/?cat=631", plan.Articles[0].URL)
}

func TestGenerateText(t *testing.T) {
	out, _, err := run(mockConfig(t, "dev-key"), "generate", "--profession", "محاسب", "--tasks", "التقارير")
	require.NoError(t, err)

	assert.Contains(t, out, "المسار الذكي")
	assert.Contains(t, out, "🛠️ أدوات مقترحة:")
	assert.Contains(t, out, "✅ خطوات العمل:")
}

func TestGenerateMissingCredential(t *testing.T) {
	_, errOut, err := run(mockConfig(t, ""), "generate", "--profession", "محاسب", "--tasks", "التقارير")

	assert.ErrorIs(t, err, service.ErrMissingCredential)
	assert.Contains(t, errOut, "API_KEY")
}

func TestGenerateBadFlags(t *testing.T) {
	tests := [][]string{
		{"generate", "--tasks", "t"},
		{"generate", "--profession", " ", "--tasks", "t"},
		{"generate", "--profession", "p", "--tasks", "t", "--experience", "expert"},
		{"generate", "--profession", "p", "--tasks", "t", "--format", "yaml"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			_, _, err := run(mockConfig(t, "dev-key"), args...)
			assert.Error(t, err)
		})
	}
}

func TestUnknownProvider(t *testing.T) {
	load := func() (config.AppConfig, error) {
		return config.AppConfig{DBPath: filepath.Join(t.TempDir(), "m.db"), LLMProvider: "openai", LogLevel: "error"}, nil
	}
	_, _, err := run(load, "generate", "--profession", "p", "--tasks", "t")
	assert.ErrorContains(t, err, "LLM_PROVIDER")
}
