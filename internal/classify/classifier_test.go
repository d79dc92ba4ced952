package classify

import (
	"context"
	"strings"
	"testing"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastModelConfig trains quickly and deterministically: no dropout, a small
// hidden layer and a fixed seed.
func fastModelConfig() ModelConfig {
	return ModelConfig{
		HiddenUnits:  16,
		Epochs:       30,
		BatchSize:    4,
		DropoutRate:  0,
		LearningRate: 0.01,
		Seed:         42,
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	c := New(ModelConfig{}, logging.NewMockLogger())

	defaults := DefaultModelConfig()
	assert.Equal(t, defaults.HiddenUnits, c.cfg.HiddenUnits)
	assert.Equal(t, defaults.Epochs, c.cfg.Epochs)
	assert.Equal(t, defaults.BatchSize, c.cfg.BatchSize)
	assert.Equal(t, defaults.DropoutRate, c.cfg.DropoutRate)
	assert.Equal(t, defaults.LearningRate, c.cfg.LearningRate)
	assert.NotZero(t, c.cfg.Seed)
	assert.NotNil(t, c.vocab)
}

func TestNewRejectsInvalidDropout(t *testing.T) {
	c := New(ModelConfig{DropoutRate: 1.5}, logging.NewMockLogger())
	assert.Equal(t, DefaultModelConfig().DropoutRate, c.cfg.DropoutRate)
}

func TestNewNilLogger(t *testing.T) {
	c := New(fastModelConfig(), nil)
	require.NotNil(t, c)
	assert.NotNil(t, c.logger)
}

func TestPredict(t *testing.T) {
	c := New(fastModelConfig(), logging.NewMockLogger())

	tests := []struct {
		description string
		expected    string
	}{
		{"", models.CategoryOther},
		{"coffee and lunch", models.CategoryFoodBeverage},
		{"uber ride", models.CategoryTransportation},
		{"paid rent this month", models.CategoryHousing},
		{"xyzxyz qqqq", models.CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Predict(tt.description), "description %q", tt.description)
	}
}

func TestPredictWithModelIsTotal(t *testing.T) {
	c := New(fastModelConfig(), logging.NewMockLogger())
	ctx := context.Background()

	inputs := []string{
		"",
		"   ",
		"coffee",
		"uber ride to the airport",
		"☕🍩 morning treat",
		strings.Repeat("very long description ", 200),
		"xyzxyz qqqq",
	}

	for _, input := range inputs {
		prediction := c.PredictWithModel(ctx, input)
		assert.True(t, models.IsValidCategory(prediction.Category),
			"input %q produced unknown category %q", input, prediction.Category)
		assert.Contains(t, []Source{SourceRuleBased, SourceModel}, prediction.Source)
	}
}

func TestPredictWithModelTrainsOnce(t *testing.T) {
	logger := logging.NewMockLogger()
	c := New(fastModelConfig(), logger)
	ctx := context.Background()

	c.PredictWithModel(ctx, "coffee")
	c.PredictWithModel(ctx, "uber ride")
	c.PredictWithModel(ctx, "rent")

	trained := 0
	for _, entry := range logger.Entries() {
		if entry.Message == "Model trained" {
			trained++
		}
	}
	assert.Equal(t, 1, trained, "training should run exactly once")

	c.mu.Lock()
	assert.NotNil(t, c.net)
	c.mu.Unlock()
}

func TestPredictWithModelCancelledContext(t *testing.T) {
	c := New(fastModelConfig(), logging.NewMockLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prediction := c.PredictWithModel(ctx, "coffee and lunch")
	assert.Equal(t, SourceRuleBased, prediction.Source)
	assert.Equal(t, models.CategoryFoodBeverage, prediction.Category)

	// A cancelled call must not have trained the model.
	c.mu.Lock()
	assert.Nil(t, c.net)
	c.mu.Unlock()
}

func TestPredictWithModelConcurrent(t *testing.T) {
	c := New(fastModelConfig(), logging.NewMockLogger())
	ctx := context.Background()

	done := make(chan Prediction, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- c.PredictWithModel(ctx, "netflix subscription")
		}()
	}

	for i := 0; i < 8; i++ {
		prediction := <-done
		assert.True(t, models.IsValidCategory(prediction.Category))
	}
}

func TestRecordCorrection(t *testing.T) {
	logger := logging.NewMockLogger()
	c := New(fastModelConfig(), logger)

	c.RecordCorrection("weekly groceries", models.CategoryFoodBeverage)

	require.True(t, logger.HasMessage("User correction recorded"))

	// Corrections must not mutate classifier state.
	c.mu.Lock()
	assert.Nil(t, c.net)
	c.mu.Unlock()
	assert.Equal(t, models.CategoryOther, c.Predict("weekly groceries"))
}
