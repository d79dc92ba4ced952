package classify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spendtrack/internal/logging"
)

// Source identifies which classification path produced a category.
type Source string

const (
	// SourceRuleBased marks a category produced by the keyword scan.
	SourceRuleBased Source = "rule-based"
	// SourceModel marks a category produced by the trained network.
	SourceModel Source = "model"
)

// Prediction is a categorization result together with its provenance.
type Prediction struct {
	Category string
	Source   Source
}

// ModelConfig holds the tunable hyperparameters of the trainable classifier.
// Zero values fall back to the defaults the network was originally tuned with.
type ModelConfig struct {
	HiddenUnits  int
	Epochs       int
	BatchSize    int
	DropoutRate  float64
	LearningRate float64
	Seed         int64 // 0 seeds from the wall clock
}

// DefaultModelConfig returns the stock hyperparameters: a 128-unit hidden
// layer with 0.5 dropout, trained for 50 epochs in batches of 4 with Adam.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		HiddenUnits:  128,
		Epochs:       50,
		BatchSize:    4,
		DropoutRate:  0.5,
		LearningRate: 0.001,
	}
}

// Classifier categorizes expense descriptions. It owns the vocabulary, the
// category index and the trained network as private state, built exactly once;
// create one instance at process start and share it. The rule-based path is
// pure and lock-free; the model path trains lazily behind a mutex so that
// concurrent first callers wait for a single training run.
type Classifier struct {
	cfg    ModelConfig
	vocab  *vocabulary
	logger logging.Logger

	mu  sync.Mutex
	net *network
}

// New creates a Classifier. The vocabulary and category index are built
// immediately and are immutable afterwards; the network is not trained until
// the first model prediction.
func New(cfg ModelConfig, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}

	defaults := DefaultModelConfig()
	if cfg.HiddenUnits <= 0 {
		cfg.HiddenUnits = defaults.HiddenUnits
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = defaults.Epochs
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = defaults.LearningRate
	}
	if cfg.DropoutRate < 0 || cfg.DropoutRate >= 1 {
		cfg.DropoutRate = defaults.DropoutRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Classifier{
		cfg:    cfg,
		vocab:  buildVocabulary(),
		logger: logger,
	}
}

// Predict returns the rule-based category for a description. It is pure,
// synchronous and fast enough to run on every keystroke; unmatched
// descriptions yield "Other".
func (c *Classifier) Predict(description string) string {
	return classifyByRules(description)
}

// PredictWithModel returns the trained network's category for a description.
// The first call trains the network on the built-in corpus and may take a
// noticeable moment; later calls reuse the weights. Any failure (training
// error, missing model, unmapped output index) degrades to the rule-based
// result for this call only, so the function is total.
func (c *Classifier) PredictWithModel(ctx context.Context, description string) Prediction {
	if err := ctx.Err(); err != nil {
		c.logger.WithError(err).Debug("Context done, using rule-based categorization")
		return Prediction{Category: c.Predict(description), Source: SourceRuleBased}
	}

	if err := c.ensureTrained(); err != nil {
		c.logger.WithError(err).Warn("Model training failed, falling back to rule-based categorization")
		return Prediction{Category: c.Predict(description), Source: SourceRuleBased}
	}

	category, ok := c.predictWithNetwork(description)
	if !ok {
		return Prediction{Category: c.Predict(description), Source: SourceRuleBased}
	}
	return Prediction{Category: category, Source: SourceModel}
}

// RecordCorrection logs a user override of a predicted category. This is an
// extension point: corrections are not persisted and do not trigger
// retraining.
func (c *Classifier) RecordCorrection(description, category string) {
	c.logger.Info("User correction recorded",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: category},
	)
}

// ensureTrained trains the network on first use. A failed run leaves the
// classifier untrained so the next call retries from scratch.
func (c *Classifier) ensureTrained() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.net != nil {
		return nil
	}

	features := make([][]float64, len(trainingCorpus))
	labels := make([]int, len(trainingCorpus))
	for i, example := range trainingCorpus {
		features[i] = c.vocab.encode(example.Text)
		id, ok := c.vocab.categoryIDFor(example.Category)
		if !ok {
			return fmt.Errorf("corpus category %q missing from category index", example.Category)
		}
		labels[i] = id
	}

	cfg := networkConfig{
		inputDim:     c.vocab.size() + 1,
		hiddenUnits:  c.cfg.HiddenUnits,
		outputDim:    len(c.vocab.categoryByID),
		epochs:       c.cfg.Epochs,
		batchSize:    c.cfg.BatchSize,
		dropoutRate:  c.cfg.DropoutRate,
		learningRate: c.cfg.LearningRate,
		seed:         c.cfg.Seed,
	}

	start := time.Now()
	net, finalLoss, err := trainNetwork(cfg, features, labels)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	c.net = net
	c.logger.Info("Model trained",
		logging.Field{Key: logging.FieldEpochs, Value: cfg.epochs},
		logging.Field{Key: logging.FieldLoss, Value: finalLoss},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	)
	return nil
}

// predictWithNetwork runs a forward pass. Panics from a corrupt model are
// absorbed so a bad prediction degrades the single call, not the process or
// the model's availability for future calls.
func (c *Classifier) predictWithNetwork(description string) (category string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Model prediction panicked",
				logging.Field{Key: logging.FieldError, Value: r},
			)
			category, ok = "", false
		}
	}()

	c.mu.Lock()
	net := c.net
	c.mu.Unlock()
	if net == nil {
		return "", false
	}

	id, err := net.predict(c.vocab.encode(description))
	if err != nil {
		c.logger.WithError(err).Error("Model prediction failed")
		return "", false
	}

	name, found := c.vocab.categoryName(id)
	if !found {
		c.logger.Warn("Predicted index has no category mapping",
			logging.Field{Key: "index", Value: id},
		)
		return "", false
	}
	return name, true
}
