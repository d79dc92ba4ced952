// Package container provides dependency injection for the spendtrack
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"spendtrack/internal/assistant"
	"spendtrack/internal/classify"
	"spendtrack/internal/config"
	"spendtrack/internal/ledger"
	"spendtrack/internal/logging"
	"spendtrack/internal/receipt"
	"spendtrack/internal/report"
)

// Container holds all application dependencies and provides methods to access
// them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods. This prevents accidental modification
// of dependencies after initialization.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	classifier *classify.Classifier
	reporter   *report.Generator
	assistant  *assistant.Assistant
	ocrClient  *receipt.OCRClient
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	classifier := classify.New(classify.ModelConfig{
		HiddenUnits:  cfg.Model.HiddenUnits,
		Epochs:       cfg.Model.Epochs,
		BatchSize:    cfg.Model.BatchSize,
		DropoutRate:  cfg.Model.DropoutRate,
		LearningRate: cfg.Model.LearningRate,
	}, logger)

	if len(cfg.CSV.Delimiter) == 1 {
		ledger.SetDelimiter(rune(cfg.CSV.Delimiter[0]))
	}

	ocrClient := receipt.NewOCRClient(
		cfg.OCR.Endpoint,
		cfg.OCR.APIKey,
		time.Duration(cfg.OCR.TimeoutSeconds)*time.Second,
		logger,
	)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "model_epochs", Value: cfg.Model.Epochs},
		logging.Field{Key: "ocr_configured", Value: cfg.OCR.APIKey != ""})

	return &Container{
		logger:     logger,
		config:     cfg,
		classifier: classifier,
		reporter:   report.NewGenerator(logger),
		assistant:  assistant.New(logger),
		ocrClient:  ocrClient,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetClassifier returns the container's classifier instance.
func (c *Container) GetClassifier() *classify.Classifier {
	return c.classifier
}

// GetReporter returns the container's report generator instance.
func (c *Container) GetReporter() *report.Generator {
	return c.reporter
}

// GetAssistant returns the container's assistant instance.
func (c *Container) GetAssistant() *assistant.Assistant {
	return c.assistant
}

// GetOCRClient returns the container's OCR client instance.
func (c *Container) GetOCRClient() *receipt.OCRClient {
	return c.ocrClient
}

// NewPipeline builds a categorization pipeline around the container's
// classifier. Each call returns a fresh pipeline so the model flag can vary
// per invocation.
func (c *Container) NewPipeline(useModel bool) *ledger.Pipeline {
	return ledger.NewPipeline(c.classifier, c.logger, useModel)
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	// This method is provided for future extensibility
	c.logger.Info("Container closed")
	return nil
}
