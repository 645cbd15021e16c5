package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/NewsGuard/internal/domain/service"
	"github.com/ressKim-io/NewsGuard/internal/domain/ui"
)

// Display texts shown by the prediction form
const (
	EmptyInputMessage      = "Please enter some text."
	ConnectionErrorMessage = "Error: Unable to connect to the server."
	NoPredictionMessage    = "Error: No prediction returned."
	PredictionPrefix       = "Prediction: "
	ErrorPrefix            = "Error: "
)

// Outcome identifies how a single form interaction ended
type Outcome string

// Outcome values
const (
	OutcomeValidation     Outcome = "validation"
	OutcomePrediction     Outcome = "prediction"
	OutcomeServiceError   Outcome = "service_error"
	OutcomeEmptyResults   Outcome = "empty_results"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeSuperseded     Outcome = "superseded"
)

// OutcomeRecorder receives the outcome of every interaction
type OutcomeRecorder interface {
	Record(outcome Outcome, elapsed time.Duration)
}

// FormController reads the text input, asks the predictor for a label and
// writes the result into the display.
//
// Every submission takes a new generation. Only the latest generation may
// write the display once its prediction call returns.
type FormController struct {
	predictor service.Predictor
	input     ui.TextInput
	display   ui.Display
	logger    *zap.Logger
	recorder  OutcomeRecorder

	mu         sync.Mutex
	generation atomic.Uint64
	inflight   sync.WaitGroup
}

// NewFormController creates a new FormController
func NewFormController(predictor service.Predictor, input ui.TextInput, display ui.Display, logger *zap.Logger) *FormController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormController{
		predictor: predictor,
		input:     input,
		display:   display,
		logger:    logger,
	}
}

// WithRecorder sets the recorder notified of every outcome
func (c *FormController) WithRecorder(recorder OutcomeRecorder) *FormController {
	c.recorder = recorder
	return c
}

// Bind subscribes the controller to control. Each click runs one Submit on its
// own goroutine; done, if not nil, is called with its outcome.
// Overlapping clicks are not debounced.
func (c *FormController) Bind(ctx context.Context, control ui.SubmitControl, done func(Outcome)) (unbind func()) {
	return control.OnClick(func() {
		c.inflight.Add(1)
		go func() {
			defer c.inflight.Done()
			outcome := c.Submit(ctx)
			if done != nil {
				done(outcome)
			}
		}()
	})
}

// Wait blocks until every submission started through Bind has finished
func (c *FormController) Wait() {
	c.inflight.Wait()
}

// Submit runs one interaction: validate, predict, display.
// The display always ends revealed, unless a newer submission took over.
func (c *FormController) Submit(ctx context.Context) Outcome {
	start := time.Now()
	value := c.input.Value()

	c.mu.Lock()
	gen := c.generation.Add(1)
	c.display.SetText("")
	c.display.SetHidden(true)

	if strings.TrimSpace(value) == "" {
		c.show(EmptyInputMessage)
		c.mu.Unlock()
		return c.finish(OutcomeValidation, start)
	}
	c.mu.Unlock()

	c.logger.Debug("Submitting text for prediction",
		zap.Uint64("generation", gen),
		zap.Int("length", len(value)),
	)

	predictions, err := c.predictor.Predict(ctx, []string{value})
	text, outcome := c.render(predictions, err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation.Load() != gen {
		c.logger.Debug("Discarding stale prediction", zap.Uint64("generation", gen))
		return c.finish(OutcomeSuperseded, start)
	}
	c.show(text)

	return c.finish(outcome, start)
}

func (c *FormController) render(predictions []*service.Prediction, err error) (string, Outcome) {
	var svcErr *service.ServiceError
	switch {
	case err == nil && len(predictions) == 0:
		return NoPredictionMessage, OutcomeEmptyResults
	case err == nil:
		return PredictionPrefix + predictions[0].Label, OutcomePrediction
	case errors.As(err, &svcErr):
		c.logger.Warn("Prediction service reported an error", zap.String("error", svcErr.Message))
		return ErrorPrefix + svcErr.Message, OutcomeServiceError
	case errors.Is(err, service.ErrNoResults):
		c.logger.Warn("Prediction service returned no results")
		return NoPredictionMessage, OutcomeEmptyResults
	default:
		c.logger.Warn("Prediction request failed", zap.Error(err))
		return ConnectionErrorMessage, OutcomeTransportError
	}
}

// show must be called with mu held
func (c *FormController) show(text string) {
	c.display.SetText(text)
	c.display.SetHidden(false)
}

func (c *FormController) finish(outcome Outcome, start time.Time) Outcome {
	if c.recorder != nil {
		c.recorder.Record(outcome, time.Since(start))
	}
	return outcome
}
