package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ressKim-io/NewsGuard/internal/adapter/client"
	"github.com/ressKim-io/NewsGuard/internal/domain/service"
	"github.com/ressKim-io/NewsGuard/internal/usecase"
)

// TextField is the form field holding the text to classify
const TextField = "news-text"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the HTML templates served by FormHandler
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// PageData is rendered into index.html
type PageData struct {
	Title   string
	Text    string
	Display usecase.DisplayState
}

// SubmitInput is the JSON body of POST /api/v1/submit
type SubmitInput struct {
	Text string `json:"text"`
}

// SubmitOutput is the JSON result of POST /api/v1/submit
type SubmitOutput struct {
	Outcome usecase.Outcome      `json:"outcome"`
	Display usecase.DisplayState `json:"display"`
}

// FormHandler serves the prediction form.
// Every request gets its own text field and display.
type FormHandler struct {
	predictor service.Predictor
	recorder  usecase.OutcomeRecorder
	logger    *zap.Logger
	title     string
}

// NewFormHandler creates a new form handler. recorder may be nil.
func NewFormHandler(predictor service.Predictor, recorder usecase.OutcomeRecorder, logger *zap.Logger, title string) *FormHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormHandler{
		predictor: predictor,
		recorder:  recorder,
		logger:    logger,
		title:     title,
	}
}

// ShowForm handles GET /
func (h *FormHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", PageData{
		Title:   h.title,
		Display: usecase.NewDisplay().Snapshot(),
	})
}

// SubmitForm handles POST /
func (h *FormHandler) SubmitForm(c *gin.Context) {
	text := c.PostForm(TextField)
	_, state := h.submit(c, text)

	c.HTML(http.StatusOK, "index.html", PageData{
		Title:   h.title,
		Text:    text,
		Display: state,
	})
}

// SubmitJSON handles POST /api/v1/submit
func (h *FormHandler) SubmitJSON(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, "invalid request body")
		return
	}

	outcome, state := h.submit(c, input.Text)
	respondSuccess(c, http.StatusOK, SubmitOutput{
		Outcome: outcome,
		Display: state,
	})
}

func (h *FormHandler) submit(c *gin.Context, text string) (usecase.Outcome, usecase.DisplayState) {
	id := requestID(c)
	display := usecase.NewDisplay()
	controller := usecase.NewFormController(h.predictor, usecase.NewTextField(text), display,
		h.logger.With(zap.String("request_id", id)))
	if h.recorder != nil {
		controller.WithRecorder(h.recorder)
	}

	ctx := client.WithRequestID(c.Request.Context(), id)
	outcome := controller.Submit(ctx)

	return outcome, display.Snapshot()
}
