package router

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
	"github.com/DjordjeVuckovic/nlncalc/internal/dto"
	"github.com/DjordjeVuckovic/nlncalc/internal/processor"
	"github.com/DjordjeVuckovic/nlncalc/internal/token"
	"github.com/DjordjeVuckovic/nlncalc/internal/view"
	"github.com/DjordjeVuckovic/nlncalc/pkg/utils"
	"github.com/labstack/echo/v4"
)

const formField = "calcinput"

type Tokenizer interface {
	Tokenize(line string) ([]token.Token, error)
}

type BatchProcessor interface {
	Process(ctx context.Context, input string) (*processor.Batch, error)
}

type CalcRouter struct {
	e         *echo.Echo
	tokenizer Tokenizer
	processor BatchProcessor
}

func NewCalcRouter(e *echo.Echo, tokenizer Tokenizer, processor BatchProcessor) *CalcRouter {
	return &CalcRouter{
		e:         e,
		tokenizer: tokenizer,
		processor: processor,
	}
}

func (r *CalcRouter) Bind() {
	r.e.GET("/", r.indexHandler)
	r.e.POST("/result", r.resultHandler)

	v1 := r.e.Group("/api/v1")
	v1.POST("/calculate", r.calculateHandler)
	v1.GET("/tokens", r.tokensHandler)
}

func (r *CalcRouter) indexHandler(c echo.Context) error {
	return c.Render(http.StatusOK, view.IndexPage, nil)
}

// resultHandler evaluates every line of the submitted form. A failing line replaces the whole
// result list with its error message.
func (r *CalcRouter) resultHandler(c echo.Context) error {
	input := c.FormValue(formField)
	data := view.ResultData{Input: input}

	batch, err := r.processor.Process(c.Request().Context(), input)
	if err != nil {
		var le *apperr.LineError
		var ve *apperr.ValidationError
		switch {
		case errors.As(err, &le):
			data.Error = le.Err.Error()
			data.Line = le.Line
		case errors.As(err, &ve):
			data.Error = ve.Error()
			return c.Render(http.StatusBadRequest, view.ResultPage, data)
		default:
			return err
		}
		return c.Render(http.StatusOK, view.ResultPage, data)
	}

	for _, res := range batch.Results {
		data.Values = append(data.Values, utils.FormatNumber(res.Value))
	}
	return c.Render(http.StatusOK, view.ResultPage, data)
}

// calculateHandler godoc
// @Summary Evaluate calculations
// @Description Evaluates one calculation per line. Evaluation stops at the first failing line.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Input lines"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /api/v1/calculate [post]
func (r *CalcRouter) calculateHandler(c echo.Context) error {
	var req dto.CalculateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Input) == "" {
		return apperr.NewValidation("input is required")
	}

	batch, err := r.processor.Process(c.Request().Context(), req.Input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCalculateResponse(batch, utils.FormatNumber))
}

// tokensHandler godoc
// @Summary Tokenize a line
// @Description Returns the token stream of a single line, ending with EOF.
// @Tags calculator
// @Produce json
// @Param line query string true "Input line"
// @Success 200 {object} dto.TokensResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 422 {object} apperr.ErrorResponse
// @Router /api/v1/tokens [get]
func (r *CalcRouter) tokensHandler(c echo.Context) error {
	line := c.QueryParam("line")
	if line == "" {
		return apperr.NewValidation("line query parameter is required")
	}

	tokens, err := r.tokenizer.Tokenize(line)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTokensResponse(line, tokens))
}
