package api

import (
	"log/slog"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/cache"
	"github.com/edu2101/ror/renderer"
	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	cache    cache.Cache
	currency string
	logger   *slog.Logger
}

// evaluate goes through the cache; cache failures are only logged.
func (h *handlers) evaluate(c *fiber.Ctx, in ror.Input) ror.Evaluation {
	e, err := cache.Evaluate(c.UserContext(), h.cache, in)
	if err != nil {
		h.logger.Warn("Evaluation cache unavailable", "error", err, "request_id", requestID(c))
	}
	if e.Cause != nil {
		h.logger.Debug("Calculation failed", "cause", e.Cause, "request_id", requestID(c))
	}
	return e
}

// evaluationProblem writes the problem response of an invalid evaluation.
func evaluationProblem(c *fiber.Ctx, e ror.Evaluation) error {
	if !e.Validation.IsValid {
		return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, e.Outcome.Error, e.Validation.Errors)
	}
	return ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Calculation failed", e.Outcome.Error)
}

// rateOfReturn evaluates a RorRequest.
func (h *handlers) rateOfReturn(c *fiber.Ctx) error {
	var req RorRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	e := h.evaluate(c, req.Input())
	if !e.Outcome.IsValid {
		return evaluationProblem(c, e)
	}
	return c.JSON(RorResponse{
		Outcome:    e.Outcome,
		Validation: e.Validation,
		Report:     renderer.NewReport(e, h.currency),
	})
}

// reportHTML renders the report of the query parameters as an HTML page.
// Invalid inputs still get a page, describing the errors.
func (h *handlers) reportHTML(c *fiber.Ctx) error {
	in := ror.ParseInput(c.Query("initialAmount"), c.Query("finalAmount"), c.Query("years"))
	e := h.evaluate(c, in)

	page, err := renderer.ReportHTML(renderer.NewReport(e, c.Query("currency", h.currency)))
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if !e.Outcome.IsValid {
		status = fiber.StatusUnprocessableEntity
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(page)
}

func (h *handlers) futureValue(c *fiber.Ctx) error {
	req, err := BindAndValidate[FutureValueRequest](c)
	if req == nil {
		return err
	}
	v := renderer.FutureValue(req.PresentValue, req.Rate, req.Years, h.currency)
	return c.JSON(newTimeValueResponse(v))
}

func (h *handlers) presentValue(c *fiber.Ctx) error {
	req, err := BindAndValidate[PresentValueRequest](c)
	if req == nil {
		return err
	}
	v := renderer.PresentValue(req.FutureValue, req.Rate, req.Years, h.currency)
	return c.JSON(newTimeValueResponse(v))
}

func (h *handlers) bands(c *fiber.Ctx) error {
	var bands []BandResponse
	for _, b := range ror.Bands() {
		bands = append(bands, BandResponse{Interpretation: b, Range: b.Band.Range()})
	}
	return c.JSON(bands)
}

func healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}
