package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cserr"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *cserr.Error) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var ce *cserr.Error
	if errors.As(err, &ce) {
		return handleCustomError(ctx, ce)
	}

	// Default 500 statuscode
	re := *cserr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// routing errors such as 404 and 405 are not internal failures
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, &re)
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := flog.IDFromFiberCtx(ctx); ok {
			hub.Scope().SetTag("request_id", id.String())
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
