package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/quoteviral/quoteviral/internal/controller/restapi/v1/response"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// statusCode maps the error taxonomy to HTTP statuses.
func statusCode(err error) int {
	switch errs.CodeOf(err) {
	case errs.CodeValidation, errs.CodeDecode:
		return http.StatusBadRequest
	case errs.CodeRateLimited:
		return http.StatusTooManyRequests
	case errs.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail renders a use-case error. Rate-limit denials get the Retry-After
// header and the resetTime body; internal failures are logged and masked.
func (r *V1) fail(ctx *fiber.Ctx, op string, err error) error {
	status := statusCode(err)

	var rl *errs.RateLimitedError
	if errors.As(err, &rl) {
		ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(rl.RetryAfter.Seconds())+1))

		return ctx.Status(status).JSON(response.RateLimited{
			Error:     "Rate limit exceeded",
			ResetTime: rl.ResetAt.UnixMilli(),
		})
	}

	if status == http.StatusInternalServerError {
		r.logger.Error(err, op)

		return errorResponse(ctx, status, "internal problems")
	}

	return errorResponse(ctx, status, userMessage(err))
}

// userMessage strips internal wrapping down to the user-correctable reason.
func userMessage(err error) string {
	var (
		ve *errs.ValidationError
		tl *errs.TextTooLongError
	)

	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &tl):
		return tl.Error()
	case errors.Is(err, errs.ErrEmptyText):
		return errs.ErrEmptyText.Error()
	case errors.Is(err, errs.ErrUnknownFormat):
		return errs.ErrUnknownFormat.Error()
	case errors.Is(err, errs.ErrDecode):
		return errs.ErrDecode.Error()
	case errors.Is(err, errs.ErrRecordNotFound):
		return "not found"
	default:
		return "internal problems"
	}
}
