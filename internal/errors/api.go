package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// CorrelationHeader is the header the backend echoes the per-request
// correlation identifier on.
const CorrelationHeader = "x-correlation-id"

// defaultCorrelationExpr locates the correlation id inside an error body
// when the backend embeds it there instead of (or in addition to) the
// response header. Overridable per deployment via SetCorrelationExpr.
const defaultCorrelationExpr = "correlation_id"

// apiErrorBody is the structured error shape the BFF returns.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Decoder maps backend HTTP error responses to AppError instances.
// The zero value uses the default correlation expression.
type Decoder struct {
	correlationExpr string
}

// NewDecoder builds a Decoder. expr is a JMESPath expression used to dig
// the correlation id out of error bodies; empty selects the default.
// An invalid expression is reported immediately rather than on first use.
func NewDecoder(expr string) (*Decoder, error) {
	if expr == "" {
		expr = defaultCorrelationExpr
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, Wrapf(err, ErrCodeValidation, "invalid correlation expression %q", expr)
	}
	return &Decoder{correlationExpr: expr}, nil
}

// MapTransportError maps pre-response failures (DNS, refused connection,
// context expiry) to AppError instances.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}
	return &AppError{
		Code:    ErrCodeTransport,
		Message: "Could not reach the service. Please try again.",
		Cause:   err,
	}
}

// MapResponse maps a non-2xx backend response (with its already-read body)
// to an AppError. The body is expected in the {code, message} shape; a body
// that does not parse falls back to a status-derived error. The correlation
// id is taken from the response header first, then from the body.
func (d *Decoder) MapResponse(resp *http.Response, body []byte) error {
	if resp == nil {
		return Internal("missing response")
	}

	appErr := &AppError{
		Code:       codeForStatus(resp.StatusCode),
		Message:    http.StatusText(resp.StatusCode),
		HTTPStatus: resp.StatusCode,
	}

	var parsed apiErrorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		if parsed.Code != "" {
			appErr.Message = parsed.Message
			if appErr.Message == "" {
				appErr.Message = parsed.Code
			}
			// Business code wins over the status-derived category for
			// 4xx responses the UI surfaces verbatim.
			if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
				appErr.Code = ErrorCode(parsed.Code)
			}
		} else if parsed.Message != "" {
			appErr.Message = parsed.Message
		}
	}

	if cid := resp.Header.Get(CorrelationHeader); cid != "" {
		appErr.CorrelationID = cid
	} else if len(body) > 0 {
		appErr.CorrelationID = d.correlationFromBody(body)
	}

	return appErr
}

// correlationFromBody evaluates the configured JMESPath expression over
// the decoded body. Any failure just yields an empty correlation id.
func (d *Decoder) correlationFromBody(body []byte) string {
	expr := d.correlationExpr
	if expr == "" {
		expr = defaultCorrelationExpr
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}
	result, err := jmespath.Search(expr, data)
	if err != nil {
		return ""
	}
	if s, ok := result.(string); ok {
		return s
	}
	return ""
}

// codeForStatus maps an HTTP status to the client error taxonomy.
func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return ErrCodeUnauthenticated
	case http.StatusForbidden:
		return ErrCodeCSRFRejected
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeValidation
	case http.StatusGatewayTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
