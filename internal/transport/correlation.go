package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// DefaultCorrelationHeader is the header each outbound request is tagged
// with for correlation against backend logs.
const DefaultCorrelationHeader = "x-correlation-id"

// Correlation returns a stage that stamps a fresh unique identifier on
// every outbound request, unconditionally. A caller-set id is replaced;
// ids are minted here, one per request, never propagated from callers.
func Correlation(header string) Stage {
	if header == "" {
		header = DefaultCorrelationHeader
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			tagged := req.Clone(req.Context())
			tagged.Header.Set(header, uuid.NewString())
			return next.RoundTrip(tagged)
		})
	}
}
