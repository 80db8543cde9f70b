package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/imaginarybank/webcore/internal/observability/statsd"
)

// Metrics returns a stage that emits a counter and a timing per outbound
// request, tagged with method, destination host, and status ("error" when
// the transport itself failed).
func Metrics(sink statsd.Sink) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			status := "error"
			if err == nil {
				status = strconv.Itoa(resp.StatusCode)
			}
			tags := map[string]string{
				"method": req.Method,
				"host":   req.URL.Host,
				"status": status,
			}
			sink.Count("http.request", 1, tags)
			sink.Timing("http.duration", time.Since(start), tags)

			return resp, err
		})
	}
}
