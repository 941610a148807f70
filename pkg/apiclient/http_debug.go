package apiclient

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

// debugClient dumps each request and response through the client logger
// before handing them back to the caller.
type debugClient struct {
	base   HTTPClient
	logger zerolog.Logger
}

func (d *debugClient) Do(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		d.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(dump)).
			Msg("HTTP request")
	}

	resp, err := d.base.Do(req)
	if err != nil {
		d.logger.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		d.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(dump)).
			Msg("HTTP response")
	}
	return resp, nil
}
