package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread body is consumed to keep the connection reusable.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest consumes what the handler left of the request body, then closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			if drained, err := io.CopyN(io.Discard, r.Body, maxDrainBytes); err == nil && drained == maxDrainBytes {
				log.Debugf("request body for %s %s larger than drain limit, connection may not be reused", r.Method, r.URL.Path)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body: %s", err)
			}
		})
	}
}
