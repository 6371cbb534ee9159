package handler

import (
	"fmt"
	"net/http"
	"time"

	"clinic-frontdesk/internal/service"
	"clinic-frontdesk/pkg/response"

	"github.com/sirupsen/logrus"
)

// StreamHandler serves the waiting-room display over Server-Sent Events.
type StreamHandler struct {
	log       *logrus.Logger
	announcer *service.Announcer
	keepAlive time.Duration
}

func NewStreamHandler(log *logrus.Logger, announcer *service.Announcer, keepAlive time.Duration) *StreamHandler {
	return &StreamHandler{
		log:       log,
		announcer: announcer,
		keepAlive: keepAlive,
	}
}

// Stream emits one `data:` event per announced patient and a comment line
// as keep-alive while the queue is idle. The connection runs until the
// client goes away.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		name, ok := h.announcer.Next(ctx, h.keepAlive)
		if ok {
			if _, err := fmt.Fprintf(w, "data: %s\n\n", name); err != nil {
				return
			}
		} else {
			if ctx.Err() != nil {
				return
			}
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		}
		flusher.Flush()
	}
}
