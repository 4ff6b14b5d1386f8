package main

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/render"
	"github.com/darkclainer/recnik/pkg/search"
)

type ResponseStatus string

const (
	ResponseOK          ResponseStatus = "ok"
	ResponseNotFound    ResponseStatus = "not_found"
	ResponseSourceError ResponseStatus = "source_error"
	ResponseBadRequest  ResponseStatus = "bad_request"
	ResponseBusy        ResponseStatus = "busy"
)

type ResponseQuery struct {
	Status       ResponseStatus        `json:"status"`
	Query        string                `json:"query,omitempty"`
	Presentation *present.Presentation `json:"presentation,omitempty"`
	Message      string                `json:"message,omitempty"`
}

// searchRequest runs the search for the q parameter. It writes the error
// response itself and returns nil when there is nothing more to do.
func (s *Server) searchRequest(w http.ResponseWriter, r *http.Request) *search.Outcome {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return nil
	}
	outcome, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		s.respondJSON(w, &ResponseQuery{Status: ResponseBadRequest}, http.StatusBadRequest)
		return nil
	case errors.Is(err, search.ErrBusy):
		s.respondJSON(w, &ResponseQuery{
			Status:  ResponseBusy,
			Message: search.LoadingText,
		}, http.StatusServiceUnavailable)
		return nil
	case err != nil:
		s.logger.Error("search returned error", zap.Error(err))
		s.respondJSON(w, &ResponseQuery{Status: ResponseSourceError}, http.StatusInternalServerError)
		return nil
	}
	return outcome
}

func (s *Server) handleQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := s.searchRequest(w, r)
		if outcome == nil {
			return
		}
		response := ResponseQuery{
			Status:       ResponseOK,
			Query:        outcome.Query,
			Presentation: outcome.Presentation,
			Message:      outcome.Message,
		}
		switch outcome.Signal {
		case search.SignalNotFound:
			response.Status = ResponseNotFound
		case search.SignalSourceError:
			response.Status = ResponseSourceError
		}
		s.respondJSON(w, &response, http.StatusOK)
	}
}

func (s *Server) handlePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := s.searchRequest(w, r)
		if outcome == nil {
			return
		}
		buffer := new(bytes.Buffer)
		if err := render.NewHTML(buffer).RenderOutcome(outcome); err != nil {
			s.logger.Error("rendering failed", zap.Error(err), zap.String("query", outcome.Query))
			http.Error(w, "rendering error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buffer.Bytes())
	}
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
