package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/nakamura-oss/cubescan/internal/scan"
)

type MatchRequest struct {
	Samples [][3]int `json:"samples"`
}

type MatchResponse struct {
	Facelets  string `json:"facelets"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

const requestIDHeader = "X-Request-ID"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>cubescan</title>
    <meta charset="utf-8">
</head>
<body>
    <h1>cubescan</h1>
    <p>POST 54 BGR samples to <code>/api/match</code> to get back the
    facelet string of a physically realizable cube, or check
    <code>/api/health</code>.</p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set(requestIDHeader, requestID)
	w.Header().Set("Content-Type", "application/json")

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[%s] decode match request: %v", requestID, err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid JSON body", RequestID: requestID})
		return
	}

	if len(req.Samples) != scan.NumFacelets {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:     fmt.Sprintf("expected %d samples, got %d", scan.NumFacelets, len(req.Samples)),
			RequestID: requestID,
		})
		return
	}

	var samples [scan.NumFacelets][3]byte
	for i, sample := range req.Samples {
		for c := 0; c < 3; c++ {
			if sample[c] < 0 || sample[c] > 255 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error:     fmt.Sprintf("sample %d channel %d out of byte range: %d", i, c, sample[c]),
					RequestID: requestID,
				})
				return
			}
			samples[i][c] = byte(sample[c])
		}
	}

	m := scan.NewMatcher(s.table)
	facelets, err := scan.MatchOrError(m, samples)
	if err != nil {
		log.Printf("[%s] match failed: %v", requestID, err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	log.Printf("[%s] matched facelets %s", requestID, facelets)
	json.NewEncoder(w).Encode(MatchResponse{Facelets: facelets, RequestID: requestID})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
