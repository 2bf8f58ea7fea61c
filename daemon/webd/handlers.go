package webd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tidwall/gjson"

	"github.com/rotblauer/pluscodes/geo"
	"github.com/rotblauer/pluscodes/olc"
)

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "pong")
}

type codeResponse struct {
	Code string `json:"code"`
}

type areaResponse struct {
	olc.CodeArea
	LatCenter float64 `json:"lat_center"`
	LngCenter float64 `json:"lng_center"`
}

func newAreaResponse(area olc.CodeArea) areaResponse {
	lat, lng := area.Center()
	return areaResponse{CodeArea: area, LatCenter: lat, LngCenter: lng}
}

// parseLatLng reads lat/lng query params. Reports false after
// replying 400 on missing or malformed values.
func (s *WebDaemon) parseLatLng(w http.ResponseWriter, r *http.Request) (lat, lng float64, ok bool) {
	var err error
	lat, err = strconv.ParseFloat(r.FormValue("lat"), 64)
	if err != nil {
		s.logger.Warn("Failed to parse lat", "error", err, "url", r.URL)
		http.Error(w, "Failed to parse lat", http.StatusBadRequest)
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(r.FormValue("lng"), 64)
	if err != nil {
		s.logger.Warn("Failed to parse lng", "error", err, "url", r.URL)
		http.Error(w, "Failed to parse lng", http.StatusBadRequest)
		return 0, 0, false
	}
	return lat, lng, true
}

func (s *WebDaemon) handleEncode(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := s.parseLatLng(w, r)
	if !ok {
		return
	}
	codeLen := s.Config.DefaultCodeLength
	if v := r.FormValue("len"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			s.logger.Warn("Failed to parse len", "error", err, "url", r.URL)
			http.Error(w, "Failed to parse len", http.StatusBadRequest)
			return
		}
		codeLen = l
	}
	code, err := olc.Encode(lat, lng, codeLen)
	if err != nil {
		s.logger.Warn("Encode failed", "error", err, "len", codeLen)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(codeResponse{Code: code})
}

// handleEncodeJSON accepts {"lat": .., "lng": .., "length": ..}.
// Length is optional.
func (s *WebDaemon) handleEncodeJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		s.logger.Warn("Failed to read body", "error", err)
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}
	latRes, lngRes := gjson.GetBytes(body, "lat"), gjson.GetBytes(body, "lng")
	if !latRes.Exists() || !lngRes.Exists() {
		http.Error(w, "Missing lat or lng", http.StatusBadRequest)
		return
	}
	codeLen := s.Config.DefaultCodeLength
	if lenRes := gjson.GetBytes(body, "length"); lenRes.Exists() {
		codeLen = int(lenRes.Int())
	}
	code, err := olc.Encode(latRes.Float(), lngRes.Float(), codeLen)
	if err != nil {
		s.logger.Warn("Encode failed", "error", err, "len", codeLen)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(codeResponse{Code: code})
}

func (s *WebDaemon) handleDecode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	area, err := olc.Decode(code)
	if err != nil {
		s.logger.Warn("Decode failed", "error", err, "code", code)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(newAreaResponse(area))
}

func (s *WebDaemon) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	f, err := geo.Feature(code)
	if err != nil {
		s.logger.Warn("Decode failed", "error", err, "code", code)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(f)
}

func (s *WebDaemon) handleCover(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	area, err := olc.Decode(code)
	if err != nil {
		s.logger.Warn("Decode failed", "error", err, "code", code)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cells := geo.Covering(area, s.Config.MaxCoverCells)
	tokens := make([]string, 0, len(cells))
	for _, c := range cells {
		tokens = append(tokens, c.ToToken())
	}
	json.NewEncoder(w).Encode(tokens)
}

func (s *WebDaemon) handleShorten(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := s.parseLatLng(w, r)
	if !ok {
		return
	}
	code, err := olc.Shorten(r.FormValue("code"), lat, lng)
	if err != nil {
		s.logger.Warn("Shorten failed", "error", err, "code", r.FormValue("code"))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(codeResponse{Code: code})
}

func (s *WebDaemon) handleRecover(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := s.parseLatLng(w, r)
	if !ok {
		return
	}
	code, err := olc.RecoverNearest(r.FormValue("code"), lat, lng)
	if err != nil {
		s.logger.Warn("Recover failed", "error", err, "code", r.FormValue("code"))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(codeResponse{Code: code})
}
