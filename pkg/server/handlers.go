package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/supertile/pkg/buildinfo"
	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/render/nodelink"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Current()})
}

// KindResponse describes one catalog entry.
type KindResponse struct {
	Name        string `json:"name"`
	Procedure   string `json:"procedure"`
	Inputs      int    `json:"inputs"`
	Outputs     int    `json:"outputs"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := s.kinds.Kinds()
	out := make([]KindResponse, len(kinds))
	for i, k := range kinds {
		in, o := k.Procedure.Arity()
		out[i] = KindResponse{
			Name:        k.Name,
			Procedure:   k.Procedure.String(),
			Inputs:      in,
			Outputs:     o,
			Description: k.Description,
		}
	}
	s.respondJSON(w, http.StatusOK, out)
}

// LayoutResponse is one computed layout.
type LayoutResponse struct {
	Kind    string                    `json:"kind"`
	Key     string                    `json:"key"`
	Core    supertile.Gate            `json:"core"`
	Wires   [ring.Size]supertile.Gate `json:"wires"`
	Reduced string                    `json:"reduced"`
	Lookup  []string                  `json:"lookup"`
	Paths   string                    `json:"paths,omitempty"`
	Micros  int64                     `json:"micros"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := pipeline.ParseRequest(q.Get("kind"), q.Get("in"), q.Get("out"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if req.Kind == "" {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidRequest, "kind is required"))
		return
	}
	paths, _ := strconv.ParseBool(q.Get("paths"))
	format := q.Get("format")

	res, err := s.runner.Layout(r.Context(), req, pipeline.LayoutOptions{Paths: paths})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if format != "" && format != "json" {
		s.writeImage(w, r, res.Supertile, format, paths)
		return
	}

	s.respondJSON(w, http.StatusOK, NewLayoutResponse(res))
}

// NewLayoutResponse builds the response body of a computed layout.
func NewLayoutResponse(res *pipeline.LayoutResult) LayoutResponse {
	st := res.Supertile
	resp := LayoutResponse{
		Kind:    st.Kind,
		Key:     res.Request.Key(),
		Core:    st.Core,
		Wires:   st.Wires,
		Reduced: render.Reduced(st),
		Lookup:  render.LookupRow(st),
		Micros:  res.Duration.Microseconds(),
	}
	if st.Paths != nil {
		resp.Paths = st.Paths.String()
	}
	return resp
}

var contentTypes = map[nodelink.Format]string{
	nodelink.FormatDOT: "text/vnd.graphviz",
	nodelink.FormatSVG: "image/svg+xml",
	nodelink.FormatPNG: "image/png",
}

func (s *Server) writeImage(w http.ResponseWriter, r *http.Request, st *supertile.Supertile, format string, paths bool) {
	f, err := nodelink.ParseFormat(format)
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "format"))
		return
	}
	data, _, err := s.runner.Render(r.Context(), st, pipeline.RenderOptions{Format: f, Paths: paths})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[f])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Table(r.Context(), chi.URLParam(r, "kind"), pipeline.TableOptions{})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("X-Cache-Hit", strconv.FormatBool(res.CacheHit))
	s.respondJSON(w, http.StatusOK, res.Table)
}
