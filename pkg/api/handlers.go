package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/mayanum/pkg/buildinfo"
	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/pipeline"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
	"github.com/matzehuels/mayanum/pkg/render/glyph/sink"
	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type cellResponse struct {
	Value        int    `json:"value"`
	Exponent     int    `json:"exponent"`
	Multiplier   uint64 `json:"multiplier"`
	Contribution uint64 `json:"contribution"`
	Bars         int    `json:"bars"`
	Dots         int    `json:"dots"`
	Zero         bool   `json:"zero,omitempty"`
}

type groupResponse struct {
	Label    string         `json:"label"`
	Value    uint64         `json:"value"`
	Digits   []int          `json:"digits"`
	Notation string         `json:"notation"`
	Expanded string         `json:"expanded"`
	Cells    []cellResponse `json:"cells"`
}

type convertResponse struct {
	Kind     string          `json:"kind"`
	Input    string          `json:"input"`
	Groups   []groupResponse `json:"groups"`
	FileBase string          `json:"file_base"`
}

type presetsResponse struct {
	Original export.Dimensions `json:"original"`
	Presets  []export.Choice   `json:"presets"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, pipeline.Options{Number: r.URL.Query().Get("number")})
}

func (s *Server) handleDate(w http.ResponseWriter, r *http.Request) {
	s.convert(w, r, pipeline.Options{Date: r.URL.Query().Get("date")})
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	groups, base, err := pipeline.Parse(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := convertResponse{
		Kind:     opts.Kind(),
		Input:    strings.TrimSpace(opts.Number + opts.Date),
		Groups:   make([]groupResponse, 0, len(groups)),
		FileBase: base,
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, describeGroup(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

func describeGroup(g layout.Group) groupResponse {
	out := groupResponse{
		Label:    g.Label,
		Value:    g.Digits.Value(),
		Digits:   g.Digits.Ints(),
		Notation: vigesimal.Format(g.Digits, vigesimal.Notation),
		Expanded: vigesimal.Format(g.Digits, vigesimal.Expanded),
		Cells:    make([]cellResponse, len(g.Digits)),
	}
	for i, d := range g.Digits {
		c := layout.ClusterOf(d)
		out.Cells[i] = cellResponse{
			Value:        int(d),
			Exponent:     g.Digits.Exponent(i),
			Multiplier:   g.Digits.Multiplier(i),
			Contribution: g.Digits.Contribution(i),
			Bars:         c.Bars,
			Dots:         c.Dots,
			Zero:         c.Zero,
		}
	}
	return out
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	l, err := s.layout(r, &opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	paint, err := opts.Paint()
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := sink.RenderJSON(l, sink.WithJSONPaint(paint))
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	l, err := s.layout(r, &opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, custom, err := opts.Export()
	if err != nil {
		writeError(w, r, err)
		return
	}

	dims := pipeline.Dimensions(l)
	writeJSON(w, http.StatusOK, presetsResponse{Original: dims, Presets: export.Presets(dims, custom)})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	format, err := export.ParseFormat(valueOr(r.URL.Query().Get("format"), pipeline.DefaultFormat))
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Formats = []string{string(format)}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", format.ContentType())
	h.Set("Content-Disposition", `inline; filename="`+result.FileBase+format.Ext()+`"`)
	h.Set("X-Export-Size", strconv.Itoa(result.Size.Width)+"x"+strconv.Itoa(result.Size.Height))
	h.Set("X-Cache", cacheStatus(result.CacheInfo.RenderHit))
	_, _ = w.Write(result.Artifacts[string(format)])
}

func (s *Server) layout(r *http.Request, opts *pipeline.Options) (layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, err
	}
	groups, _, err := pipeline.Parse(r.Context(), *opts)
	if err != nil {
		return layout.Layout{}, err
	}
	return pipeline.GenerateLayout(r.Context(), groups, *opts), nil
}

// optionsFromQuery maps query parameters onto pipeline options. Both the
// short (bg, fg) and long (background, glyph) colour names are accepted.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Number:     q.Get("number"),
		Date:       q.Get("date"),
		Theme:      q.Get("theme"),
		Background: valueOr(q.Get("bg"), q.Get("background")),
		Glyph:      valueOr(q.Get("fg"), q.Get("glyph")),
		Size:       q.Get("size"),
		Lock:       q.Get("lock"),
		Rsvg:       q.Get("engine") == "rsvg",
	}

	var err error
	floats := []struct {
		name string
		dst  *float64
	}{
		{"scale", &opts.Scale},
		{"cell_height", &opts.CellHeight},
		{"group_width", &opts.GroupWidth},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloat(q, f.name); err != nil {
			return opts, err
		}
	}
	if q.Has("spacing") {
		sp, err := parseFloat(q, "spacing")
		if err != nil {
			return opts, err
		}
		opts.Spacing = &sp
	}
	if opts.Width, err = parseInt(q, "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = parseInt(q, "height"); err != nil {
		return opts, err
	}
	if v := q.Get("grid"); v != "" {
		if opts.Grid, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidOption, "grid must be true or false, got %q", v)
		}
	}
	// Custom dimensions without an explicit preset mean a custom size.
	if opts.Size == "" && (opts.Width > 0 || opts.Height > 0) {
		opts.Size = string(export.Custom)
	}
	return opts, nil
}

func parseFloat(q url.Values, name string) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidOption, "%s must be a number, got %q", name, v)
	}
	return f, nil
}

func parseInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidSize, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
