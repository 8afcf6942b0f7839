// Command server exposes the Nganasan morphological analyzer as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>[&pos=noun|verb|pron|num][&format=text]
//	POST /api/analyze/text   body: {"text":"..."}
//	GET  /api/paradigms
//	GET  /healthcheck
package main

import (
	"encoding/json"
	"flag"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/cors"

	"github.com/cours-de-latin/nganasan"
	"github.com/cours-de-latin/nganasan/internal/frontend"
	"github.com/cours-de-latin/nganasan/internal/util"
)

// ---- JSON response types ------------------------------------------------

type analyzeTextResponse struct {
	Results []frontend.Analysis `json:"results"`
}

type cellJSON struct {
	Key      string   `json:"key"`
	Suffixes []string `json:"suffixes"`
}

type tableJSON struct {
	Name  string     `json:"name"`
	Cells []cellJSON `json:"cells"`
	// Suffixes lists every distinct suffix of the table.
	Suffixes []string `json:"suffixes"`
}

type numeralJSON struct {
	Value int    `json:"value"`
	Form  string `json:"form"`
}

type paradigmsResponse struct {
	Declensions  []tableJSON           `json:"declensions"`
	Conjugations []tableJSON           `json:"conjugations"`
	Moods        []tableJSON           `json:"moods"`
	Possessive   tableJSON             `json:"possessive"`
	Pronouns     map[string][]cellJSON `json:"pronouns"`
	Cardinals    []numeralJSON         `json:"cardinals"`
	Ordinals     []numeralJSON         `json:"ordinals"`
	Derivations  map[string]string     `json:"derivations"`
	Alternations map[string][2]string  `json:"alternations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toTableJSON(t *nganasan.Table) tableJSON {
	out := tableJSON{
		Name:     t.Name,
		Cells:    make([]cellJSON, 0, len(t.Cells)),
		Suffixes: t.Suffixes(),
	}
	for _, c := range t.Cells {
		out.Cells = append(out.Cells, cellJSON{Key: c.Key, Suffixes: c.Suffixes})
	}
	return out
}

func toNumeralsJSON(forms []nganasan.NumeralForm) []numeralJSON {
	out := make([]numeralJSON, 0, len(forms))
	for _, nf := range forms {
		out = append(out, numeralJSON{Value: nf.Value, Form: nf.Form})
	}
	return out
}

func gridJSON(cell func(nganasan.Number, nganasan.Person) (string, bool)) []cellJSON {
	var out []cellJSON
	for _, n := range nganasan.Numbers {
		for _, p := range nganasan.Persons {
			if form, ok := cell(n, p); ok {
				out = append(out, cellJSON{Key: n.String() + "." + p.String(), Suffixes: []string{form}})
			}
		}
	}
	return out
}

func buildParadigms(p *nganasan.Paradigms) paradigmsResponse {
	resp := paradigmsResponse{
		Possessive:   toTableJSON(p.PossessiveTable()),
		Pronouns:     make(map[string][]cellJSON),
		Cardinals:    toNumeralsJSON(p.Cardinals()),
		Ordinals:     toNumeralsJSON(p.Ordinals()),
		Derivations:  make(map[string]string),
		Alternations: make(map[string][2]string),
	}
	for _, d := range nganasan.Declensions {
		resp.Declensions = append(resp.Declensions, toTableJSON(p.DeclensionTable(d)))
	}
	for _, t := range nganasan.Tenses {
		resp.Conjugations = append(resp.Conjugations, toTableJSON(p.ConjugationTable(nganasan.Subjective, t)))
	}
	for _, c := range []nganasan.Conjugation{
		nganasan.SubjectiveObjectiveSg,
		nganasan.SubjectiveObjectiveDl,
		nganasan.SubjectiveObjectivePl,
		nganasan.SubjectiveNonObjective,
	} {
		resp.Conjugations = append(resp.Conjugations, toTableJSON(p.ConjugationTable(c, nganasan.TenseNone)))
	}
	for _, m := range nganasan.Moods {
		resp.Moods = append(resp.Moods, toTableJSON(p.MoodTable(m)))
	}

	resp.Pronouns["personal"] = gridJSON(p.Personal)
	resp.Pronouns["reflexive"] = gridJSON(p.Reflexive)
	for _, s := range nganasan.DemonstrativeSubtypes {
		resp.Pronouns["demonstrative"] = append(resp.Pronouns["demonstrative"], cellJSON{Key: s, Suffixes: p.Demonstratives(s)})
	}
	for _, s := range nganasan.InterrogativeSubtypes {
		resp.Pronouns["interrogative"] = append(resp.Pronouns["interrogative"], cellJSON{Key: s, Suffixes: p.Interrogatives(s)})
	}

	for _, d := range p.Derivations() {
		resp.Derivations[d.Type.String()] = d.Template
	}
	for _, a := range p.Alternations() {
		resp.Alternations[a.Name] = [2]string{a.Source, a.Target}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		util.LogError(errors.Wrap(err, "encode response"))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		util.LogError(errors.Wrap(err, "write response"))
	}
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(c *frontend.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		word := frontend.Clean(q.Get("word"))
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		pos, err := frontend.ParsePOS(q.Get("pos"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		asText := q.Get("format") == "text"

		res, err := c.Analyze(word, pos)
		if err != nil {
			util.LogBadf("analyze %q: %v", word, err)
			if asText {
				writeText(w, http.StatusInternalServerError, frontend.FormatFailure(word, err))
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		if asText {
			writeText(w, http.StatusOK, frontend.Format(word, res))
			return
		}
		writeJSON(w, http.StatusOK, frontend.NewAnalysis(word, res))
	}
}

func handleAnalyzeText(a *nganasan.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results := a.AnalyzeText(frontend.Clean(body.Text))
		out := make([]frontend.Analysis, 0, len(results))
		for _, res := range results {
			out = append(out, frontend.NewAnalysis(res.Token, res.Result))
		}
		writeJSON(w, http.StatusOK, analyzeTextResponse{Results: out})
	}
}

func handleParadigms(a *nganasan.Analyzer) http.HandlerFunc {
	resp := buildParadigms(a.Paradigms())
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		util.LogDebugf("%s %s", r.Method, r.URL)
		next.ServeHTTP(w, r)
	})
}

func newServer(a *nganasan.Analyzer, cfg *Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", handleAnalyzeText(a))
	mux.HandleFunc("/api/analyze", handleAnalyze(frontend.NewCache(a, cfg.CacheTTL)))
	mux.HandleFunc("/api/paradigms", handleParadigms(a))
	mux.HandleFunc("/healthcheck", handleHealthcheck)

	var h http.Handler = mux
	if cfg.IsDevelopment {
		h = logRequests(h)
	}
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(h)
}

// ---- main ---------------------------------------------------------------

func main() {
	configFile := flag.String("conf", "", "override config file")
	dataFile := flag.String("data", "", "paradigm data file (default: built-in tables)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	file, err := loadConfigFile(*configFile)
	if err != nil {
		util.LogError(err)
		return
	}
	cfg := LoadConfig(file.Section("server"))
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *addr != "" {
		cfg.Listen = *addr
	}

	var a *nganasan.Analyzer
	if cfg.DataFile != "" {
		util.LogGoodf("loading paradigms from %s", cfg.DataFile)
		a, err = nganasan.NewFromFile(cfg.DataFile)
	} else {
		a, err = nganasan.New()
	}
	if err != nil {
		util.LogError(errors.Wrap(err, "load paradigms"))
		return
	}
	util.LogGood("paradigms loaded")
	if cfg.IsDevelopment {
		util.LogWarn("development mode, logging every request")
	}

	util.LogGoodf("listening on %s", cfg.Listen)
	util.LogIfError(errors.Wrap(http.ListenAndServe(cfg.Listen, newServer(a, cfg)), "listen"))
}
