package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"flyergen/internal/flyer"
	"flyergen/internal/prompt"
)

type catalogResponse struct {
	flyer.Catalog
	UniversalNegatives []string `json:"universalNegatives"`
}

type compileResponse struct {
	flyer.PromptPackage
	ModelAspectRatio string `json:"modelAspectRatio"`
	Language         string `json:"language"`
}

type batchRequest struct {
	Items []json.RawMessage `json:"items"`
}

type batchResult struct {
	Index  int              `json:"index"`
	Result *compileResponse `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

type batchResponse struct {
	Results   []batchResult `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

type refineRequest struct {
	Prompt   string `json:"prompt"`
	Feedback string `json:"feedback"`
}

type refineResponse struct {
	MainPrompt string   `json:"mainPrompt"`
	Applied    []string `json:"applied"`
}

type negativeResponse struct {
	NegativePrompt string `json:"negativePrompt"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Catalog:            s.catalog,
		UniversalNegatives: prompt.UniversalNegatives(),
	})
}

// handleNegative previews the negative prompt for a category and a
// comma-separated avoid list.
func (s *Server) handleNegative(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := flyer.Category(strings.TrimSpace(q.Get("category")))
	writeJSON(w, http.StatusOK, negativeResponse{
		NegativePrompt: prompt.BuildNegativePrompt(category, splitCSV(q.Get("avoid"))),
	})
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	resp, err := compile(body, r.Header.Get("Accept-Language"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	s.logger.Info("flyer compiled",
		"language", resp.Language,
		"aspect_ratio", resp.AspectRatio,
		"prompt_len", len(resp.MainPrompt),
	)
	writeJSON(w, http.StatusOK, resp)
}

// handleCompileBatch compiles every item independently; one bad item does
// not fail the others.
func (s *Server) handleCompileBatch(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	var req batchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "items is required"})
		return
	}
	if len(req.Items) > s.batchMaxItems {
		writeJSON(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("too many items: %d (max %d)", len(req.Items), s.batchMaxItems)})
		return
	}

	acceptLanguage := r.Header.Get("Accept-Language")
	results := make([]batchResult, len(req.Items))

	eg, egCtx := errgroup.WithContext(r.Context())
	eg.SetLimit(s.batchConcurrency)
	for i, item := range req.Items {
		i, item := i, item
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := compile(item, acceptLanguage)
			if err != nil {
				results[i] = batchResult{Index: i, Error: err.Error()}
				return nil
			}
			results[i] = batchResult{Index: i, Result: &res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.logger.Warn("batch compile aborted", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "request cancelled"})
		return
	}

	resp := batchResponse{Results: results}
	for _, res := range results {
		if res.Error != "" {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}
	s.logger.Info("flyer batch compiled", "items", len(results), "failed", resp.Failed)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "prompt is required"})
		return
	}
	if strings.TrimSpace(req.Feedback) == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "feedback is required"})
		return
	}

	applied := prompt.MatchFeedback(req.Feedback)
	if applied == nil {
		applied = []string{}
	}
	writeJSON(w, http.StatusOK, refineResponse{
		MainPrompt: prompt.ApplyFeedback(req.Prompt, req.Feedback),
		Applied:    applied,
	})
}

func (s *Server) handleRefineNoText(w http.ResponseWriter, r *http.Request) {
	var req refineRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "prompt is required"})
		return
	}

	writeJSON(w, http.StatusOK, refineResponse{
		MainPrompt: prompt.BuildNoTextRefinement(req.Prompt),
		Applied:    []string{},
	})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := s.readBody(w, r)
	if err != nil {
		writeBodyError(w, err)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return false
	}
	return true
}

// compile decodes one configuration and builds its package. An omitted
// language is taken from the Accept-Language header when one is sent.
func compile(data []byte, acceptLanguage string) (compileResponse, error) {
	cfg, err := flyer.DecodeConfiguration(data)
	if err != nil {
		return compileResponse{}, err
	}
	if err := cfg.Validate(); err != nil {
		return compileResponse{}, err
	}
	if cfg.Language == "" && strings.TrimSpace(acceptLanguage) != "" {
		cfg.Language = flyer.MatchAcceptLanguage(acceptLanguage)
	}

	pkg := prompt.Build(cfg)
	resolved := cfg.WithDefaults()
	return compileResponse{
		PromptPackage:    pkg,
		ModelAspectRatio: resolved.Output.AspectRatio.ModelRatio(),
		Language:         string(resolved.Language),
	}, nil
}
