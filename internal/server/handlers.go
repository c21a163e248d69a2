package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/cv-paginator/internal/db"
	"github.com/jonathan/cv-paginator/internal/logger"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/rendering"
	"github.com/jonathan/cv-paginator/internal/schemas"
	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/jonathan/cv-paginator/internal/validation"
	"golang.org/x/sync/errgroup"
)

// maxBodyBytes caps request bodies; profiles are small JSON documents.
const maxBodyBytes = 4 << 20

// LayoutRequest is the body of /paginate, /flow and /export
type LayoutRequest struct {
	Profile     json.RawMessage       `json:"profile" validate:"required"`
	Sections    []types.SectionConfig `json:"sections,omitempty" validate:"omitempty,dive"`
	Orientation string                `json:"orientation,omitempty" validate:"omitempty,oneof=portrait landscape"`
	MaxPages    int                   `json:"max_pages,omitempty" validate:"gte=0,lte=100"`
}

// ExportRequest is the body of /export
type ExportRequest struct {
	LayoutRequest
	Title       string `json:"title,omitempty" validate:"max=200"`
	PageNumbers bool   `json:"page_numbers,omitempty"`
}

// BatchRequest is the body of /paginate/batch
type BatchRequest struct {
	Requests []LayoutRequest `json:"requests" validate:"required,min=1,max=50,dive"`
}

// PaginateResponse represents the response for /paginate
type PaginateResponse struct {
	Pages      []types.Page      `json:"pages"`
	PageCount  int               `json:"page_count"`
	Truncated  bool              `json:"truncated"`
	Violations []types.Violation `json:"violations,omitempty"`
	ExportID   *uuid.UUID        `json:"export_id,omitempty"`
}

// FlowResponse represents the response for /flow
type FlowResponse struct {
	Pages     []pagination.FlowPage `json:"pages"`
	PageCount int                   `json:"page_count"`
	Truncated bool                  `json:"truncated"`
}

// BatchResponse represents the response for /paginate/batch, in request order
type BatchResponse struct {
	Results []PaginateResponse `json:"results"`
}

// layoutJob is a decoded and validated layout request
type layoutJob struct {
	sections []types.Section
	opts     pagination.Options
}

// handlePaginate runs the page allocator over a profile
func (s *Server) handlePaginate(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	job, err := s.prepare(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := s.paginate(job)
	logger.FromContext(r.Context()).Debug("paginated", "pages", resp.PageCount, "truncated", resp.Truncated)
	w.Header().Set("X-Page-Count", strconv.Itoa(resp.PageCount))
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleFlow runs the block flow engine over a profile
func (s *Server) handleFlow(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	job, err := s.prepare(req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res := pagination.FlowSections(job.sections, job.opts)
	w.Header().Set("X-Page-Count", strconv.Itoa(res.PageCount()))
	s.jsonResponse(w, http.StatusOK, FlowResponse{
		Pages:     res.Pages,
		PageCount: res.PageCount(),
		Truncated: res.Truncated,
	})
}

// handleExport renders the flow layout of a profile as a PDF
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	job, err := s.prepare(req.LayoutRequest)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res := pagination.FlowSections(job.sections, job.opts)
	var buf bytes.Buffer
	err = s.renderer.Render(&buf, res, rendering.RenderOptions{
		Title:       req.Title,
		Creator:     "cv-paginator",
		Geometry:    job.opts.Geometry,
		PageNumbers: req.PageNumbers,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.Header().Set("X-Page-Count", strconv.Itoa(res.PageCount()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write PDF", "error", err)
	}
}

// handleBatch paginates several profiles concurrently
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	jobs := make([]layoutJob, len(req.Requests))
	for i, item := range req.Requests {
		job, err := s.prepare(item)
		if err != nil {
			s.fail(w, r, fmt.Errorf("request %d: %w", i, err))
			return
		}
		jobs[i] = job
	}

	results := make([]PaginateResponse, len(jobs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.batchLimit)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.paginate(job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{Results: results})
}

// handleProfilePages paginates a stored profile, optionally with a stored template
func (s *Server) handleProfilePages(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, &ErrStoreUnavailable{})
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "id", Message: "invalid UUID"})
		return
	}

	rec, err := s.store.GetProfile(r.Context(), profileID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if rec == nil {
		s.fail(w, r, &ErrNotFound{Resource: "profile", ID: profileID})
		return
	}

	layout := s.layout
	configs := pagination.DefaultSectionConfigs()
	var templateID *uuid.UUID

	if raw := r.URL.Query().Get("template_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.fail(w, r, &ErrValidation{Field: "template_id", Message: "invalid UUID"})
			return
		}
		tmpl, err := s.store.GetTemplate(r.Context(), id)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if tmpl == nil {
			s.fail(w, r, &ErrNotFound{Resource: "template", ID: id})
			return
		}
		templateID = &id
		configs = tmpl.Sections
		if tmpl.Orientation != "" {
			layout.Orientation = string(tmpl.Orientation)
		}
	}

	if o := r.URL.Query().Get("orientation"); o != "" {
		if !types.Orientation(o).Valid() {
			s.fail(w, r, &ErrValidation{Field: "orientation", Message: "oneof"})
			return
		}
		layout.Orientation = o
	}

	opts := layout.PaginationOptions()
	resp := s.paginate(layoutJob{
		sections: pagination.BuildSections(rec.Profile, configs),
		opts:     opts,
	})

	exportID, err := s.store.SaveExport(r.Context(), db.ExportInput{
		ProfileID:   profileID,
		TemplateID:  templateID,
		Orientation: opts.Geometry.Orientation,
		Engine:      db.EngineAllocate,
		PageCount:   resp.PageCount,
		Truncated:   resp.Truncated,
	})
	if err != nil {
		logger.FromContext(r.Context()).Warn("failed to record export", "profile_id", profileID, "error", err)
	} else {
		resp.ExportID = &exportID
	}

	w.Header().Set("X-Page-Count", strconv.Itoa(resp.PageCount))
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) paginate(job layoutJob) PaginateResponse {
	res := pagination.Allocate(job.sections, job.opts)
	resp := PaginateResponse{
		Pages:     res.Pages,
		PageCount: res.PageCount(),
		Truncated: res.Truncated,
	}
	if vs := validation.CheckPages(res); vs != nil {
		resp.Violations = vs.Violations
	}
	return resp
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validator.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

// prepare checks the profile against its schema and builds the engine input.
func (s *Server) prepare(req LayoutRequest) (layoutJob, error) {
	if err := schemas.ValidateProfile(req.Profile); err != nil {
		return layoutJob{}, err
	}
	var profile types.Profile
	if err := json.Unmarshal(req.Profile, &profile); err != nil {
		return layoutJob{}, &ErrValidation{Field: "profile", Message: err.Error()}
	}

	configs := req.Sections
	if len(configs) == 0 {
		configs = pagination.DefaultSectionConfigs()
	}

	layout := s.layout
	if req.Orientation != "" {
		layout.Orientation = req.Orientation
	}
	if req.MaxPages > 0 {
		layout.MaxPages = req.MaxPages
	}

	return layoutJob{
		sections: pagination.BuildSections(&profile, configs),
		opts:     layout.PaginationOptions(),
	}, nil
}

// validationError reports the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Namespace(), Message: verrs[0].Tag()}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
