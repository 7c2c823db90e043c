package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petspa/salonsite/pkg/buildinfo"
	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/page"
	"github.com/petspa/salonsite/pkg/palette"
	"github.com/petspa/salonsite/pkg/profile"
	"github.com/petspa/salonsite/pkg/seo"
	"github.com/petspa/salonsite/pkg/storage"
)

const maxBodyBytes = 64 << 10

// session holds one request's view of a visitor's preferences. Both cells
// write the same side channel.
type session struct {
	attrs   *profile.Attributes
	profile *profile.Store
	palette *palette.Store
}

// session rehydrates the visitor's cells before any handler can change them.
func (s *Server) session(ctx context.Context) *session {
	st := storage.Scoped(s.storage, storage.VisitorPrefix(VisitorID(ctx)))
	attrs := profile.NewAttributes()
	sess := &session{
		attrs:   attrs,
		profile: profile.New(st, attrs, profile.WithLogger(s.logger)),
		palette: palette.NewStore(st, attrs, s.logger),
	}
	sess.profile.Rehydrate(ctx)
	sess.palette.Rehydrate(ctx)
	return sess
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.session(ctx)
	doc := s.content.Current()

	st := page.State{
		Snapshot:     sess.profile.Current(),
		Palette:      sess.palette.Current(),
		Presentation: sess.attrs,
		Content:      doc.Site,
		Sections:     s.sections,
		Sent:         r.URL.Query().Get("sent") == "1",
		Year:         s.now().Year(),
	}
	key := s.keyer.PageKey(cache.PageKeyOpts{
		Profile:        string(st.Snapshot.Profile),
		Palette:        string(st.Palette.ID),
		ContentVersion: doc.Version,
		Sections:       s.sectionNames(),
		Sent:           st.Sent,
		Year:           st.Year,
	})

	body, err := s.render(ctx, key, st)
	if err != nil {
		s.logger.Error("render failed", "profile", st.Snapshot.Profile, "err", err)
		http.Error(w, "page unavailable", errors.HTTPStatus(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "private, no-cache")
	_, _ = w.Write(body)
}

// render returns the page for key from the cache, rendering and storing it
// on a miss. Concurrent misses for the same key share one render.
func (s *Server) render(ctx context.Context, key string, st page.State) ([]byte, error) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		// Shared by every waiter, so one disconnecting client must not
		// cancel the others.
		ctx := context.WithoutCancel(ctx)
		data, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("page cache read failed", "err", err)
		} else if hit {
			return data, nil
		}

		var buf bytes.Buffer
		if err := s.composer.Render(ctx, &buf, st); err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, buf.Bytes(), s.ttl); err != nil {
			s.logger.Warn("page cache write failed", "err", err)
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Server) sectionNames() []string {
	var names []string
	if s.sections.FAQ {
		names = append(names, page.SectionFAQ)
	}
	if s.sections.Pricing {
		names = append(names, page.SectionPricing)
	}
	return names
}

func (s *Server) handleLayoutForm(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.Context())
	if _, err := sess.profile.SetProfile(r.Context(), r.PostFormValue("profile")); err != nil {
		http.Error(w, errors.UserMessage(err), errors.HTTPStatus(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handlePaletteForm(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r.Context())
	if err := sess.palette.Set(r.Context(), r.PostFormValue("palette")); err != nil {
		http.Error(w, errors.UserMessage(err), errors.HTTPStatus(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	form := contactFromValues(r.PostForm)
	if err := form.Validate(); err != nil {
		http.Error(w, errors.UserMessage(err), errors.HTTPStatus(err))
		return
	}
	// Nothing is delivered; the request is only recorded.
	s.logger.Info("contact request",
		"visitor", VisitorID(r.Context()),
		"name", form.Name,
		"pet", form.Pet,
		"has_email", form.Email != "",
	)
	http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
}

// profileView is the API shape of one profile.
type profileView struct {
	ID          layout.Profile `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	entries := layout.All()
	out := make([]profileView, 0, len(entries))
	for _, e := range entries {
		out = append(out, profileView{ID: e.Profile, Name: e.Config.Name, Description: e.Config.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p := layout.Profile(strings.ToLower(chi.URLParam(r, "profile")))
	cfg, err := layout.Lookup(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile.Snapshot{Profile: p, Config: cfg})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session(r.Context()).profile.Current())
}

func (s *Server) handlePutLayout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profile string `json:"profile"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	snap, err := s.session(r.Context()).profile.SetProfile(r.Context(), req.Profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, palette.All())
}

func (s *Server) handleGetPalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session(r.Context()).palette.Current())
}

func (s *Server) handlePutPalette(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Palette string `json:"palette"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	sess := s.session(r.Context())
	if err := sess.palette.Set(r.Context(), req.Palette); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.palette.Current())
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := seo.WriteSitemap(w, s.baseURL, s.started); err != nil {
		s.logger.Error("sitemap", "err", err)
	}
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, seo.Robots(s.baseURL))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"build":   buildinfo.Get(),
		"content": s.content.Current().Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with the status for err's code and a body of the form
// {"error": code, "message": text}.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), map[string]string{
		"error":   string(code),
		"message": errors.UserMessage(err),
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed JSON body")
	}
	return nil
}
