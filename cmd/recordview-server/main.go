package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-recordview/pkg/client"
	"github.com/goliatone/go-recordview/pkg/render"
	"github.com/goliatone/go-recordview/pkg/viewer"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	baseURL := os.Getenv("RECORDVIEW_BASE_URL")
	if baseURL == "" {
		log.Fatal("RECORDVIEW_BASE_URL is required")
	}
	addr := os.Getenv("RECORDVIEW_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	backend, err := client.New(baseURL)
	if err != nil {
		log.Fatalf("configure client: %v", err)
	}

	v := viewer.New(
		viewer.WithClient(backend),
		viewer.WithLister(backend),
		viewer.WithLogf(log.Printf),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/records/{type}/{id}", viewPage(v))
	r.Get("/records/{type}/{id}.json", viewJSON(v))

	log.Printf("recordview listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func viewPage(v *viewer.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := v.Render(r.Context(), requestFrom(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(out)
	}
}

func viewJSON(v *viewer.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := v.View(r.Context(), requestFrom(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

func requestFrom(r *http.Request) viewer.Request {
	query := r.URL.Query()
	return viewer.Request{
		RecordType:   chi.URLParam(r, "type"),
		RecordID:     chi.URLParam(r, "id"),
		ThemeName:    query.Get("theme"),
		ThemeVariant: query.Get("variant"),
		RenderOptions: render.RenderOptions{
			Sections: query["section"],
		},
	}
}
