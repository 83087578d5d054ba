// fakejenkins is an in-memory stand-in for a Jenkins master covering the
// REST subset jenkinsctl drives: crumb issuance, job status, create,
// delete, enable, disable and config get/set.
//
// It backs package tests and ships as a small dev harness binary.
package fakejenkins

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/rastaman/jenkinsctl/internal/utils"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	wait = 30 * time.Second

	crumbField    = "Jenkins-Crumb"
	noCrumbReject = "HTTP ERROR 403 No valid crumb was included in the request"
)

type job struct {
	config   string
	disabled bool
}

// Server holds the fake master's state behind a mux router.
type Server struct {
	mu           sync.Mutex
	jobs         map[string]*job
	crumb        string
	requireCrumb bool
	debug        bool
	exit         chan os.Signal
	httpserver   *http.Server
}

// New builds a fake master. With requireCrumb set, POSTs without the
// current crumb header are rejected the way a real master rejects them.
func New(requireCrumb, debug bool) *Server {
	return &Server{
		jobs:         map[string]*job{},
		crumb:        utils.NewRandomID(),
		requireCrumb: requireCrumb,
		debug:        debug,
		exit:         make(chan os.Signal, 1),
	}
}

// Router returns the route table; tests mount this on an httptest server.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/crumbIssuer/api/json", s.issueCrumb).Methods(http.MethodGet)
	router.HandleFunc("/createItem", s.createItem).Methods(http.MethodPost)
	router.HandleFunc("/job/{name}/api/json", s.jobInfo).Methods(http.MethodGet)
	router.HandleFunc("/job/{name}/config.xml", s.jobConfig).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/job/{name}/doDelete", s.deleteJob).Methods(http.MethodPost)
	router.HandleFunc("/job/{name}/enable", s.enableJob).Methods(http.MethodPost)
	router.HandleFunc("/job/{name}/disable", s.disableJob).Methods(http.MethodPost)

	if s.debug {
		router.Use(loggingMiddleware)
	}
	return router
}

// ServeForever runs the fake master until interrupted.
func (s *Server) ServeForever(addr string) error {
	s.httpserver = &http.Server{
		Handler:      s.Router(),
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		log.Println("Listening on", s.httpserver.Addr)
		if err := s.httpserver.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	signal.Notify(s.exit, os.Interrupt)
	<-s.exit

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return s.httpserver.Shutdown(ctx)
}

// Close stops a ServeForever loop.
func (s *Server) Close() error {
	s.exit <- os.Interrupt
	return nil
}

// Crumb returns the crumb the master currently accepts.
func (s *Server) Crumb() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.crumb
}

// RotateCrumb invalidates the current crumb, as a master restart would.
func (s *Server) RotateCrumb() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crumb = utils.NewRandomID()
}

// checkCrumb enforces the crumb on mutating requests. Returns false (and
// writes the rejection) if the request should go no further.
func (s *Server) checkCrumb(w http.ResponseWriter, r *http.Request) bool {
	if !s.requireCrumb {
		return true
	}
	if r.Header.Get(crumbField) == s.crumb {
		return true
	}
	http.Error(w, noCrumbReject, http.StatusForbidden)
	return false
}

func (s *Server) issueCrumb(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	json.NewEncoder(w).Encode(&structs.Crumb{CrumbRequestField: crumbField, Crumb: s.crumb})
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.checkCrumb(w, r) {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "Query parameter 'name' is required", http.StatusBadRequest)
		return
	}
	if _, ok := s.jobs[name]; ok {
		http.Error(w, "A job already exists with the name "+name, http.StatusBadRequest)
		return
	}

	config, err := readBody(w, r)
	if err != nil {
		return
	}
	s.jobs[name] = &job{config: config}
}

func (s *Server) jobInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := mux.Vars(r)["name"]
	j, ok := s.jobs[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	color := "notbuilt"
	if j.disabled {
		color = "disabled"
	}
	json.NewEncoder(w).Encode(&structs.JobInfo{
		Name:      name,
		URL:       "http://" + r.Host + "/job/" + name + "/",
		Color:     color,
		Buildable: !j.disabled,
	})
}

func (s *Server) jobConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := mux.Vars(r)["name"]
	j, ok := s.jobs[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(j.config))
		return
	}

	if !s.checkCrumb(w, r) {
		return
	}
	config, err := readBody(w, r)
	if err != nil {
		return
	}
	j.config = config
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	s.toggleOp(w, r, func(name string, _ *job) {
		delete(s.jobs, name)
	})
}

func (s *Server) enableJob(w http.ResponseWriter, r *http.Request) {
	s.toggleOp(w, r, func(_ string, j *job) {
		j.disabled = false
	})
}

func (s *Server) disableJob(w http.ResponseWriter, r *http.Request) {
	s.toggleOp(w, r, func(_ string, j *job) {
		j.disabled = true
	})
}

// toggleOp wraps the shared crumb / existence plumbing of the body-less
// per-job mutations.
func (s *Server) toggleOp(w http.ResponseWriter, r *http.Request, fn func(string, *job)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.checkCrumb(w, r) {
		return
	}

	name := mux.Vars(r)["name"]
	j, ok := s.jobs[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	fn(name, j)
}
