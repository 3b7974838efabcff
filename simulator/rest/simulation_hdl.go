package rest

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/Gthulhu/schedsim/simulator/domain"
)

type Process struct {
	ID       string `json:"id"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority int    `json:"priority,omitempty"`
}

type RunSimulationRequest struct {
	Algorithm string    `json:"algorithm"`
	Quantum   int       `json:"quantum,omitempty"`
	Processes []Process `json:"processes"`
}

type CompareAlgorithmsRequest struct {
	Quantum   int       `json:"quantum,omitempty"`
	Processes []Process `json:"processes"`
}

type Simulation struct {
	ID          string              `json:"id"`
	Fingerprint string              `json:"fingerprint"`
	Algorithm   string              `json:"algorithm"`
	Label       string              `json:"label"`
	Quantum     int                 `json:"quantum,omitempty"`
	Results     []scheduler.Result  `json:"results"`
	Slices      []scheduler.Slice   `json:"slices"`
	Timeline    []scheduler.Bar     `json:"timeline"`
	Summary     scheduler.Summary   `json:"summary"`
	Processes   []scheduler.Process `json:"processes,omitempty"`
	CreatedTime int64               `json:"created_time"`
}

type ListSimulationsResponse struct {
	Simulations []*Simulation `json:"simulations"`
}

type Algorithm struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Preemptive bool   `json:"preemptive"`
}

type ListAlgorithmsResponse struct {
	Algorithms []Algorithm `json:"algorithms"`
}

func toDomainProcesses(in []Process) []scheduler.Process {
	out := make([]scheduler.Process, len(in))
	for i, p := range in {
		out[i] = scheduler.Process{ID: p.ID, Arrival: p.Arrival, Burst: p.Burst, Priority: p.Priority}
	}
	return out
}

func (h *Handler) convertDomainSimulation(sim *domain.Simulation, withProcesses bool) *Simulation {
	resp := &Simulation{
		ID:          sim.ID.Hex(),
		Fingerprint: sim.Fingerprint,
		Algorithm:   string(sim.Algorithm),
		Label:       sim.Algorithm.Label(),
		Quantum:     sim.Quantum,
		Results:     sim.Results,
		Slices:      sim.Slices,
		Timeline:    scheduler.Timeline(sim.Results),
		Summary:     sim.Summary,
		CreatedTime: sim.CreatedTime,
	}
	if withProcesses {
		resp.Processes = sim.Processes
	}
	return resp
}

// ListAlgorithms godoc
// @Summary List scheduling algorithms
// @Tags Simulations
// @Produce json
// @Success 200 {object} SuccessResponse[ListAlgorithmsResponse]
// @Router /api/v1/algorithms [get]
func (h *Handler) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	resp := ListAlgorithmsResponse{Algorithms: make([]Algorithm, len(scheduler.Algorithms))}
	for i, alg := range scheduler.Algorithms {
		resp.Algorithms[i] = Algorithm{Name: string(alg), Label: alg.Label(), Preemptive: alg.Preemptive()}
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, NewSuccessResponse(&resp))
}

// RunSimulation godoc
// @Summary Run a simulation
// @Description Schedule the given processes with one algorithm and store the outcome.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RunSimulationRequest true "Workload and algorithm"
// @Success 200 {object} SuccessResponse[Simulation]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/simulations [post]
func (h *Handler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RunSimulationRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	alg, err := scheduler.ParseAlgorithm(req.Algorithm)
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}

	sim, err := h.Svc.RunSimulation(ctx, &domain.SimulationRequest{
		Algorithm: alg,
		Quantum:   req.Quantum,
		Processes: toDomainProcesses(req.Processes),
		ClientID:  ClientIDFromContext(ctx),
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(h.convertDomainSimulation(sim, false)))
}

// CompareAlgorithms godoc
// @Summary Compare every algorithm
// @Description Run all five algorithms over one workload, best average waiting time first.
// @Tags Simulations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompareAlgorithmsRequest true "Workload"
// @Success 200 {object} SuccessResponse[ListSimulationsResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/simulations/compare [post]
func (h *Handler) CompareAlgorithms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CompareAlgorithmsRequest
	if err := h.JSONBind(r, &req); err != nil {
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sims, err := h.Svc.CompareAlgorithms(ctx, &domain.CompareRequest{
		Quantum:   req.Quantum,
		Processes: toDomainProcesses(req.Processes),
		ClientID:  ClientIDFromContext(ctx),
	})
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := ListSimulationsResponse{Simulations: make([]*Simulation, len(sims))}
	for i, sim := range sims {
		resp.Simulations[i] = h.convertDomainSimulation(sim, false)
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// ListSimulations godoc
// @Summary List stored simulations
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param algorithm query string false "Comma separated algorithm names"
// @Param fingerprint query string false "Workload fingerprint"
// @Param limit query int false "Maximum number of simulations"
// @Success 200 {object} SuccessResponse[ListSimulationsResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/simulations [get]
func (h *Handler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	opt := &domain.QuerySimulationOptions{}
	if raw := query.Get("algorithm"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			alg, err := scheduler.ParseAlgorithm(name)
			if err != nil {
				h.HandleError(ctx, w, err)
				return
			}
			opt.Algorithms = append(opt.Algorithms, alg)
		}
	}
	if fp := query.Get("fingerprint"); fp != "" {
		opt.Fingerprints = []string{fp}
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		opt.Limit = limit
	}
	if clientID := ClientIDFromContext(ctx); clientID != "" {
		opt.ClientIDs = []string{clientID}
	}

	if err := h.Svc.ListSimulations(ctx, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := ListSimulationsResponse{Simulations: make([]*Simulation, len(opt.Result))}
	for i, sim := range opt.Result {
		resp.Simulations[i] = h.convertDomainSimulation(sim, false)
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

// GetSimulation godoc
// @Summary Get a stored simulation
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} SuccessResponse[Simulation]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/simulations/{id} [get]
func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sim, err := h.Svc.GetSimulation(ctx, ClientIDFromContext(ctx), h.GetPathParam(r, "id"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(h.convertDomainSimulation(sim, true)))
}

// GetSimulationReport godoc
// @Summary Text report of a stored simulation
// @Tags Simulations
// @Produce plain
// @Security BearerAuth
// @Param id path string true "Simulation ID"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/simulations/{id}/report [get]
func (h *Handler) GetSimulationReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var buf bytes.Buffer
	if err := h.Svc.RenderReport(ctx, ClientIDFromContext(ctx), h.GetPathParam(r, "id"), &buf); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// DeleteSimulation godoc
// @Summary Delete a stored simulation
// @Tags Simulations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} SuccessResponse[EmptyResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/simulations/{id} [delete]
func (h *Handler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Svc.DeleteSimulation(ctx, ClientIDFromContext(ctx), h.GetPathParam(r, "id")); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse[EmptyResponse](nil))
}
