package httpapi

import (
	"fmt"
	"strings"
	"time"

	"revcast/internal/config"
	"revcast/internal/forecast"
)

// Date is a date-only JSON value in YYYY-MM-DD form.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("close_date must be a YYYY-MM-DD date")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("close_date %q is not a valid YYYY-MM-DD date", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// OpportunityPayload is one deal as it arrives on the wire.
type OpportunityPayload struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Probability float64 `json:"probability"`
	CloseDate   Date    `json:"close_date"`
}

// SimulationRequest is the full POST /api/v1/simulate payload. Optional
// fields default from configuration during validation.
type SimulationRequest struct {
	Opportunities   []OpportunityPayload `json:"opportunities"`
	NumSimulations  *int                 `json:"num_simulations,omitempty"`
	TimeHorizonDays *int                 `json:"time_horizon_days,omitempty"`
	RevenueTargets  []float64            `json:"revenue_targets,omitempty"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON body of every non-2xx answer. Handlers always
// reply JSON, never HTML, because upstream callout parsers choke on HTML.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Stable machine-readable error codes.
const (
	CodeBadRequest         = "bad_request"
	CodeInvalidOpportunity = "invalid_opportunity"
	CodeSimCountOutOfRange = "simulation_count_out_of_range"
	CodeInternalError      = "internal_server_error"
)

// ValidationError carries a stable code alongside the human message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ResolvedRequest is a validated request with all defaults applied, ready to
// hand to the engine.
type ResolvedRequest struct {
	Opportunities   []forecast.Opportunity
	NumSimulations  int
	TimeHorizonDays *int
	RevenueTargets  []float64
}

// Validate checks the request against the configured limits and resolves
// optional fields once, before the engine runs. Bad values are rejected,
// never clamped.
func (r *SimulationRequest) Validate(cfg *config.AppConfig) (*ResolvedRequest, *ValidationError) {
	if len(r.Opportunities) == 0 {
		return nil, invalidf(CodeBadRequest, "opportunities must contain at least one entry")
	}
	if len(r.Opportunities) > cfg.MaxOpportunities {
		return nil, invalidf(CodeBadRequest, "too many opportunities: %d exceeds the maximum of %d", len(r.Opportunities), cfg.MaxOpportunities)
	}

	opps := make([]forecast.Opportunity, 0, len(r.Opportunities))
	for i, o := range r.Opportunities {
		if o.Amount < 0 {
			return nil, invalidf(CodeInvalidOpportunity, "opportunity %d: amount must not be negative, got %v", i, o.Amount)
		}
		if o.Amount > cfg.MaxOpportunityAmount {
			return nil, invalidf(CodeInvalidOpportunity, "opportunity %d: amount %v exceeds the maximum of %v", i, o.Amount, cfg.MaxOpportunityAmount)
		}
		if o.Probability < 0 || o.Probability > 1 {
			return nil, invalidf(CodeInvalidOpportunity, "opportunity %d: probability must be between 0 and 1, got %v", i, o.Probability)
		}
		if o.CloseDate.IsZero() {
			return nil, invalidf(CodeInvalidOpportunity, "opportunity %d: close_date is required", i)
		}
		opps = append(opps, forecast.Opportunity{
			Name:        o.Name,
			Amount:      o.Amount,
			Probability: o.Probability,
			CloseDate:   o.CloseDate.Time,
		})
	}

	numSims := cfg.DefaultNumSimulations
	if r.NumSimulations != nil {
		numSims = *r.NumSimulations
	}
	if numSims < 1 || numSims > cfg.MaxNumSimulations {
		return nil, invalidf(CodeSimCountOutOfRange, "num_simulations must be between 1 and %d, got %d", cfg.MaxNumSimulations, numSims)
	}

	if r.TimeHorizonDays != nil && *r.TimeHorizonDays < 0 {
		return nil, invalidf(CodeBadRequest, "time_horizon_days must not be negative, got %d", *r.TimeHorizonDays)
	}

	// An absent or empty target list falls back to the configured presets.
	targets := r.RevenueTargets
	if len(targets) == 0 {
		targets = cfg.DefaultRevenueTargets
	} else {
		for _, t := range targets {
			if t <= 0 {
				return nil, invalidf(CodeBadRequest, "revenue targets must be positive, got %v", t)
			}
		}
	}

	return &ResolvedRequest{
		Opportunities:   opps,
		NumSimulations:  numSims,
		TimeHorizonDays: r.TimeHorizonDays,
		RevenueTargets:  targets,
	}, nil
}
