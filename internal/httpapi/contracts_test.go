package httpapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revcast/internal/config"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		DefaultNumSimulations: 10_000,
		MaxNumSimulations:     100_000,
		MaxOpportunities:      500,
		MaxOpportunityAmount:  10_000_000_000,
		DefaultRevenueTargets: []float64{1_000_000, 5_000_000, 10_000_000, 25_000_000, 50_000_000},
		HistogramBuckets:      12,
	}
}

func payload(amount, probability float64) OpportunityPayload {
	return OpportunityPayload{
		Name:        "deal",
		Amount:      amount,
		Probability: probability,
		CloseDate:   Date{time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)},
	}
}

func TestValidate_DefaultsApplied(t *testing.T) {
	cfg := testConfig()
	req := SimulationRequest{Opportunities: []OpportunityPayload{payload(100_000, 0.5)}}

	resolved, verr := req.Validate(cfg)

	require.Nil(t, verr)
	assert.Equal(t, 10_000, resolved.NumSimulations)
	assert.Equal(t, cfg.DefaultRevenueTargets, resolved.RevenueTargets)
	assert.Nil(t, resolved.TimeHorizonDays)
	require.Len(t, resolved.Opportunities, 1)
	assert.Equal(t, 100_000.0, resolved.Opportunities[0].Amount)
}

func TestValidate_EmptyTargetListFallsBack(t *testing.T) {
	req := SimulationRequest{
		Opportunities:  []OpportunityPayload{payload(100_000, 0.5)},
		RevenueTargets: []float64{},
	}

	resolved, verr := req.Validate(testConfig())

	require.Nil(t, verr)
	assert.Equal(t, testConfig().DefaultRevenueTargets, resolved.RevenueTargets)
}

func TestValidate_Rejections(t *testing.T) {
	horizon := -1
	zero := 0
	tooMany := 200_000

	tests := []struct {
		name     string
		mutate   func(*SimulationRequest)
		wantCode string
	}{
		{"NegativeAmount", func(r *SimulationRequest) {
			r.Opportunities[0].Amount = -100
		}, CodeInvalidOpportunity},
		{"AmountAboveCeiling", func(r *SimulationRequest) {
			r.Opportunities[0].Amount = 20_000_000_000
		}, CodeInvalidOpportunity},
		{"ProbabilityAboveOne", func(r *SimulationRequest) {
			r.Opportunities[0].Probability = 1.5
		}, CodeInvalidOpportunity},
		{"ProbabilityNegative", func(r *SimulationRequest) {
			r.Opportunities[0].Probability = -0.1
		}, CodeInvalidOpportunity},
		{"MissingCloseDate", func(r *SimulationRequest) {
			r.Opportunities[0].CloseDate = Date{}
		}, CodeInvalidOpportunity},
		{"NoOpportunities", func(r *SimulationRequest) {
			r.Opportunities = nil
		}, CodeBadRequest},
		{"ZeroSimulations", func(r *SimulationRequest) {
			r.NumSimulations = &zero
		}, CodeSimCountOutOfRange},
		{"SimulationsAboveCeiling", func(r *SimulationRequest) {
			r.NumSimulations = &tooMany
		}, CodeSimCountOutOfRange},
		{"NegativeHorizon", func(r *SimulationRequest) {
			r.TimeHorizonDays = &horizon
		}, CodeBadRequest},
		{"NonPositiveTarget", func(r *SimulationRequest) {
			r.RevenueTargets = []float64{1_000_000, 0}
		}, CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SimulationRequest{Opportunities: []OpportunityPayload{payload(100_000, 0.5)}}
			tt.mutate(&req)

			resolved, verr := req.Validate(testConfig())

			assert.Nil(t, resolved)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantCode, verr.Code)
		})
	}
}

func TestValidate_SimCountErrorStatesCeiling(t *testing.T) {
	tooMany := 1_000_000
	req := SimulationRequest{
		Opportunities:  []OpportunityPayload{payload(100_000, 0.5)},
		NumSimulations: &tooMany,
	}

	_, verr := req.Validate(testConfig())

	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "100000")
}

func TestValidate_TooManyOpportunities(t *testing.T) {
	opps := make([]OpportunityPayload, 501)
	for i := range opps {
		opps[i] = payload(1000, 0.5)
	}
	req := SimulationRequest{Opportunities: opps}

	_, verr := req.Validate(testConfig())

	require.NotNil(t, verr)
	assert.Equal(t, CodeBadRequest, verr.Code)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-31"`), &d))
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"31/03/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`null`), &d))
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-31"`, string(out))
}
