package mcptool

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "run_revenue_simulation",
				"description": "Run a Monte-Carlo simulation over a set of sales opportunities to forecast total closed revenue. " +
					"Each opportunity carries an amount and an independent win probability; the tool returns summary statistics " +
					"(mean, median, percentiles), the probability of hitting each revenue target, and a distribution histogram. " +
					"Report the returned probabilities as-is; do not extrapolate your own estimates beyond the tool output.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"opportunities": map[string]interface{}{
							"type":        "array",
							"description": "Open opportunities to include in the simulation.",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":        map[string]interface{}{"type": "string", "description": "Opportunity name, tracking only"},
									"amount":      map[string]interface{}{"type": "number", "description": "Deal value in USD"},
									"probability": map[string]interface{}{"type": "number", "description": "Win probability between 0.0 and 1.0"},
									"close_date":  map[string]interface{}{"type": "string", "description": "Expected close date (YYYY-MM-DD)"},
								},
								"required": []string{"amount", "probability", "close_date"},
							},
						},
						"num_simulations":   map[string]interface{}{"type": "integer", "description": "Number of Monte-Carlo trials (default 10000, max 100000)"},
						"time_horizon_days": map[string]interface{}{"type": "integer", "description": "Optional: only include opportunities closing within this many days from today"},
						"revenue_targets":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}, "description": "Optional: revenue thresholds to report hit-probabilities for"},
					},
					"required": []string{"opportunities"},
				},
			},
		},
	}
}
