package analysis

import (
	"time"

	"github.com/google/uuid"
)

type templateFunc func(req Request) Results

// templates maps each service type to the body merged into the base envelope.
var templates = map[ServiceType]templateFunc{
	ServiceVendorSelection:    vendorSelection,
	ServiceMarketResearch:     marketResearch,
	ServiceCompetitorAnalysis: competitorAnalysis,
	ServiceBuildVsBuy:         buildVsBuy,
	ServiceRFPIntelligence:    rfpIntelligence,
}

// Generator builds mock results. Zero value is usable.
type Generator struct {
	Now   func() time.Time
	NewID func() string
}

// Generate never fails. A service type without a template yields the base envelope only.
func (g Generator) Generate(t ServiceType, req Request) Results {
	out := Results{
		"analysis_id":      g.newID(),
		"service_type":     string(t),
		"timestamp":        g.now(),
		"input_parameters": req,
	}
	tmpl, ok := templates[t]
	if !ok {
		return out
	}
	for k, v := range tmpl(req) {
		out[k] = v
	}
	return out
}

func (g Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g Generator) newID() string {
	if g.NewID != nil {
		return g.NewID()
	}
	return uuid.New().String()
}

func vendorSelection(Request) Results {
	return Results{
		"vendors": []map[string]any{
			{
				"name":        "TechCorp Solutions",
				"score":       95,
				"price_range": "$100K-$150K",
				"strengths":   []string{"Industry leader", "Great support", "Scalable"},
				"weaknesses":  []string{"Higher cost", "Complex setup"},
			},
			{
				"name":        "InnovateNow",
				"score":       88,
				"price_range": "$80K-$120K",
				"strengths":   []string{"Cost effective", "Easy integration", "Good features"},
				"weaknesses":  []string{"Smaller company", "Limited enterprise features"},
			},
		},
		"recommendation": "TechCorp Solutions based on requirements and budget",
	}
}

func marketResearch(Request) Results {
	return Results{
		"market_size": "$2.4B",
		"growth_rate": "12.5% CAGR",
		"key_trends": []string{
			"Increasing adoption of AI",
			"Remote work driving demand",
			"Sustainability focus",
		},
		"sentiment_analysis": map[string]any{
			"positive": 65,
			"neutral":  25,
			"negative": 10,
		},
	}
}

func competitorAnalysis(req Request) Results {
	name := "CompetitorA"
	if req.CompanyName != nil && *req.CompanyName != "" {
		name = *req.CompanyName
	}
	return Results{
		"competitors": []map[string]any{
			{
				"name":           name,
				"hiring_trend":   "+45%",
				"recent_moves":   []string{"Acquired StartupXYZ", "Launched new product line"},
				"patent_filings": 12,
			},
		},
		"market_position": "Strong growth trajectory",
		"threat_level":    "Medium",
	}
}

func buildVsBuy(Request) Results {
	return Results{
		"recommendation": "Hybrid approach",
		"build_costs": map[string]any{
			"development": "$200K",
			"timeline":    "8-12 months",
			"risk":        "Medium",
		},
		"buy_costs": map[string]any{
			"licensing":      "$150K/year",
			"implementation": "2-3 months",
			"risk":           "Low",
		},
		"hybrid_approach": map[string]any{
			"core_buy":     "Use existing platform for 80% of needs",
			"custom_build": "Build specific integrations and customizations",
			"total_cost":   "$300K first year",
			"timeline":     "4-6 months",
		},
	}
}

func rfpIntelligence(Request) Results {
	return Results{
		"opportunity_score": 78,
		"win_probability":   "65%",
		"key_requirements": []string{
			"Must have enterprise security",
			"24/7 support required",
			"Integration with existing systems",
		},
		"competitive_analysis": []map[string]any{
			{"competitor": "BigCorp", "strengths": []string{"Market leader"}, "weaknesses": []string{"Higher cost"}},
			{"competitor": "StartupInc", "strengths": []string{"Innovative"}, "weaknesses": []string{"Limited track record"}},
		},
		"recommendations": []string{
			"Emphasize your security credentials",
			"Highlight cost-effectiveness",
			"Showcase similar implementations",
		},
	}
}
