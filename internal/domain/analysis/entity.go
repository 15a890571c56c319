package analysis

import (
	"fmt"
	"time"
)

// ServiceType enum
type ServiceType string

const (
	ServiceVendorSelection    ServiceType = "vendor-selection"
	ServiceMarketResearch     ServiceType = "market-research"
	ServiceCompetitorAnalysis ServiceType = "competitor-analysis"
	ServiceBuildVsBuy         ServiceType = "build-vs-buy"
	ServiceRFPIntelligence    ServiceType = "rfp-intelligence"
)

// ServiceTypes lists every supported service type in a stable order.
var ServiceTypes = []ServiceType{
	ServiceVendorSelection,
	ServiceMarketResearch,
	ServiceCompetitorAnalysis,
	ServiceBuildVsBuy,
	ServiceRFPIntelligence,
}

// ParseServiceType matches s exactly against the supported service types.
func ParseServiceType(s string) (ServiceType, error) {
	for _, t := range ServiceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidServiceType
}

// Status enum
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	// StatusFailed is reserved; generation never fails.
	StatusFailed Status = "failed"
)

// ID identifier type for a stored analysis
type ID string

// Results is the mock payload produced for one analysis.
type Results map[string]any

// Request is the body accepted by the analyze endpoint.
// Optional fields stay nil when absent so they echo back as null.
type Request struct {
	ServiceType      string         `json:"service_type"`
	CompanyName      *string        `json:"company_name"`
	Industry         *string        `json:"industry"`
	Technology       *string        `json:"technology"`
	Keywords         []string       `json:"keywords"`
	AdditionalParams map[string]any `json:"additional_params"`
}

// Validate requires service_type to be set; its value is only echoed.
func (r Request) Validate() error {
	if r.ServiceType == "" {
		return fmt.Errorf("%w: service_type is required", ErrInvalidRequest)
	}
	return nil
}

// Record is the aggregate stored per analysis
type Record struct {
	ID          ID         `json:"id"`
	Status      Status     `json:"status"`
	Results     Results    `json:"results"`
	Error       *string    `json:"error"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Completed reports whether results are available.
func (r *Record) Completed() bool {
	return r.Status == StatusCompleted
}
