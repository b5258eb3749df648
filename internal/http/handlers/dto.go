package handlers

import "carrier-bridge/internal/domain"

type siteResolutionDTO struct {
	SiteID         int64            `json:"siteId"`
	CandidateCount int              `json:"candidateCount"`
	Attempts       []map[string]any `json:"attempts"`
}

func resolutionToDTO(r *domain.SiteResolution) siteResolutionDTO {
	return siteResolutionDTO{
		SiteID:         r.SiteID,
		CandidateCount: r.CandidateCount,
		Attempts:       r.Attempts,
	}
}

type resolutionErrorResponse struct {
	Error        string           `json:"error"`
	Attempts     []map[string]any `json:"attempts"`
	LastResponse string           `json:"lastResponse,omitempty"`
}
