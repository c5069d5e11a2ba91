package handler

import (
	"time"

	matchingdomain "github.com/playershyan/iSafe-sub001/internal/domain/matching"
	missingdomain "github.com/playershyan/iSafe-sub001/internal/domain/missing"
	persondomain "github.com/playershyan/iSafe-sub001/internal/domain/person"
	searchdomain "github.com/playershyan/iSafe-sub001/internal/domain/search"
	shelterdomain "github.com/playershyan/iSafe-sub001/internal/domain/shelter"
)

type shelterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	District  string    `json:"district"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toShelterResponse(s *shelterdomain.Shelter) shelterResponse {
	return shelterResponse{
		ID:        s.ID,
		Name:      s.Name,
		Code:      s.Code,
		District:  string(s.District),
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
	}
}

type personResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	NIC          *string   `json:"nic,omitempty"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
	HealthStatus string    `json:"health_status"`
	ShelterID    string    `json:"shelter_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func toPersonResponse(p *persondomain.Person) personResponse {
	return personResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		Age:          p.Age,
		Gender:       string(p.Gender),
		NIC:          p.NIC,
		PhotoURL:     p.PhotoURL,
		HealthStatus: string(p.HealthStatus),
		ShelterID:    p.ShelterID,
		CreatedAt:    p.CreatedAt,
	}
}

type reportResponse struct {
	ID               string     `json:"id"`
	FullName         string     `json:"full_name"`
	Age              int        `json:"age"`
	Gender           string     `json:"gender"`
	NIC              *string    `json:"nic,omitempty"`
	PhotoURL         *string    `json:"photo_url,omitempty"`
	LastSeenLocation string     `json:"last_seen_location"`
	LastSeenDistrict string     `json:"last_seen_district"`
	LastSeenDate     *time.Time `json:"last_seen_date,omitempty"`
	Clothing         *string    `json:"clothing,omitempty"`
	ReporterName     string     `json:"reporter_name"`
	ReporterPhone    string     `json:"reporter_phone"`
	Status           string     `json:"status"`
	PosterCode       string     `json:"poster_code"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toReportResponse(r *missingdomain.MissingReport) reportResponse {
	return reportResponse{
		ID:               r.ID,
		FullName:         r.FullName,
		Age:              r.Age,
		Gender:           string(r.Gender),
		NIC:              r.NIC,
		PhotoURL:         r.PhotoURL,
		LastSeenLocation: r.LastSeenLocation,
		LastSeenDistrict: string(r.LastSeenDistrict),
		LastSeenDate:     r.LastSeenDate,
		Clothing:         r.Clothing,
		ReporterName:     r.ReporterName,
		ReporterPhone:    r.ReporterPhone,
		Status:           string(r.Status),
		PosterCode:       r.PosterCode,
		CreatedAt:        r.CreatedAt,
	}
}

type potentialMatchResponse struct {
	Report     reportResponse `json:"report"`
	Score      float64        `json:"score"`
	Confidence int            `json:"confidence"`
	NICMatch   bool           `json:"nic_match"`
}

func toPotentialMatchResponses(matches []matchingdomain.PotentialMatch) []potentialMatchResponse {
	result := make([]potentialMatchResponse, 0, len(matches))
	for i := range matches {
		m := matches[i]
		result = append(result, potentialMatchResponse{
			Report:     toReportResponse(&m.Report),
			Score:      m.Score,
			Confidence: m.Confidence(),
			NICMatch:   m.NICMatch,
		})
	}
	return result
}

type matchResponse struct {
	ID              string    `json:"id"`
	PersonID        string    `json:"person_id"`
	MissingReportID string    `json:"missing_report_id"`
	Confidence      int       `json:"confidence"`
	ConfirmedAt     time.Time `json:"confirmed_at"`
}

func toMatchResponse(m *matchingdomain.Match) matchResponse {
	return matchResponse{
		ID:              m.ID,
		PersonID:        m.PersonID,
		MissingReportID: m.MissingReportID,
		Confidence:      m.Confidence,
		ConfirmedAt:     m.ConfirmedAt,
	}
}

type unifiedResultResponse struct {
	Kind      string          `json:"kind"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Person    *personResponse `json:"person,omitempty"`
	Report    *reportResponse `json:"report,omitempty"`
}

func toUnifiedResultResponses(results []searchdomain.UnifiedResult) []unifiedResultResponse {
	out := make([]unifiedResultResponse, 0, len(results))
	for i := range results {
		item := results[i]
		resp := unifiedResultResponse{
			Kind:      string(item.Kind),
			Status:    string(item.Status),
			CreatedAt: item.CreatedAt,
		}
		if item.Person != nil {
			p := toPersonResponse(item.Person)
			resp.Person = &p
		}
		if item.Report != nil {
			r := toReportResponse(item.Report)
			resp.Report = &r
		}
		out = append(out, resp)
	}
	return out
}
