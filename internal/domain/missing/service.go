package missing

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
	"github.com/playershyan/iSafe-sub001/internal/domain/shelter"
)

const (
	posterCodePrefix   = "MP"
	posterCodeDigits   = 5
	posterCodeAttempts = 10
)

type FileInput struct {
	FullName         string
	Age              int
	Gender           person.Gender
	NIC              string
	PhotoURL         string
	LastSeenLocation string
	LastSeenDistrict shelter.District
	LastSeenDate     *time.Time
	Clothing         string
	ReporterName     string
	ReporterPhone    string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// File registers a new missing-person report under the anonymous reporter
// identified by clientID and assigns it a fresh poster code.
func (s *Service) File(ctx context.Context, clientID string, input FileInput) (*MissingReport, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if input.Age < person.MinAge || input.Age > person.MaxAge {
		return nil, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, person.MinAge, person.MaxAge)
	}
	if !person.ValidGender(input.Gender) {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, input.Gender)
	}
	input.LastSeenLocation = strings.TrimSpace(input.LastSeenLocation)
	if input.LastSeenLocation == "" {
		return nil, fmt.Errorf("%w: last seen location is required", ErrInvalidInput)
	}
	if !shelter.ValidDistrict(input.LastSeenDistrict) {
		return nil, fmt.Errorf("%w: unknown district %q", ErrInvalidInput, input.LastSeenDistrict)
	}
	input.ReporterName = strings.TrimSpace(input.ReporterName)
	input.ReporterPhone = strings.TrimSpace(input.ReporterPhone)
	if input.ReporterName == "" || input.ReporterPhone == "" {
		return nil, fmt.Errorf("%w: reporter name and phone are required", ErrInvalidInput)
	}

	var nic *string
	if strings.TrimSpace(input.NIC) != "" {
		normalized := person.NormalizeNIC(input.NIC)
		if !person.ValidNIC(normalized) {
			return nil, fmt.Errorf("%w: NIC %q is not in canonical form", ErrInvalidInput, input.NIC)
		}
		nic = &normalized
	}

	code, err := s.generateUniquePosterCode(ctx)
	if err != nil {
		return nil, err
	}

	record := MissingReport{
		ID:               uuid.NewString(),
		FullName:         input.FullName,
		Age:              input.Age,
		Gender:           input.Gender,
		NIC:              nic,
		LastSeenLocation: input.LastSeenLocation,
		LastSeenDistrict: input.LastSeenDistrict,
		LastSeenDate:     input.LastSeenDate,
		ReporterName:     input.ReporterName,
		ReporterPhone:    input.ReporterPhone,
		ReporterClientID: clientID,
		Status:           StatusMissing,
		PosterCode:       code,
	}
	if photo := strings.TrimSpace(input.PhotoURL); photo != "" {
		record.PhotoURL = &photo
	}
	if clothing := strings.TrimSpace(input.Clothing); clothing != "" {
		record.Clothing = &clothing
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*MissingReport, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByPosterCode(ctx context.Context, code string) (*MissingReport, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: poster code is required", ErrInvalidInput)
	}
	return s.repo.GetByPosterCode(ctx, code)
}

func (s *Service) ListByReporter(ctx context.Context, clientID string) ([]MissingReport, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	return s.repo.ListByReporter(ctx, clientID)
}

// MarkFound closes a report on behalf of the reporter who filed it.
func (s *Service) MarkFound(ctx context.Context, clientID, reportID string) (*MissingReport, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(reportID) == "" {
		return nil, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}

	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.ReporterClientID != clientID {
		return nil, ErrNotReporter
	}
	if report.Status == StatusFound {
		return nil, ErrAlreadyFound
	}

	if err := s.repo.UpdateStatus(ctx, reportID, StatusFound); err != nil {
		return nil, err
	}

	report.Status = StatusFound
	return report, nil
}

func (s *Service) generateUniquePosterCode(ctx context.Context) (string, error) {
	for i := 0; i < posterCodeAttempts; i++ {
		code, err := generatePosterCode()
		if err != nil {
			return "", err
		}
		taken, err := s.repo.IsPosterCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrPosterCodeGenerationFail
}

func generatePosterCode() (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	var builder strings.Builder
	builder.Grow(len(posterCodePrefix) + posterCodeDigits)
	builder.WriteString(posterCodePrefix)

	for i := 0; i < posterCodeDigits; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(digits[n.Int64()])
	}

	return builder.String(), nil
}
