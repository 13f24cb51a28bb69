package create_order

import (
	"fmt"
	"strings"
	"time"

	"github.com/illapa-dev/TourOperatorService/internal/domain"
)

// validateRequest valida los datos de entrada de la reserva
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	if req.TourID <= 0 {
		return fmt.Errorf("%w: tour id is required", ErrInvalidInput)
	}

	if !domain.ValidPartySize(req.People) {
		return fmt.Errorf("%w: people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// parseStartDate interpreta la fecha de inicio: ausente o vacía deja la
// reserva sin fecha; presente debe ser "YYYY-MM-DD" y no anterior a hoy.
func parseStartDate(raw *string, now time.Time) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(domain.DateFormat, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return nil, fmt.Errorf("%w: start date is in the past", ErrInvalidDate)
	}

	return &parsed, nil
}
