package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	// Интервал полуоткрытый [start, end): конец строго позже начала
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}
