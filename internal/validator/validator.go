package validator

import (
	"fmt"
	"net/mail"
	"time"
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidatePassword(value string) error {
	if len(value) < 8 || len(value) > 72 {
		return fmt.Errorf("must be between 8 and 72 characters long")
	}

	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}

// ValidateDate parses a calendar date in YYYY-MM-DD form.
func ValidateDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a date in YYYY-MM-DD format")
	}

	return date, nil
}
