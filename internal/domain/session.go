package domain

import (
	"strconv"
	"strings"
)

// ParseSessionUserID interprets the raw session slot. Anything that is not a positive
// decimal integer means nobody is logged in.
func ParseSessionUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrNotLoggedIn
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, ErrNotLoggedIn
	}

	return UserID(n), nil
}

func FormatSessionUserID(id UserID) string {
	return strconv.Itoa(int(id))
}
