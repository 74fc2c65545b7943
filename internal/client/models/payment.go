package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// PaymentCreate is the body of POST payments.
type PaymentCreate struct {
	Amount       float64  `json:"amount"`
	Description  string   `json:"description"`
	Participants []string `json:"participants"`
}

// Payment is a stored payment. Date holds milliseconds since the epoch.
type Payment struct {
	ID           string   `json:"id"`
	Amount       float64  `json:"amount"`
	Description  string   `json:"description"`
	Participants []string `json:"participants"`
	CreatedBy    string   `json:"createdBy,omitempty"`
	Date         int64    `json:"date"`
}

// ParseTimestamp reads a JSON string or number as an integer. Numbers are
// truncated toward zero, so 17.9 yields 17 and 1.7e12 yields 1700000000000.
// Strings take the longest leading run of digits (with optional sign):
// "1700000000000ms" yields 1700000000000.
func ParseTimestamp(raw json.RawMessage) (int64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidTimestamp, string(raw))
		}
		return numberTimestamp(n)
	}

	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	return v, nil
}

func numberTimestamp(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	f = math.Trunc(f)
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidTimestamp, n)
	}
	return int64(f), nil
}
