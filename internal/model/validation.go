package model

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field name to a human readable message. It is
// returned from the gorm save hooks so that a business-rule violation
// aborts the write before anything reaches the database.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
