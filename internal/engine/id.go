package engine

import "github.com/google/uuid"

// generateID creates a session id for log correlation.
func generateID() string {
	return uuid.NewString()
}
