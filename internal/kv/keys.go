package kv

import "fmt"

// Key builders for the platform's record key conventions. The formats are
// owned by the surrounding platform; the scorer only consumes them.

// JobPositionKey returns the store key for a job position record.
func JobPositionKey(positionID string) string {
	return fmt.Sprintf("job-position:%s", positionID)
}

// ProfileKey returns the store key for a candidate profile record.
func ProfileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// ApplicationKey returns the store key for a job application record. The
// scoring pipeline accepts any opaque application key from its caller; this
// builder exists for callers that construct the key themselves.
func ApplicationKey(positionID, userID string) string {
	return fmt.Sprintf("job-application:%s:%s", positionID, userID)
}
