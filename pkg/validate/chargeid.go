package validate

import "regexp"

// Provider charge ids are opaque but bounded: 8..128 chars from a printable
// token alphabet. Anything outside that is rejected before it reaches storage.
var chargeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-:.]{8,128}$`)

func IsChargeID(s string) bool {
	return chargeIDPattern.MatchString(s)
}
