package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per ledger operation so the four
// modules stay grep-able: [TRIPS] action=save request_id=... msg=...
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
