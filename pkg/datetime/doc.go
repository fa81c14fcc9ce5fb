// Package datetime holds small date helpers for display code: layout-based
// formatting with a sensible default, conversion to Korea Standard Time,
// calendar component extraction, and splitting a count of seconds into
// day/hour/minute/second parts.
//
// KST is a fixed +09:00 zone, so conversion does not depend on the tz
// database being installed.
package datetime
