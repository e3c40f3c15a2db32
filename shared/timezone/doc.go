// Package timezone provides timezone utilities for the application.
//
// Every instant that reaches a service or repository is expected to already be
// timezone-aware. Request DTOs parse timestamps via ParseInstant, which only
// accepts RFC3339 values carrying an explicit offset; there is no implicit
// localization of naive wall-clock values anywhere in the codebase.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
//  4. Parsing client-supplied instants (offset required):
//     t, err := timezone.ParseInstant("2024-01-01T09:00:00+07:00")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
