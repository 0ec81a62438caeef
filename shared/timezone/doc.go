// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization at startup:
//     timezone.Init(cfg)
//
//  2. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  3. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable. Until Init
// runs, every function works in UTC.
package timezone
