// Package timezone centralizes all wall-clock access for the service.
// Every component reads the current time through Now so the whole
// application agrees on a single configured location.
package timezone
