// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP client initialization, bearer token handling,
// media file type detection, and other common operations.
package utils
