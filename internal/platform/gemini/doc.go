// Package gemini provides an implementation of the generation.TextGenerator
// interface that talks to Google's Gemini generateContent REST endpoint.
//
// This package is an infrastructure adapter: it knows the wire format of the
// Gemini API and nothing about word pairs.
//
// Key components:
//
// 1. Transport:
//   - One-method interface sending a request and returning status and body
//   - HTTPTransport is the production implementation over a pooled http.Client
//   - Tests substitute their own Transport or point BaseURL at httptest
//
// 2. Client:
//   - Builds the generateContent request with temperature 0 and an output cap
//   - Authenticates with the caller's API key in the x-goog-api-key header
//   - Maps non-success statuses to *generation.RemoteCallError
//   - Concatenates the text parts of the first candidate
//
// The client builds the HTTP request itself rather than going through
// genai.Client. Each call carries the caller's key, and a non-success status
// keeps its raw body for RemoteCallError. The genai package supplies only the
// request and response types.
//
// There is no retry, backoff or caching; every GenerateText call is exactly one
// HTTP round-trip.
package gemini
