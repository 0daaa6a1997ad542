// Package api handles incoming HTTP requests, request validation and response
// formatting for the word game. It acts as an adapter between the browser UI
// and the word generator, translating HTTP concerns to generation calls.
package api
