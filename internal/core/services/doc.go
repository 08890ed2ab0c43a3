// Package services implements the driving port interfaces.
// Services contain the client-side business logic - panel state,
// facet selection, submission sequencing - and orchestrate calls to
// driven ports (adapters).
package services
