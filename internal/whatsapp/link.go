// Package whatsapp constructs deep links for the external messaging handoff.
// The messaging provider is an opaque collaborator: an endpoint that accepts
// a destination identifier and a URL-encoded text payload. Opening the link
// and confirming delivery are both outside this service.
package whatsapp

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public click-to-chat endpoint.
const DefaultBaseURL = "https://wa.me"

// LinkBuilder builds handoff URLs for a fixed destination.
type LinkBuilder struct {
	baseURL string
	phone   string
}

// NewLinkBuilder creates a LinkBuilder for the given endpoint base and
// destination phone. An empty base falls back to DefaultBaseURL.
func NewLinkBuilder(baseURL, phone string) *LinkBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LinkBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
		phone:   phone,
	}
}

// Build returns the deep link carrying the URL-encoded message text:
// <base>/<phone>?text=<encoded message>.
func (b *LinkBuilder) Build(message string) string {
	return b.baseURL + "/" + b.phone + "?text=" + url.QueryEscape(message)
}
