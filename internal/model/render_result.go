package model

import (
	"time"
)

const (
	// StatusPending indicates a platform has not been rendered yet.
	StatusPending = "pending"
	// StatusSuccess marks an image written at the exact canvas size.
	StatusSuccess = "success"
	// StatusFailed marks a failure while composing or rasterizing.
	StatusFailed = "failed"
	// StatusCancelled indicates the request was cancelled before the platform ran.
	StatusCancelled = "cancelled"
)

// RenderResult captures the outcome of rendering a single platform.
type RenderResult struct {
	PlatformID string        `json:"platform_id"`
	Platform   string        `json:"platform"`
	OutputPath string        `json:"output_path"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Status     string        `json:"status"`
	Message    string        `json:"message,omitempty"`
	Error      error         `json:"-"`
	Duration   time.Duration `json:"duration_ns"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Succeeded reports whether the image was produced.
func (r RenderResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Failures returns the results that did not succeed, preserving order.
func Failures(results []RenderResult) []RenderResult {
	var out []RenderResult
	for _, res := range results {
		if !res.Succeeded() {
			out = append(out, res)
		}
	}
	return out
}
