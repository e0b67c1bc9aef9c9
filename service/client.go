package service

import "context"

type Client interface {
	// Probe requests path and returns the message the responder answered with.
	Probe(ctx context.Context, path string) (string, error)
}
