package http

import "time"

type request struct {
	requestID  string
	receivedAt time.Time
	method     string
	uri        string
	path       string
	clientIP   string
	proto      string
}
