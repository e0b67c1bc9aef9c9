package http

import (
	"time"

	"github.com/google/uuid"

	"responder/utils"
)

type Handler func(ctx *Context)

type HandlerChain []Handler

func httpHandlerChain(do Handler) HandlerChain {
	return []Handler{
		parseRequest,
		logAccess,
		printRequest,
		do,
		printResponse,
	}
}

func (h HandlerChain) exec(ctx *Context) {
	for _, handler := range h {
		handler(ctx)
	}
}

func parseRequest(ctx *Context) {
	if ctx.read != nil {
		ctx.request = &request{
			requestID:  uuid.New().String(),
			receivedAt: time.Now(),
			method:     ctx.read.Method,
			uri:        utils.GetRequestURI(ctx.read),
			path:       ctx.read.URL.Path,
			clientIP:   utils.GetClientIP(ctx.read),
			proto:      ctx.read.Proto,
		}
	}
}

// logAccess writes the single per-request line: method then request target.
func logAccess(ctx *Context) {
	if ctx.access != nil && ctx.request != nil {
		ctx.access.Infof("%s %s", ctx.request.method, ctx.request.uri)
	}
}

func printRequest(ctx *Context) {
	logger := ctx.logger
	req := ctx.request
	if logger != nil && req != nil {
		logger.Debugf("=========== request info ===========")
		logger.Debugf("id: %s", req.requestID)
		logger.Debugf("uri: %s", req.uri)
		logger.Debugf("method: %s", req.method)
		logger.Debugf("proto: %s", req.proto)
		logger.Debugf("clientIP: %s", req.clientIP)
		logger.Debugf("path: %s", req.path)
	}
}

func printResponse(ctx *Context) {
	logger := ctx.logger
	res := ctx.response
	if logger != nil && res != nil {
		logger.Debugf("=========== response info ===========")
		if ctx.request != nil {
			logger.Debugf("id: %s", ctx.request.requestID)
			logger.Debugf("elapsed: %s", time.Since(ctx.request.receivedAt))
		}
		logger.Debugf("status: %d", res.Status)
		logger.Debugf("body: %s", res.Body)
		if res.Err != nil {
			logger.Errorf("write response: %v", res.Err)
		}
	}
}
