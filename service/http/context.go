package http

import (
	"net/http"

	"responder/pkg/logflags"
)

type Context struct {
	access   logflags.Logger
	logger   logflags.Logger
	chain    HandlerChain
	request  *request
	response *response
	read     *http.Request
	write    http.ResponseWriter
}

func (c *Context) reset(access, logger logflags.Logger, w http.ResponseWriter, r *http.Request) {
	*c = Context{
		access: access,
		logger: logger,
		read:   r,
		write:  w,
	}
}

func (c *Context) resp(status int, body []byte) {
	c.response = &response{
		Status: status,
		Body:   body,
	}

	c.write.Header().Set("Content-Type", contentType)
	c.write.WriteHeader(status)
	if _, err := c.write.Write(body); err != nil {
		c.response.Err = err
	}
}
