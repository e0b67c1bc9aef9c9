package http

import (
	"encoding/json"
	"net/http"
)

const (
	contentType = "application/json"

	// Message is the fixed text every request is answered with.
	Message = "Hello World from Node.js!"
)

type response struct {
	Status int
	Body   []byte
	Err    error
}

type payload struct {
	Message string `json:"message"`
}

var helloBody = mustMarshal(payload{Message: Message})

func mustMarshal(v interface{}) []byte {
	bs, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bs
}

// Body returns a copy of the encoded response body.
func Body() []byte {
	return append([]byte(nil), helloBody...)
}

func respond(ctx *Context) {
	ctx.resp(http.StatusOK, helloBody)
}
