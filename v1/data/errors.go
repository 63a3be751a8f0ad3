package data

import (
	"fmt"
	"strings"

	"github.com/rickhofstede/weaviate-go/v1/connection"
)

// ObjectAlreadyExistsError reports a create for a UUID the server already
// stores an object under.
type ObjectAlreadyExistsError struct {
	ID string
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("object with id %q already exists", e.ID)
}

// alreadyExists inspects a failed create response for the server's
// "already exists" error message.
func alreadyExists(resp *connection.Response) bool {
	var body struct {
		Error []struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := resp.DecodeJSON(&body); err != nil {
		return false
	}
	for _, e := range body.Error {
		if strings.Contains(e.Message, "already exists") {
			return true
		}
	}
	return false
}
