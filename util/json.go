package util

import (
	"encoding/json"
	"io"
)

// ReadJSONInto reads data from the given io.ReadCloser until EOF and
// unmarshals it into the given interface, closing the reader when
// done.
func ReadJSONInto(r io.ReadCloser, data any) error {
	defer r.Close()
	bytes, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, data)
}
