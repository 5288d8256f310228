package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DocID is a CMS document id. Depending on the database adapter the
// CMS hands ids back as numbers or as strings; both decode to the
// string form and marshal back in their original shape.
type DocID string

func (id DocID) String() string { return string(id) }

func (id *DocID) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	var v any
	if err := d.Decode(&v); err != nil {
		return err
	}
	*id = DocID(relationID(v))
	return nil
}

func (id DocID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.Atoi(string(id)); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
