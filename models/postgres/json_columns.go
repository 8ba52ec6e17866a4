package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// decodeJSON leaves out untouched when the column is empty or SQL null.
func decodeJSON(raw datatypes.JSON, out interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func EncodeJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// MustEncodeJSON is for values that always marshal (slices of plain structs, strings, ints).
func MustEncodeJSON(v interface{}) datatypes.JSON {
	b, err := EncodeJSON(v)
	if err != nil {
		panic(err)
	}
	return b
}
