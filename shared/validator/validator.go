package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"todo/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Decode reads one JSON document from r into a new T and validates it using the
// go-playground struct tags on T. A missing body, whitespace only or a literal
// null is reported as failure.EmptyBody; malformed JSON, data after the first
// value and tag violations come back as bad request failures.
// https://github.com/go-playground/validator
func Decode[T any](r io.Reader) (T, error) {
	var zero T

	if r == nil {
		return zero, failure.EmptyBody
	}

	var data *T

	decoder := json.NewDecoder(r)

	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, failure.EmptyBody
		}

		return zero, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if data == nil {
		return zero, failure.EmptyBody
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return zero, failure.BadRequestFromString("failed to decode request body: unexpected data after JSON value") //nolint:wrapcheck
	}

	if err := ValidateStruct(data); err != nil {
		return zero, err
	}

	return *data, nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
