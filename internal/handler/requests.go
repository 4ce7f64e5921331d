package handler

import (
	"reflect"
	"strings"

	"github.com/deppfellow/mongodb-errors/internal/repository"
	"github.com/deppfellow/mongodb-errors/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their wire name (json, then path param).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.Split(f.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// EmptyRequest is used by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// CreateCollectionRequest is the body of POST /collections.
type CreateCollectionRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Capped    bool   `json:"capped"`
	SizeBytes int64  `json:"size_bytes" validate:"omitempty,min=1"`
}

func (r *CreateCollectionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Capped && r.SizeBytes == 0 {
		return validation.CustomValidationErrors{
			{Field: "size_bytes", Message: "is required for capped collections"},
		}
	}
	return nil
}

// CollectionRequest addresses one collection by its path parameter.
type CollectionRequest struct {
	Name string `param:"name" json:"-" validate:"required"`
}

func (r *CollectionRequest) Validate() error {
	return validate.Struct(r)
}

// IndexKeyRequest is one key of an index: either a sort order or an index type.
type IndexKeyRequest struct {
	Field string `json:"field" validate:"required"`
	Order int    `json:"order" validate:"omitempty,oneof=1 -1"`
	Type  string `json:"type" validate:"omitempty,oneof=text 2dsphere hashed"`
}

// CreateIndexRequest is the body of POST /collections/:name/indexes.
type CreateIndexRequest struct {
	Collection string            `param:"name" json:"-" validate:"required"`
	Name       string            `json:"name"`
	Keys       []IndexKeyRequest `json:"keys" validate:"required,min=1,dive"`
	Unique     bool              `json:"unique"`
}

func (r *CreateIndexRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	for _, k := range r.Keys {
		if k.Order != 0 && k.Type != "" {
			errs = append(errs, validation.CustomValidationError{
				Field:   k.Field,
				Message: "must set either order or type, not both",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Spec converts the request into the repository's index description.
// Keys without order or type default to ascending.
func (r *CreateIndexRequest) Spec() repository.IndexSpec {
	spec := repository.IndexSpec{Name: r.Name, Unique: r.Unique}
	for _, k := range r.Keys {
		var value any = 1
		switch {
		case k.Type != "":
			value = k.Type
		case k.Order != 0:
			value = k.Order
		}
		spec.Keys = append(spec.Keys, repository.IndexKey{Field: k.Field, Value: value})
	}
	return spec
}

// IndexRequest addresses one index of a collection.
type IndexRequest struct {
	Collection string `param:"name" json:"-" validate:"required"`
	Index      string `param:"index" json:"-" validate:"required"`
}

func (r *IndexRequest) Validate() error {
	return validate.Struct(r)
}
