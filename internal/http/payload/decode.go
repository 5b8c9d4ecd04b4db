package payload

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/jellydator/validation"
)

// maxFormBytes bounds the size of a submitted form body.
const maxFormBytes = 64 << 10

// Form is a struct tagged for schema decoding. Normalize runs after decoding
// and before validation.
type Form interface {
	Normalize()
	validation.Validatable
}

var schemaDecoder = newSchemaDecoder()

func newSchemaDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func init() {
	// report validation errors under the form field names
	validation.ErrorTag = "schema"
}

type FormDecoder struct{}

// DecodeForm parses the urlencoded body of r into form and validates it.
// Validation failures are returned as validation.Errors.
func (FormDecoder) DecodeForm(w http.ResponseWriter, r *http.Request, form Form) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}

	if err := schemaDecoder.Decode(form, r.PostForm); err != nil {
		return fmt.Errorf("decoding form: %w", err)
	}
	form.Normalize()

	if err := form.Validate(); err != nil {
		return fmt.Errorf("validating form: %w", err)
	}

	return nil
}

// FieldErrors flattens validation errors into field name -> message. Errors
// that are not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		fields[field] = fieldErr.Error()
	}
	return fields
}
