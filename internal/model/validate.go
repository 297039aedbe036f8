package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateStateDocument validates a rehydrated state document against
// the state.schema.json file at schemaPath.
func ValidateStateDocument(schemaPath string, m map[string]interface{}) error {
	// Use absolute canonical file:// path for the schema so loaders on all
	// platforms (including Windows) resolve file references correctly.
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
