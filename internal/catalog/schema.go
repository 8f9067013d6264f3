package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://pathwise-catalog.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func stringList(minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string", "minLength": 1},
		"minItems": minItems,
	}
}

func object(props map[string]any, required ...string) map[string]any {
	req := make([]any, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   req,
	}
}

func arrayOf(item map[string]any, minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    item,
		"minItems": minItems,
	}
}

var str = map[string]any{"type": "string", "minLength": 1}

// Definition is the JSON schema every catalogue must satisfy.
var Definition = object(map[string]any{
	"version": map[string]any{"type": "integer", "minimum": 1},
	"personas": arrayOf(object(map[string]any{
		"id":    str,
		"label": str,
		"blurb": map[string]any{"type": "string"},
	}, "id", "label"), 1),
	"default_skills":  stringList(1),
	"fallback_skills": stringList(1),
	"inferred_skills": stringList(0),
	"signals": object(map[string]any{
		"code": stringList(0),
		"data": stringList(0),
	}, "code", "data"),
	"careers": arrayOf(object(map[string]any{
		"title":       str,
		"match":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"tier":        map[string]any{"type": "string", "enum": []any{"high", "med", "low"}},
		"description": str,
		"tags":        stringList(0),
	}, "title", "match", "tier", "description"), 1),
	"gaps": object(map[string]any{
		"develop": stringList(0),
		"acquire": stringList(0),
	}, "develop", "acquire"),
	"roadmap": arrayOf(object(map[string]any{
		"label": str,
		"title": str,
		"done":  map[string]any{"type": "boolean"},
		"items": arrayOf(object(map[string]any{
			"icon":   map[string]any{"type": "string"},
			"name":   str,
			"detail": map[string]any{"type": "string"},
			"badge":  map[string]any{"type": "string"},
		}, "name"), 1),
	}, "label", "title", "items"), 1),
	"chat": object(map[string]any{
		"greeting": map[string]any{"type": "string"},
		"canned": arrayOf(object(map[string]any{
			"question": str,
			"answer":   str,
		}, "question", "answer"), 0),
		"rules": arrayOf(object(map[string]any{
			"name":     str,
			"keywords": stringList(1),
			"reply":    str,
		}, "name", "keywords", "reply"), 0),
		"fallback": str,
	}, "canned", "rules", "fallback"),
	"landing": object(map[string]any{
		"headline": str,
		"tagline":  map[string]any{"type": "string"},
		"features": arrayOf(object(map[string]any{
			"title": str,
			"text":  map[string]any{"type": "string"},
		}, "title"), 0),
		"stats": arrayOf(object(map[string]any{
			"label": str,
			"value": str,
		}, "label", "value"), 0),
	}, "headline"),
}, "version", "personas", "default_skills", "fallback_skills", "signals", "careers", "gaps", "roadmap", "chat")

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects parsed JSON values, not Go literals.
		defBytes, err := json.Marshal(Definition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks a JSON value against Definition.
func validate(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return &ErrInvalidCatalog{Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := s.Validate(doc); err != nil {
		return &ErrInvalidCatalog{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
