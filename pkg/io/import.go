package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/toporder/pkg/digraph"
	"github.com/matzehuels/toporder/pkg/errors"
	"github.com/matzehuels/toporder/pkg/order"
)

// DefaultWeight is the weight of an edge record without a weight field.
const DefaultWeight = 1.0

// Format identifies an edge list encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formatByExt = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// validate is a singleton validator instance
var validate = validator.New()

type edgeList struct {
	Edges []edgeRecord `json:"edges" yaml:"edges" toml:"edges" validate:"dive"`
}

type edgeRecord struct {
	From   string   `json:"from" yaml:"from" toml:"from" validate:"required"`
	To     string   `json:"to" yaml:"to" toml:"to" validate:"required"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
}

// FormatFromPath picks the edge list format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateExtension(path, ".json", ".yaml", ".yml", ".toml"); err != nil {
		return "", err
	}
	return formatByExt[strings.ToLower(filepath.Ext(path))], nil
}

// ReadEdges decodes an edge list in format f from r.
//
// ReadEdges returns an error if the input is malformed or a record lacks its
// from or to field. Weights are not checked. ReadEdges does not close r.
func ReadEdges(r io.Reader, f Format) ([]digraph.Edge[string], error) {
	var data edgeList
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}

	if err := validate.Struct(&data); err != nil {
		return nil, formatValidationError(err)
	}

	edges := make([]digraph.Edge[string], len(data.Edges))
	for i, rec := range data.Edges {
		w := DefaultWeight
		if rec.Weight != nil {
			w = *rec.Weight
		}
		edges[i] = digraph.Edge[string]{From: rec.From, To: rec.To, Weight: w}
	}
	return edges, nil
}

// ImportEdges reads the edge list at path, picking the format from its
// extension. A missing file is reported with errors.ErrCodeFileNotFound.
func ImportEdges(path string) ([]digraph.Edge[string], error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	edges, err := ReadEdges(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}

// Apply inserts edges into m in order. With check set, the order invariant
// is verified after every insertion. The first failure stops the replay and
// is returned with the position of the offending edge.
func Apply(m *order.Maintainer[string], edges []digraph.Edge[string], check bool) error {
	for i, e := range edges {
		if err := m.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edge %d %s->%s: %w", i, e.From, e.To, err)
		}
		if !check {
			continue
		}
		if err := order.CheckAll(m); err != nil {
			return fmt.Errorf("after edge %d %s->%s: %w", i, e.From, e.To, err)
		}
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "validate edge list")
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		switch e.Tag() {
		case "required":
			return errors.New(errors.ErrCodeInvalidInput, "%s: field is required", e.Namespace())
		default:
			return errors.New(errors.ErrCodeInvalidInput, "%s: validation failed (%s)", e.Namespace(), e.Tag())
		}
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "validate edge list")
}
