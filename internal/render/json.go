// Package render serializes generated trees to JSON.
package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/NielsdaWheelz/maketree/internal/errors"
	"github.com/NielsdaWheelz/maketree/internal/tree"
)

// Indent is the per-level indentation of rendered documents.
const Indent = "    "

// MarshalTree renders root as indented JSON with a trailing newline.
//
// Keys keep their struct order (root: name, children, title; child: name,
// title, children), items are separated by "," and keys by ": ". This matches
// json.dumps(indent=4, separators=(',', ': ')) for the node shapes produced here.
func MarshalTree(root *tree.RootNode) ([]byte, error) {
	if root == nil {
		return nil, errors.New(errors.EInternal, "cannot render nil tree")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(root); err != nil {
		return nil, errors.Wrap(errors.ERenderFailed, "failed to encode tree", err)
	}
	return buf.Bytes(), nil
}

// WriteTree renders root and writes it to w in a single call.
func WriteTree(w io.Writer, root *tree.RootNode) error {
	data, err := MarshalTree(root)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write tree", err)
	}
	return nil
}

// ParseTree decodes a document produced by MarshalTree.
// Unknown keys and trailing values are rejected; missing keys are not.
func ParseTree(r io.Reader) (*tree.RootNode, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var root tree.RootNode
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ERenderFailed, "invalid tree document", err)
	}
	if dec.More() {
		return nil, errors.New(errors.ERenderFailed, "invalid tree document: trailing data after root object")
	}
	return &root, nil
}
