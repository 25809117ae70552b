package ontology

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed shapes/network-shapes.ttl
var packagedShapes []byte

// PackagedShapesName labels the embedded shapes in errors and logs
const PackagedShapesName = "network-shapes.ttl"

// PackagedShapes returns a reader over the embedded shapes document
func PackagedShapes() io.Reader {
	return bytes.NewReader(packagedShapes)
}
