package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
)

// ErrFormat is returned for output formats Render does not support.
var ErrFormat = errors.New("render: unsupported format")

// Formats lists the output formats accepted by Render.
var Formats = []string{"dot", "svg", "png", "jpg"}

// Render lays out dot with Graphviz and writes it to w in the given format.
func Render(dot []byte, format string, w io.Writer) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	gv := graphviz.New()
	defer gv.Close()

	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer graph.Close()

	if err := gv.Render(graph, graphviz.Format(format), w); err != nil {
		return fmt.Errorf("render: %s: %w", format, err)
	}

	return nil
}

// CheckFormat returns a wrapped ErrFormat unless format is one of Formats.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrFormat, format)
}
