package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// PPMOutput writes a plain-text P3 image, top row first, when the render ends
type PPMOutput struct {
	canvas
	open func() (io.WriteCloser, error)
}

// NewPPM writes to w; w is not closed
func NewPPM(w io.Writer) *PPMOutput {
	return &PPMOutput{open: func() (io.WriteCloser, error) { return nopCloser{w}, nil }}
}

// NewPPMFile creates the file at path when the render ends
func NewPPMFile(path string) *PPMOutput {
	return &PPMOutput{open: func() (io.WriteCloser, error) {
		f, err := os.Create(path)
		return f, errors.Wrap(err, "create ppm file")
	}}
}

func (o *PPMOutput) End() error {
	w, err := o.open()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bounds := o.img.Bounds()
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := o.img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	if err := bw.Flush(); err != nil {
		w.Close()
		return errors.Wrap(err, "write ppm")
	}
	return errors.Wrap(w.Close(), "close ppm")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
