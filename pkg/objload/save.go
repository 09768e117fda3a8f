package objload

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Save writes mesh as a minimal OBJ file: one "v" line per position and
// one "f" line per triangle, one-based.
func Save(path string, mesh *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objload: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, mesh); err != nil {
		return fmt.Errorf("objload: writing %s: %w", path, err)
	}
	return nil
}

// Encode writes mesh to w in OBJ text form.
func Encode(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)

	for _, p := range mesh.Positions {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}
