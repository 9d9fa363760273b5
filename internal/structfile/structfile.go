package structfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hetbuilder/atoms"
)

// reader mirrors the line-at-a-time cursor a molfile loader keeps: track
// the number of the last line read so parse errors can point at it.
type reader struct {
	br     *bufio.Reader
	lineNo int
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReader(r)}
}

func (r *reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	r.lineNo++
	return strings.TrimRight(line, "\r\n"), nil
}

// Read parses the POSCAR subset documented in doc.go into a single 2D
// layer: three lattice-vector lines, a species line, a counts line, a
// coordinate-mode line ("Direct" or "Cartesian"), then one coordinate line
// per atom. The result always carries PBC {true, true, false}, matching the
// in-plane-periodic / vacuum-normal layers this package exists to load.
func Read(r io.Reader) (atoms.Atoms, error) {
	rd := newReader(r)

	if _, err := rd.readLine(); err != nil { // comment line, unused
		return atoms.Atoms{}, fmt.Errorf("structfile: reading comment line: %w", err)
	}

	scaleLine, err := rd.readLine()
	if err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: reading scale line: %w", err)
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(scaleLine), 64)
	if err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: line %d: invalid scale factor: %w", rd.lineNo, err)
	}

	var cell [3]atoms.Vec3
	for i := 0; i < 3; i++ {
		v, err := rd.readVec3(scale)
		if err != nil {
			return atoms.Atoms{}, fmt.Errorf("structfile: reading lattice vector %d: %w", i, err)
		}
		cell[i] = v
	}

	speciesLine, err := rd.readLine()
	if err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: reading species line: %w", err)
	}
	species := strings.Fields(speciesLine)
	if len(species) == 0 {
		return atoms.Atoms{}, fmt.Errorf("structfile: line %d: empty species line", rd.lineNo)
	}

	countsLine, err := rd.readLine()
	if err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: reading counts line: %w", err)
	}
	countFields := strings.Fields(countsLine)
	if len(countFields) != len(species) {
		return atoms.Atoms{}, fmt.Errorf("structfile: line %d: %d counts for %d species", rd.lineNo, len(countFields), len(species))
	}
	counts := make([]int, len(countFields))
	total := 0
	for i, f := range countFields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return atoms.Atoms{}, fmt.Errorf("structfile: line %d: invalid count %q", rd.lineNo, f)
		}
		counts[i] = n
		total += n
	}

	modeLine, err := rd.readLine()
	if err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: reading coordinate-mode line: %w", err)
	}
	mode := strings.ToUpper(strings.TrimSpace(modeLine))
	if mode == "" {
		return atoms.Atoms{}, fmt.Errorf("structfile: line %d: empty coordinate-mode line", rd.lineNo)
	}
	direct := mode[0] == 'D'
	if !direct && mode[0] != 'C' {
		return atoms.Atoms{}, fmt.Errorf("structfile: line %d: unrecognized coordinate mode %q", rd.lineNo, modeLine)
	}

	positions := make([]atoms.Vec3, 0, total)
	speciesOut := make([]string, 0, total)
	for i, sym := range species {
		for j := 0; j < counts[i]; j++ {
			frac, err := rd.readVec3(1) // coordinate lines are never scaled
			if err != nil {
				return atoms.Atoms{}, fmt.Errorf("structfile: reading coordinate for %s atom %d: %w", sym, j, err)
			}
			pos := frac
			if direct {
				pos = fracToCart(cell, frac)
			}
			positions = append(positions, pos)
			speciesOut = append(speciesOut, sym)
		}
	}

	a := atoms.Atoms{
		Cell:      cell,
		Positions: positions,
		Species:   speciesOut,
		PBC:       [3]bool{true, true, false},
	}
	if err := a.Validate(); err != nil {
		return atoms.Atoms{}, fmt.Errorf("structfile: %w", err)
	}
	return a, nil
}

func (r *reader) readVec3(scale float64) (atoms.Vec3, error) {
	line, err := r.readLine()
	if err != nil {
		return atoms.Vec3{}, err
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return atoms.Vec3{}, fmt.Errorf("line %d: expected 3 components, got %d", r.lineNo, len(fields))
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return atoms.Vec3{}, fmt.Errorf("line %d: invalid component %q: %w", r.lineNo, fields[i], err)
		}
		out[i] = v * scale
	}
	return atoms.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func fracToCart(cell [3]atoms.Vec3, frac atoms.Vec3) atoms.Vec3 {
	return atoms.Vec3{
		X: frac.X*cell[0].X + frac.Y*cell[1].X + frac.Z*cell[2].X,
		Y: frac.X*cell[0].Y + frac.Y*cell[1].Y + frac.Z*cell[2].Y,
		Z: frac.X*cell[0].Z + frac.Y*cell[1].Z + frac.Z*cell[2].Z,
	}
}
