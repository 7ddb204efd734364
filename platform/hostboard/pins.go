//go:build !(rp2040 || rp2350)

package hostboard

// SimPin is a digital output backed by memory only. It records every write
// so example programs and tests can observe the blink sequence.
type SimPin struct {
	N      int
	Writes []bool

	level bool
}

func (p *SimPin) Number() int { return p.N }

func (p *SimPin) ConfigureOutput(initial bool) error {
	p.level = initial
	return nil
}

func (p *SimPin) Set(level bool) error {
	p.level = level
	p.Writes = append(p.Writes, level)
	return nil
}

func (p *SimPin) Get() bool { return p.level }
