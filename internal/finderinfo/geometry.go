package finderinfo

import "fmt"

// Point is a QuickDraw point, vertical first.
type Point struct {
	V int16 `json:"v" yaml:"v"`
	H int16 `json:"h" yaml:"h"`
}

func readPoint(b []byte) Point {
	return Point{
		V: readI16BE(b[0:]),
		H: readI16BE(b[2:]),
	}
}

func (p Point) put(b []byte) {
	putI16BE(b[0:], p.V)
	putI16BE(b[2:], p.H)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.V, p.H)
}

// Rect is a QuickDraw rectangle.
type Rect struct {
	Top    int16 `json:"top" yaml:"top"`
	Left   int16 `json:"left" yaml:"left"`
	Bottom int16 `json:"bottom" yaml:"bottom"`
	Right  int16 `json:"right" yaml:"right"`
}

func readRect(b []byte) Rect {
	return Rect{
		Top:    readI16BE(b[0:]),
		Left:   readI16BE(b[2:]),
		Bottom: readI16BE(b[4:]),
		Right:  readI16BE(b[6:]),
	}
}

func (r Rect) put(b []byte) {
	putI16BE(b[0:], r.Top)
	putI16BE(b[2:], r.Left)
	putI16BE(b[4:], r.Bottom)
	putI16BE(b[6:], r.Right)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Top, r.Left, r.Bottom, r.Right)
}
