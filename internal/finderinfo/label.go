package finderinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelColor is the value of the 3-bit label field.
type LabelColor uint8

const (
	LabelNone LabelColor = iota
	LabelGray
	LabelGreen
	LabelPurple
	LabelBlue
	LabelYellow
	LabelRed
	LabelOrange
)

var labelNames = [...]string{"None", "Gray", "Green", "Purple", "Blue", "Yellow", "Red", "Orange"}

func (c LabelColor) String() string {
	if int(c) < len(labelNames) {
		return labelNames[c]
	}
	return fmt.Sprintf("LabelColor(%d)", uint8(c))
}

// ParseLabelColor accepts a color name (any case) or a number 0-7.
func ParseLabelColor(s string) (LabelColor, error) {
	for i, name := range labelNames {
		if strings.EqualFold(s, name) {
			return LabelColor(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 7 {
		return 0, fmt.Errorf("invalid label color %q", s)
	}
	return LabelColor(n), nil
}
