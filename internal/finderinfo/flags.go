package finderinfo

import (
	"fmt"
	"strings"
)

// FinderFlags is the 16-bit Finder flags word of the legacy structure.
type FinderFlags uint16

// FinderFlag is a single named bit of FinderFlags.
type FinderFlag uint16

const (
	FlagIsOnDesk      FinderFlag = 0x0001
	FlagIsShared      FinderFlag = 0x0040
	FlagHasNoINITs    FinderFlag = 0x0080
	FlagHasBeenInited FinderFlag = 0x0100
	FlagChanged       FinderFlag = 0x0200
	FlagHasCustomIcon FinderFlag = 0x0400
	FlagIsStationery  FinderFlag = 0x0800
	FlagNameLocked    FinderFlag = 0x1000
	FlagHasBundle     FinderFlag = 0x2000
	FlagIsInvisible   FinderFlag = 0x4000
	FlagIsAlias       FinderFlag = 0x8000
)

const (
	// LabelMask covers the three label color bits.
	LabelMask  uint16 = 0x000e
	labelShift        = 1
)

var finderFlagNames = []struct {
	flag FinderFlag
	name string
}{
	{FlagIsAlias, "alias"},
	{FlagIsInvisible, "invisible"},
	{FlagHasBundle, "bundle"},
	{FlagNameLocked, "name-locked"},
	{FlagIsStationery, "stationery"},
	{FlagHasCustomIcon, "custom-icon"},
	{FlagChanged, "changed"},
	{FlagHasBeenInited, "inited"},
	{FlagHasNoINITs, "no-inits"},
	{FlagIsShared, "shared"},
	{FlagIsOnDesk, "on-desk"},
}

// FinderFlagList returns every named flag, most significant bit first.
func FinderFlagList() []FinderFlag {
	flags := make([]FinderFlag, len(finderFlagNames))
	for i, f := range finderFlagNames {
		flags[i] = f.flag
	}
	return flags
}

func (f FinderFlag) String() string {
	for _, n := range finderFlagNames {
		if n.flag == f {
			return n.name
		}
	}
	return fmt.Sprintf("0x%04x", uint16(f))
}

// ParseFinderFlag looks a flag up by the name String returns.
func ParseFinderFlag(name string) (FinderFlag, error) {
	for _, n := range finderFlagNames {
		if n.name == name {
			return n.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown finder flag %q", name)
}

func (f FinderFlags) Has(flag FinderFlag) bool {
	return uint16(f)&uint16(flag) != 0
}

// Set turns flag on or off. No other bit of the word is touched.
func (f *FinderFlags) Set(flag FinderFlag, on bool) {
	if on {
		*f |= FinderFlags(flag)
	} else {
		*f &^= FinderFlags(flag)
	}
}

// Label returns the 3-bit label color field as 0-7.
func (f FinderFlags) Label() uint8 {
	return uint8((uint16(f) & LabelMask) >> labelShift)
}

// SetLabel rewrites the label bits with n&7 and leaves the other bits alone.
func (f *FinderFlags) SetLabel(n uint8) {
	v := uint16(*f) &^ LabelMask
	v |= (uint16(n) << labelShift) & LabelMask
	*f = FinderFlags(v)
}

func (f FinderFlags) LabelColor() LabelColor {
	return LabelColor(f.Label())
}

func (f *FinderFlags) SetLabelColor(c LabelColor) {
	f.SetLabel(uint8(c))
}

// Names lists the flags that are set, most significant bit first.
func (f FinderFlags) Names() []string {
	var names []string
	for _, n := range finderFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

func (f FinderFlags) String() string {
	parts := f.Names()
	if c := f.LabelColor(); c != LabelNone {
		parts = append([]string{"label=" + c.String()}, parts...)
	}
	return fmt.Sprintf("0x%04x [%s]", uint16(f), strings.Join(parts, " "))
}

// ExtendedFinderFlags is the 16-bit flags word of the extended structure.
type ExtendedFinderFlags uint16

// ExtendedFlag is a single named bit of ExtendedFinderFlags.
type ExtendedFlag uint16

const (
	// ExtFlagsAreInvalid means the other extended flags must be ignored.
	ExtFlagsAreInvalid    ExtendedFlag = 0x8000
	ExtFlagHasCustomBadge ExtendedFlag = 0x0100
	ExtFlagObjectIsBusy   ExtendedFlag = 0x0080
	ExtFlagHasRoutingInfo ExtendedFlag = 0x0004
)

var extendedFlagNames = []struct {
	flag ExtendedFlag
	name string
}{
	{ExtFlagsAreInvalid, "invalid"},
	{ExtFlagHasCustomBadge, "custom-badge"},
	{ExtFlagObjectIsBusy, "busy"},
	{ExtFlagHasRoutingInfo, "routing-info"},
}

func ExtendedFlagList() []ExtendedFlag {
	flags := make([]ExtendedFlag, len(extendedFlagNames))
	for i, f := range extendedFlagNames {
		flags[i] = f.flag
	}
	return flags
}

func (f ExtendedFlag) String() string {
	for _, n := range extendedFlagNames {
		if n.flag == f {
			return n.name
		}
	}
	return fmt.Sprintf("0x%04x", uint16(f))
}

func ParseExtendedFlag(name string) (ExtendedFlag, error) {
	for _, n := range extendedFlagNames {
		if n.name == name {
			return n.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown extended flag %q", name)
}

func (f ExtendedFinderFlags) Has(flag ExtendedFlag) bool {
	return uint16(f)&uint16(flag) != 0
}

func (f *ExtendedFinderFlags) Set(flag ExtendedFlag, on bool) {
	if on {
		*f |= ExtendedFinderFlags(flag)
	} else {
		*f &^= ExtendedFinderFlags(flag)
	}
}

// Valid reports whether the extended flags are meant to be honoured.
func (f ExtendedFinderFlags) Valid() bool {
	return !f.Has(ExtFlagsAreInvalid)
}

func (f ExtendedFinderFlags) Names() []string {
	var names []string
	for _, n := range extendedFlagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return names
}

func (f ExtendedFinderFlags) String() string {
	return fmt.Sprintf("0x%04x [%s]", uint16(f), strings.Join(f.Names(), " "))
}
