package domain

import "strconv"

// MachineType is the numeric machine field of a COFF file header.
type MachineType uint16

// COFF machine codes recognized by the architecture mapping.
const (
	MachineUnknown MachineType = 0x0
	MachineI386    MachineType = 0x14c
	MachineIA64    MachineType = 0x200
	MachineAMD64   MachineType = 0x8664
	MachineARM     MachineType = 0x1c0
	MachineARMNT   MachineType = 0x1c4
	MachineARM64   MachineType = 0xaa64
)

// Architecture maps the machine code onto the architecture names used in
// target triplets. Unrecognized codes are reported literally so a mismatch
// diagnostic stays actionable.
func (m MachineType) Architecture() string {
	switch m {
	case MachineAMD64, MachineIA64:
		return "x64"
	case MachineI386:
		return "x86"
	case MachineARM, MachineARMNT:
		return "arm"
	case MachineARM64:
		return "arm64"
	default:
		return "Machine Type Code = " + strconv.FormatUint(uint64(m), 10)
	}
}
