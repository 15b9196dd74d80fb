package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packlint/internal/core/domain"
)

func TestMachineType_Architecture(t *testing.T) {
	tests := []struct {
		name    string
		machine domain.MachineType
		want    string
	}{
		{name: "amd64", machine: domain.MachineAMD64, want: "x64"},
		{name: "ia64 folds into x64", machine: domain.MachineIA64, want: "x64"},
		{name: "i386", machine: domain.MachineI386, want: "x86"},
		{name: "arm", machine: domain.MachineARM, want: "arm"},
		{name: "armnt folds into arm", machine: domain.MachineARMNT, want: "arm"},
		{name: "arm64", machine: domain.MachineARM64, want: "arm64"},
		{name: "unknown reports the literal code", machine: domain.MachineType(0x1234), want: "Machine Type Code = 4660"},
		{name: "zero reports the literal code", machine: domain.MachineUnknown, want: "Machine Type Code = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.machine.Architecture())
		})
	}
}
