// Package coff reads machine types directly from PE files and COFF archives.
package coff

import (
	"debug/pe"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"go.trai.ch/packlint/internal/core/domain"
	"go.trai.ch/packlint/internal/core/ports"
	"go.trai.ch/zerr"
)

// archiveMagic is the global header of a COFF archive (.lib) file.
const archiveMagic = "!<arch>\n"

// memberHeaderSize is the fixed size of an archive member header.
const memberHeaderSize = 60

// Reader implements ports.HeaderReader by parsing file headers natively.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

var _ ports.HeaderReader = (*Reader)(nil)

// DynamicMachine returns the machine type from the COFF file header of a
// dynamic module.
func (r *Reader) DynamicMachine(path string) (domain.MachineType, error) {
	f, err := pe.Open(path)
	if err != nil {
		return domain.MachineUnknown, zerr.Wrap(err, domain.ErrNotADynamicModule.Error())
	}
	defer func() { _ = f.Close() }()

	return domain.MachineType(f.FileHeader.Machine), nil
}

// StaticMachines returns the distinct machine types found in the members of
// a static archive, in first-seen order. Archives without object members
// (for example, archives containing only the linker member tables) yield an
// empty list.
func (r *Reader) StaticMachines(path string) ([]domain.MachineType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNotAStaticArchive.Error())
	}
	defer func() { _ = f.Close() }()

	magic := make([]byte, len(archiveMagic))
	if _, err := io.ReadFull(f, magic); err != nil || string(magic) != archiveMagic {
		return nil, zerr.With(domain.ErrNotAStaticArchive, "path", path)
	}

	var machines []domain.MachineType
	seen := make(map[domain.MachineType]bool)
	offset := int64(len(archiveMagic))

	for {
		header := make([]byte, memberHeaderSize)
		if _, err := f.ReadAt(header, offset); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, zerr.Wrap(err, "failed to read archive member header")
		}

		name := strings.TrimRight(string(header[0:16]), " ")
		size, err := parseMemberSize(header[48:58])
		if err != nil {
			return nil, zerr.With(domain.ErrNotAStaticArchive, "path", path)
		}

		// The linker member tables and the longnames member carry no
		// machine information. Members declaring IMAGE_FILE_MACHINE_UNKNOWN
		// (for example LTO bitcode objects) cannot be attributed to an
		// architecture either.
		if !strings.HasPrefix(name, "/") {
			if machine, ok := readMemberMachine(f, offset+memberHeaderSize, size); ok && machine != domain.MachineUnknown {
				if !seen[machine] {
					seen[machine] = true
					machines = append(machines, machine)
				}
			}
		}

		// Member data is padded to an even boundary.
		offset += memberHeaderSize + size
		if offset%2 != 0 {
			offset++
		}
	}

	return machines, nil
}

// readMemberMachine extracts the machine type of one archive member. Regular
// members start with a COFF object header; import-library members start with
// the import header signature (0x0000, 0xFFFF) and keep the machine at a
// different offset.
func readMemberMachine(f *os.File, offset, size int64) (domain.MachineType, bool) {
	if size < 8 {
		return domain.MachineUnknown, false
	}

	head := make([]byte, 8)
	if _, err := f.ReadAt(head, offset); err != nil {
		return domain.MachineUnknown, false
	}

	sig1 := binary.LittleEndian.Uint16(head[0:2])
	sig2 := binary.LittleEndian.Uint16(head[2:4])
	if sig1 == 0 && sig2 == 0xFFFF {
		return domain.MachineType(binary.LittleEndian.Uint16(head[6:8])), true
	}

	return domain.MachineType(sig1), true
}

func parseMemberSize(field []byte) (int64, error) {
	s := strings.TrimRight(string(field), " ")
	var size int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, zerr.New("invalid archive member size")
		}
		size = size*10 + int64(c-'0')
	}
	return size, nil
}
